package fol

// MGU computes the most general unifier of two atoms using Robinson's
// algorithm with occurs-check, starting from an empty substitution.
// It returns nil if no unifier exists. MGU never panics on structural
// mismatch; failure is reported through the return value.
func MGU(s, t Term) *Substitution {
	sub := NewSubstitution()
	if unify(s, t, sub) {
		return sub
	}
	return nil
}

// unify extends sub in place so that sub(s) = sub(t), returning false
// (and leaving sub in an unspecified state) on failure. Callers that
// need a clean substitution on failure should start from a fresh one,
// as MGU does.
func unify(s, t Term, sub *Substitution) bool {
	s = sub.Walk(s)
	t = sub.Walk(t)

	if s.Equal(t) {
		return true
	}

	if sv, ok := s.(*Variable); ok {
		return bindVariable(sv, t, sub)
	}
	if tv, ok := t.(*Variable); ok {
		return bindVariable(tv, s, sub)
	}

	sf, sok := s.(*Function)
	tf, tok := t.(*Function)
	if !sok || !tok {
		return false
	}
	if sf.Symbol != tf.Symbol || len(sf.Args) != len(tf.Args) {
		return false
	}
	for i := range sf.Args {
		if !unify(sf.Args[i], tf.Args[i], sub) {
			return false
		}
	}
	return true
}

// bindVariable binds v to term, failing on the occurs-check.
func bindVariable(v *Variable, term Term, sub *Substitution) bool {
	if occursIn(v, term, sub) {
		return false
	}
	sub.Bind(v, term)
	return true
}

// occursIn reports whether v occurs (after dereferencing through sub)
// anywhere inside term.
func occursIn(v *Variable, term Term, sub *Substitution) bool {
	term = sub.Walk(term)
	if tv, ok := term.(*Variable); ok {
		return tv.id == v.id
	}
	f, ok := term.(*Function)
	if !ok {
		return false
	}
	for _, arg := range f.Args {
		if occursIn(v, arg, sub) {
			return true
		}
	}
	return false
}
