package fol

// Rename returns a structurally identical copy of c with every
// variable replaced by a fresh one, preserving sign, predicate shape,
// and the current InferenceSelected flags. Use this when a producer
// has not guaranteed clauses are standardized apart, so that
// unification across two clauses cannot succeed spuriously by
// accidentally sharing a variable identifier.
func Rename(c *Clause) *Clause {
	fresh := make(map[int64]*Variable)
	lits := make([]*Literal, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = &Literal{
			Sign:              l.Sign,
			Atom:              renameTerm(l.Atom, fresh).(*Atom),
			InferenceSelected: l.InferenceSelected,
		}
	}
	return &Clause{id: c.id, Name: c.Name, Type: c.Type, Literals: lits}
}

func renameTerm(t Term, fresh map[int64]*Variable) Term {
	switch v := t.(type) {
	case *Variable:
		if nv, ok := fresh[v.id]; ok {
			return nv
		}
		nv := Fresh(v.name)
		fresh[v.id] = nv
		return nv
	case *Function:
		if len(v.Args) == 0 {
			return v
		}
		args := make([]Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = renameTerm(a, fresh)
		}
		return &Function{Symbol: v.Symbol, Args: args}
	default:
		return t
	}
}
