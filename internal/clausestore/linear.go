package clausestore

import "github.com/apselect/apselect/internal/fol"

// LinearStore backs the partner query with a plain sequence; the
// query scans every clause.
type LinearStore struct {
	clauses []*fol.Clause
	present map[int64]bool
}

// NewLinearStore seeds a linear store with the given clauses, in
// order.
func NewLinearStore(clauses []*fol.Clause) *LinearStore {
	s := &LinearStore{present: make(map[int64]bool, len(clauses))}
	for _, c := range clauses {
		s.Add(c)
	}
	return s
}

// Add inserts c if it is not already present; a no-op otherwise.
func (s *LinearStore) Add(c *fol.Clause) {
	if s.present[c.ID()] {
		return
	}
	s.clauses = append(s.clauses, c)
	s.present[c.ID()] = true
}

// Extract removes c, idempotently. It reports whether c was present.
func (s *LinearStore) Extract(c *fol.Clause) bool {
	if !s.present[c.ID()] {
		return false
	}
	delete(s.present, c.ID())
	for i, cl := range s.clauses {
		if cl.ID() == c.ID() {
			s.clauses = append(s.clauses[:i:i], s.clauses[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether c is currently stored.
func (s *LinearStore) Contains(c *fol.Clause) bool {
	return s.present[c.ID()]
}

// All returns the stored clauses in insertion order.
func (s *LinearStore) All() []*fol.Clause {
	out := make([]*fol.Clause, len(s.clauses))
	copy(out, s.clauses)
	return out
}

// Len returns the number of stored clauses.
func (s *LinearStore) Len() int { return len(s.clauses) }

// GetResolutionLiterals scans every stored clause in insertion order.
func (s *LinearStore) GetResolutionLiterals(query *fol.Literal) []PartnerRef {
	var out []PartnerRef
	for _, c := range s.clauses {
		for i, lit := range c.Literals {
			if lit.Sign != query.Sign &&
				lit.PredicateSymbol() == query.PredicateSymbol() &&
				lit.Arity() == query.Arity() {
				out = append(out, PartnerRef{Clause: c, Index: i})
			}
		}
	}
	return out
}

var _ Store = (*LinearStore)(nil)
