// Package clausestore provides the linear and indexed clause-store
// implementations used by the relevance selectors to look up
// candidate complementary literals.
package clausestore

import "github.com/apselect/apselect/internal/fol"

// PartnerRef names a single literal inside a stored clause: a
// candidate resolution partner for some query literal.
type PartnerRef struct {
	Clause *fol.Clause
	Index  int
}

// Literal returns the referenced literal.
func (p PartnerRef) Literal() *fol.Literal { return p.Clause.Literals[p.Index] }

// Store is the shared contract for the linear and indexed clause
// stores. GetResolutionLiterals returns every (clause, literal-index)
// pair whose literal has the opposite sign and the same predicate
// symbol/arity as query; it does not check unifiability, and its only
// ordering guarantee is insertion order within the relevant
// bucket/scan.
type Store interface {
	Add(c *fol.Clause)
	Extract(c *fol.Clause) bool
	Contains(c *fol.Clause) bool
	GetResolutionLiterals(query *fol.Literal) []PartnerRef
	All() []*fol.Clause
	Len() int
}

func oppositeSign(s fol.Sign) fol.Sign {
	if s == fol.Positive {
		return fol.Negative
	}
	return fol.Positive
}
