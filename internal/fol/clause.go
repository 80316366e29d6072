package fol

import (
	"strings"
	"sync/atomic"
)

// ClauseType classifies a clause. Only TypeNegatedConjecture and
// TypePlain carry semantic weight for the selection core; the rest
// round-trip for presentation only.
type ClauseType string

const (
	TypeAxiom             ClauseType = "axiom"
	TypeHypothesis        ClauseType = "hypothesis"
	TypePlain             ClauseType = "plain"
	TypeNegatedConjecture ClauseType = "negated_conjecture"
	TypeEqualityAxiom     ClauseType = "equality_axiom"
)

var clauseCounter int64

// Clause is an ordered sequence of literals plus a name and a type.
// Two clauses with identical literals are still distinct entities:
// clause identity, not structural equality, is what every bag in the
// selection core keys on.
type Clause struct {
	id       int64
	Name     string
	Type     ClauseType
	Literals []*Literal
}

// NewClause builds a clause with a fresh identity. Name may be empty,
// in which case the driver/presentation layer may synthesize one.
func NewClause(name string, typ ClauseType, literals ...*Literal) *Clause {
	return &Clause{
		id:       atomic.AddInt64(&clauseCounter, 1),
		Name:     name,
		Type:     typ,
		Literals: literals,
	}
}

// ID returns the clause's stable identity, used for bag membership
// instead of structural equality.
func (c *Clause) ID() int64 { return c.id }

// IsUnit reports whether the clause has exactly one literal.
func (c *Clause) IsUnit() bool { return len(c.Literals) == 1 }

// HasEligibleLiteral reports whether any literal still has
// InferenceSelected set, i.e. whether the clause may still originate
// a new alternating-path segment.
func (c *Clause) HasEligibleLiteral() bool {
	for _, l := range c.Literals {
		if l.InferenceSelected {
			return true
		}
	}
	return false
}

// ResetInferenceSelected restores every literal's flag to true. The
// Alternating-Path selector must call this on every selected clause
// before returning, so a caller never observes a flag left consumed
// by the selector's internal bookkeeping.
func (c *Clause) ResetInferenceSelected() {
	for _, l := range c.Literals {
		l.InferenceSelected = true
	}
}

// String renders the clause in TPTP cnf(...) form, one literal per
// "|"-separated disjunct.
func (c *Clause) String() string {
	lits := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = l.String()
	}
	name := c.Name
	if name == "" {
		name = "clause"
	}
	return "cnf(" + name + "," + string(c.Type) + ",(" + strings.Join(lits, "|") + "))."
}
