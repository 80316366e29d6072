// Package relevance implements the Simple-Path and Alternating-Path
// premise-selection engines.
package relevance

import (
	"math"

	"github.com/apselect/apselect/internal/clausestore"
	"github.com/apselect/apselect/internal/fol"
)

// Options configures a selector run.
type Options struct {
	// Limit caps the relevance depth explored. Zero (the default)
	// means unbounded.
	Limit int

	// Indexed selects the indexed clause store in place of the
	// linear one. Both must yield the same selected set.
	Indexed bool

	// EqualityClauses is the producer-declared set of equality
	// axioms. They are never chosen by the "plain" seeding rule,
	// regardless of ExcludeEquality.
	EqualityClauses []*fol.Clause

	// ExcludeEquality removes EqualityClauses from the unprocessed
	// store before saturation and re-attaches them to the final
	// selection unconditionally afterwards; they never seed and never
	// participate as partners.
	ExcludeEquality bool
}

func (o Options) limit() int {
	if o.Limit <= 0 {
		return math.MaxInt
	}
	return o.Limit
}

func newStore(clauses []*fol.Clause, indexed bool) clausestore.Store {
	if indexed {
		return clausestore.NewIndexedStore(clauses)
	}
	return clausestore.NewLinearStore(clauses)
}

// seed partitions clauses into level 0 (negated conjectures take
// priority over plain clauses, which take priority over seeding
// everything when neither is present), the clauses that go into the
// unprocessed store, and any equality-axiom clauses set aside by
// ExcludeEquality.
func seed(clauses []*fol.Clause, opts Options) (level0 []*fol.Clause, startSelectedBy string, rest []*fol.Clause, equalityExcluded []*fol.Clause) {
	equalityIDs := make(map[int64]bool, len(opts.EqualityClauses))
	for _, c := range opts.EqualityClauses {
		equalityIDs[c.ID()] = true
	}

	var negatedConjectures, plains []*fol.Clause
	for _, c := range clauses {
		switch c.Type {
		case fol.TypeNegatedConjecture:
			negatedConjectures = append(negatedConjectures, c)
		case fol.TypePlain:
			if !equalityIDs[c.ID()] {
				plains = append(plains, c)
			}
		}
	}

	switch {
	case len(negatedConjectures) > 0:
		level0, startSelectedBy = negatedConjectures, "negated_conjecture"
	case len(plains) > 0:
		level0, startSelectedBy = plains, "plain"
	default:
		startSelectedBy = "all"
		for _, c := range clauses {
			if opts.ExcludeEquality && equalityIDs[c.ID()] {
				continue
			}
			level0 = append(level0, c)
		}
	}

	seedIDs := make(map[int64]bool, len(level0))
	for _, c := range level0 {
		seedIDs[c.ID()] = true
	}

	for _, c := range clauses {
		if seedIDs[c.ID()] {
			continue
		}
		if opts.ExcludeEquality && equalityIDs[c.ID()] {
			equalityExcluded = append(equalityExcluded, c)
			continue
		}
		rest = append(rest, c)
	}
	return
}
