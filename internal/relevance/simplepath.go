package relevance

import (
	"github.com/apselect/apselect/internal/clausestore"
	"github.com/apselect/apselect/internal/fol"
)

// SimplePathSelector implements the Simple-Path relevance algorithm:
// breadth-first saturation over resolvable literal pairs, with no
// alternation discipline.
type SimplePathSelector struct {
	opts        Options
	clauseCount int

	unprocessed clausestore.Store
	selectedSet map[int64]bool
	selected    []*fol.Clause
	levels      [][]*fol.Clause

	equalityExcluded []*fol.Clause
	startSelectedBy  string

	done bool
}

// NewSimplePathSelector prepares a selector over clauses. clauses is
// read-only; the selector never mutates caller-owned clause literals
// (Simple-Path does not use the InferenceSelected flag at all).
func NewSimplePathSelector(clauses []*fol.Clause, opts Options) *SimplePathSelector {
	level0, startBy, rest, eqExcluded := seed(clauses, opts)

	selectedSet := make(map[int64]bool, len(level0))
	selected := make([]*fol.Clause, 0, len(clauses))
	for _, c := range level0 {
		selectedSet[c.ID()] = true
		selected = append(selected, c)
	}

	return &SimplePathSelector{
		opts:             opts,
		clauseCount:      len(clauses),
		unprocessed:      newStore(rest, opts.Indexed),
		selectedSet:      selectedSet,
		selected:         selected,
		levels:           [][]*fol.Clause{append([]*fol.Clause{}, level0...)},
		equalityExcluded: eqExcluded,
		startSelectedBy:  startBy,
	}
}

// Depth reports the current number of non-empty levels minus one.
func (s *SimplePathSelector) Depth() int { return len(s.levels) - 1 }

// SelectClauses runs the saturation to completion (or to the
// configured depth limit) and returns the selected clauses, including
// any equality axioms unconditionally re-attached by ExcludeEquality.
// It is idempotent: calling it again after completion just returns the
// same result.
func (s *SimplePathSelector) SelectClauses() []*fol.Clause {
	if !s.done {
		limit := s.opts.limit()
		for s.unprocessed.Len() > 0 && s.Depth() < limit {
			current := s.levels[len(s.levels)-1]
			var next []*fol.Clause
			for _, c := range current {
				s.findNextPaths(c, &next)
			}
			if len(next) == 0 {
				break
			}
			s.levels = append(s.levels, next)
		}
		s.done = true
	}

	result := make([]*fol.Clause, 0, len(s.selected)+len(s.equalityExcluded))
	result = append(result, s.selected...)
	result = append(result, s.equalityExcluded...)
	return result
}

// findNextPaths scans every literal of c for unifiable complementary
// partners still in the unprocessed store, selecting each new partner
// exactly once.
func (s *SimplePathSelector) findNextPaths(c *fol.Clause, next *[]*fol.Clause) {
	for _, lit1 := range c.Literals {
		for _, p := range s.unprocessed.GetResolutionLiterals(lit1) {
			c2 := p.Clause
			if c2.ID() == c.ID() || s.selectedSet[c2.ID()] {
				continue
			}
			lit2 := p.Literal()
			if fol.MGU(lit1.Atom, lit2.Atom) == nil {
				continue
			}
			s.selectedSet[c2.ID()] = true
			s.selected = append(s.selected, c2)
			*next = append(*next, c2)
			s.unprocessed.Extract(c2)
		}
	}
}

// Stats summarizes the run for the statistics block. It should be
// called after SelectClauses.
func (s *SimplePathSelector) Stats() Stats {
	perLevel := make([]int, len(s.levels))
	for i, l := range s.levels {
		perLevel[i] = len(l)
	}
	limit := -1
	if s.opts.Limit > 0 {
		limit = s.opts.Limit
	}
	return Stats{
		InitialClauses:   s.clauseCount,
		SelectedClauses:  len(s.selected) + len(s.equalityExcluded),
		SelectedPerLevel: perLevel,
		AllPerLevel:      perLevel,
		MaxPathDepth:     s.Depth(),
		DepthLimit:       limit,
		StartSelectedBy:  s.startSelectedBy,
	}
}
