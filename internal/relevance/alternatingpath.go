package relevance

import (
	"github.com/apselect/apselect/internal/clausestore"
	"github.com/apselect/apselect/internal/fol"
)

// occurrence is one appearance of a clause in a relevance level: the
// clause itself, plus the index of the literal that led to its
// discovery (arrivalLiteral is -1 for a level-0 seed). Only that one
// literal is excluded when this occurrence is later visited — every
// other literal of the clause is explorable from this occurrence,
// independent of what any other occurrence of the same clause already
// consumed.
type occurrence struct {
	clause         *fol.Clause
	arrivalLiteral int
}

// AlternatingPathSelector implements the Alternating-Path relevance
// algorithm: Simple-Path's breadth-first skeleton, plus an alternation
// discipline with two independent layers:
//
//   - a global, permanent mark on each literal (InferenceSelected)
//     recording whether it has ever been used as a resolution
//     partner — once used, that literal can never be discovered
//     again, by anyone;
//   - a per-occurrence block on the single literal that led to that
//     occurrence's own discovery, scoped only to that occurrence's
//     own exploration and not shared with any other occurrence of the
//     same clause.
//
// The same clause can therefore legitimately appear in more than one
// relevance level, each time free to explore through whichever of its
// literals have not yet been globally consumed, except the one that
// brought that particular occurrence into being.
type AlternatingPathSelector struct {
	opts        Options
	clauseCount int

	unprocessed clausestore.Store
	selectedSet map[int64]bool
	selected    []*fol.Clause
	levels      [][]occurrence // raw: the same clause may recur across levels

	equalityExcluded []*fol.Clause
	startSelectedBy  string

	done bool
}

// NewAlternatingPathSelector prepares a selector over clauses. Unlike
// Simple-Path, this selector mutates Literal.InferenceSelected on the
// clauses it is given, as part of the alternation discipline; callers
// that need the original clauses untouched should pass renamed copies
// (see fol.Rename).
func NewAlternatingPathSelector(clauses []*fol.Clause, opts Options) *AlternatingPathSelector {
	level0, startBy, rest, eqExcluded := seed(clauses, opts)

	selectedSet := make(map[int64]bool, len(level0))
	selected := make([]*fol.Clause, 0, len(clauses))
	level0occ := make([]occurrence, 0, len(level0))
	for _, c := range level0 {
		selectedSet[c.ID()] = true
		selected = append(selected, c)
		level0occ = append(level0occ, occurrence{clause: c, arrivalLiteral: -1})
	}

	return &AlternatingPathSelector{
		opts:             opts,
		clauseCount:      len(clauses),
		unprocessed:      newStore(rest, opts.Indexed),
		selectedSet:      selectedSet,
		selected:         selected,
		levels:           [][]occurrence{level0occ},
		equalityExcluded: eqExcluded,
		startSelectedBy:  startBy,
	}
}

// Depth reports the current number of non-empty (raw) levels minus
// one.
func (s *AlternatingPathSelector) Depth() int { return len(s.levels) - 1 }

// SelectClauses runs the saturation to completion (or to the
// configured depth limit), resets every selected clause's
// InferenceSelected flags back to true, and returns the selection,
// including any equality axioms unconditionally re-attached by
// ExcludeEquality. It is idempotent.
func (s *AlternatingPathSelector) SelectClauses() []*fol.Clause {
	if !s.done {
		limit := s.opts.limit()
		for s.Depth() < limit {
			current := s.levels[len(s.levels)-1]
			var next []occurrence
			for _, occ := range current {
				s.visit(occ, &next)
			}
			if len(next) == 0 {
				break
			}
			s.levels = append(s.levels, next)
		}
		for _, c := range s.selected {
			c.ResetInferenceSelected()
		}
		s.done = true
	}

	result := make([]*fol.Clause, 0, len(s.selected)+len(s.equalityExcluded))
	result = append(result, s.selected...)
	result = append(result, s.equalityExcluded...)
	return result
}

// visit explores occ through every literal of its clause except the
// one that led to occ's own discovery. Each complementary, unifiable,
// still-available partner literal found in the unprocessed store is
// consumed (marked globally ineligible) and becomes a fresh occurrence
// in the next level, whether or not its clause was already selected.
func (s *AlternatingPathSelector) visit(occ occurrence, next *[]occurrence) {
	c := occ.clause
	for i, lit1 := range c.Literals {
		if i == occ.arrivalLiteral {
			continue
		}
		for _, p := range s.unprocessed.GetResolutionLiterals(lit1) {
			c2 := p.Clause
			if c2.ID() == c.ID() {
				continue
			}
			lit2 := p.Literal()
			if !lit2.InferenceSelected {
				continue
			}
			if fol.MGU(lit1.Atom, lit2.Atom) == nil {
				continue
			}

			if !s.selectedSet[c2.ID()] {
				s.selectedSet[c2.ID()] = true
				s.selected = append(s.selected, c2)
			}

			lit2.InferenceSelected = false
			s.unprocessed.Extract(c2)
			if c2.HasEligibleLiteral() {
				s.unprocessed.Add(c2)
			}
			*next = append(*next, occurrence{clause: c2, arrivalLiteral: p.Index})
		}
	}
}

// levelsUnique dedups the raw per-level occurrence lists against a
// single running set, keeping each clause only at the level of its
// first occurrence.
func (s *AlternatingPathSelector) levelsUnique() [][]occurrence {
	seen := make(map[int64]bool)
	unique := make([][]occurrence, len(s.levels))
	for i, level := range s.levels {
		var cur []occurrence
		for _, occ := range level {
			if seen[occ.clause.ID()] {
				continue
			}
			seen[occ.clause.ID()] = true
			cur = append(cur, occ)
		}
		unique[i] = cur
	}
	return unique
}

// Stats summarizes the run for the statistics block. It should be
// called after SelectClauses.
func (s *AlternatingPathSelector) Stats() Stats {
	rawPerLevel := make([]int, len(s.levels))
	for i, l := range s.levels {
		rawPerLevel[i] = len(l)
	}
	uniquePerLevel := make([]int, len(s.levels))
	for i, l := range s.levelsUnique() {
		uniquePerLevel[i] = len(l)
	}
	limit := -1
	if s.opts.Limit > 0 {
		limit = s.opts.Limit
	}
	return Stats{
		InitialClauses:   s.clauseCount,
		SelectedClauses:  len(s.selected) + len(s.equalityExcluded),
		SelectedPerLevel: uniquePerLevel,
		AllPerLevel:      rawPerLevel,
		MaxPathDepth:     s.Depth(),
		DepthLimit:       limit,
		StartSelectedBy:  s.startSelectedBy,
	}
}
