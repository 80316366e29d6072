package relevance

// Stats captures the summary statistics of a completed selector run.
type Stats struct {
	InitialClauses int

	// SelectedClauses is the total number of distinct clauses in the
	// final selection, including any equality axioms re-attached by
	// ExcludeEquality.
	SelectedClauses int

	// SelectedPerLevel counts each clause once, at the level of its
	// first discovery (Alternating-Path can otherwise visit a clause
	// more than once; Simple-Path never does, so here it is identical
	// to AllPerLevel).
	SelectedPerLevel []int

	// AllPerLevel is the raw per-level count, including every
	// Alternating-Path rediscovery of an already-selected clause.
	AllPerLevel []int

	// MaxPathDepth is the number of non-empty levels minus one.
	MaxPathDepth int

	// DepthLimit is the configured Options.Limit, or -1 if unbounded.
	DepthLimit int

	// StartSelectedBy names the seeding rule that produced level 0:
	// "negated_conjecture", "plain", or "all".
	StartSelectedBy string
}
