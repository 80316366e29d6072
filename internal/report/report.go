// Package report renders the selection's statistics block and clause
// listing as fixed-width, line-oriented plain text suitable for
// piping or diffing.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apselect/apselect/internal/fol"
	"github.com/apselect/apselect/internal/relevance"
)

// StatsBlock formats the seven-line statistics block.
func StatsBlock(s relevance.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Initial clauses     : %d\n", s.InitialClauses)
	fmt.Fprintf(&b, "# Selected clauses    : %d\n", s.SelectedClauses)
	fmt.Fprintf(&b, "# Selected per level  : %s   (unique, with AP deduplication)\n", formatLevels(s.SelectedPerLevel))
	fmt.Fprintf(&b, "# All per level       : %s   (raw, includes AP duplicates)\n", formatLevels(s.AllPerLevel))
	fmt.Fprintf(&b, "# Max path depth      : %d\n", s.MaxPathDepth)
	fmt.Fprintf(&b, "# Depth limit         : %s\n", formatLimit(s.DepthLimit))
	fmt.Fprintf(&b, "# 0-level selected by : %s\n", s.StartSelectedBy)
	return b.String()
}

func formatLevels(levels []int) string {
	parts := make([]string, len(levels))
	for i, n := range levels {
		parts[i] = strconv.Itoa(n)
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}

func formatLimit(limit int) string {
	if limit < 0 {
		return "∞"
	}
	return strconv.Itoa(limit)
}

// ListClauses renders clauses one per line, in selection order.
func ListClauses(clauses []*fol.Clause) string {
	var b strings.Builder
	for _, c := range clauses {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
