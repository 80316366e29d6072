package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apselect/apselect/internal/fol"
	"github.com/apselect/apselect/internal/relevance"
	"github.com/apselect/apselect/internal/report"
	"github.com/apselect/apselect/internal/tptp"
)

type flags struct {
	limit           int
	stats           bool
	noOutput        bool
	indexed         bool
	excludeEquality bool
	dumb            bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          "apselect [files...]",
		Short:        "select a relevance-ordered, likely-sufficient subset of a clause set",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	flagset := cmd.Flags()
	flagset.IntVarP(&f.limit, "limit", "l", 0, "maximum path depth (0 = unbounded)")
	flagset.BoolVarP(&f.stats, "stats", "s", false, "emit the statistics block")
	flagset.BoolVarP(&f.noOutput, "no-output", "n", false, "suppress the selection listing")
	flagset.BoolVarP(&f.indexed, "indexed", "i", false, "use the indexed clause store")
	flagset.BoolVarP(&f.excludeEquality, "exclude-equality", "e", false, "remove equality axioms before saturation, re-attach them afterwards")
	flagset.BoolVarP(&f.dumb, "dumb", "d", false, "use the Simple-Path selector instead of Alternating-Path")

	return cmd
}

func run(cmd *cobra.Command, paths []string, f flags) error {
	clauses, err := readClauses(paths)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	log := logrus.WithFields(logrus.Fields{
		"clauses": len(clauses),
		"indexed": f.indexed,
		"dumb":    f.dumb,
	})
	log.Info("starting selection")

	opts := relevance.Options{
		Limit:           f.limit,
		Indexed:         f.indexed,
		EqualityClauses: equalityClauses(clauses),
		ExcludeEquality: f.excludeEquality,
	}

	var (
		selected []*fol.Clause
		stats    relevance.Stats
	)
	if f.dumb {
		sel := relevance.NewSimplePathSelector(clauses, opts)
		selected = sel.SelectClauses()
		stats = sel.Stats()
	} else {
		sel := relevance.NewAlternatingPathSelector(clauses, opts)
		selected = sel.SelectClauses()
		stats = sel.Stats()
	}

	logrus.WithField("start_selected_by", stats.StartSelectedBy).Info("seeding rule fired")

	out := cmd.OutOrStdout()
	if !f.noOutput {
		if _, err := out.Write([]byte(report.ListClauses(selected))); err != nil {
			return errors.Wrap(err, "writing selection listing")
		}
	}
	if f.stats {
		if _, err := out.Write([]byte(report.StatsBlock(stats))); err != nil {
			return errors.Wrap(err, "writing statistics block")
		}
	}

	logrus.WithField("selected", len(selected)).Info("selection complete")
	return nil
}

// readClauses parses every input file with internal/tptp and
// concatenates the results in argument order.
func readClauses(paths []string) ([]*fol.Clause, error) {
	var all []*fol.Clause
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		clauses, err := tptp.ParseClauses(string(src))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		all = append(all, clauses...)
	}
	return all, nil
}

// equalityClauses identifies the producer-declared equality axioms by
// clause type (fol.TypeEqualityAxiom), the one piece of bookkeeping
// the minimal tptp reader can supply without a real clausifier.
func equalityClauses(clauses []*fol.Clause) []*fol.Clause {
	var eq []*fol.Clause
	for _, c := range clauses {
		if c.Type == fol.TypeEqualityAxiom {
			eq = append(eq, c)
		}
	}
	return eq
}
