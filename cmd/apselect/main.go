// Command apselect is the premise-selection driver: it reads one or
// more TPTP clause files, runs the Simple-Path or Alternating-Path
// relevance selector over them, and prints the resulting clause
// subset (and, optionally, the statistics block).
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("internal invariant violation")
			fmt.Fprintln(os.Stderr, "apselect: internal error:", r)
			os.Exit(1)
		}
	}()

	installCPULimit()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
