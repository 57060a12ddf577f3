// Command gosat solves a DIMACS CNF file with the DPLL core in package
// sat. Exit codes: 0 on SAT, 1 on UNSAT, 2 on input/usage error or a
// search cancelled by --timeout, 3 on an internal invariant violation — a
// documented refinement of the original driver's single "err" exit status
// (see SPEC_FULL.md §6.2).
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xDarkicex/gosat/internal/dimacs"
	"github.com/xDarkicex/gosat/sat"
)

var log = logrus.New()

var exitCode int

// heuristicValue implements pflag.Value so --heuristic is validated at
// flag-parse time against sat.ParseHeuristic's vocabulary instead of
// being caught later inside RunE.
type heuristicValue struct {
	h sat.SplittingHeuristic
}

func (v *heuristicValue) String() string { return v.h.String() }

func (v *heuristicValue) Set(s string) error {
	h, err := sat.ParseHeuristic(s)
	if err != nil {
		return err
	}
	v.h = h
	return nil
}

func (v *heuristicValue) Type() string { return "heuristic" }

var _ pflag.Value = (*heuristicValue)(nil)

func main() {
	log.SetOutput(os.Stderr)
	if err := newRootCmd().Execute(); err != nil {
		if exitCode == 0 {
			exitCode = 2
		}
	}
	os.Exit(exitCode)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gosat",
		Short: "A DPLL SAT solver",
	}
	root.AddCommand(newSolveCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	heuristicFlag := &heuristicValue{h: sat.Random}
	var seed uint64
	var timeout time.Duration
	var verbose bool

	cmd := &cobra.Command{
		Use:   "solve <file.cnf>",
		Short: "Solve a DIMACS CNF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			heuristic := heuristicFlag.h

			f, err := os.Open(args[0])
			if err != nil {
				exitCode = 2
				return errors.Wrap(err, "opening input file")
			}
			defer f.Close()

			problem, err := dimacs.Parse(f, heuristic, seed)
			if err != nil {
				exitCode = 2
				return errors.Wrap(err, "parsing DIMACS input")
			}

			if timeout > 0 {
				timer := time.AfterFunc(timeout, problem.Cancel)
				defer timer.Stop()
			}

			start := time.Now()
			var result sat.Result
			var solveErr error
			func() {
				defer func() {
					if r := recover(); r != nil {
						invErr, ok := r.(*sat.InvariantError)
						if !ok {
							panic(r)
						}
						solveErr = invErr
					}
				}()
				result, solveErr = problem.Solve()
			}()
			elapsed := time.Since(start)
			stats := problem.Stats()

			entry := log.WithFields(logrus.Fields{
				"heuristic":    heuristic.String(),
				"variables":    problem.VariableCount(),
				"splits":       stats.Splits,
				"propagations": stats.Propagations,
				"backtracks":   stats.Backtracks,
				"elapsed":      elapsed,
			})

			if solveErr != nil {
				var invErr *sat.InvariantError
				if errors.As(solveErr, &invErr) {
					entry.WithError(solveErr).Error("internal invariant violated")
					exitCode = 3
					return solveErr
				}
				entry.WithError(solveErr).Warn("search did not complete")
				exitCode = 2
				return solveErr
			}

			entry.Info("search complete")

			switch result {
			case sat.Sat:
				printModel(cmd.OutOrStdout(), problem)
				exitCode = 0
			case sat.Unsat:
				fmt.Fprintln(cmd.OutOrStdout(), "UNSAT")
				exitCode = 1
			}
			return nil
		},
	}

	cmd.Flags().VarP(heuristicFlag, "heuristic", "H", "splitting heuristic: random, two-clause, polarity (or r/t/p)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "RNG seed used by the random heuristic")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "cancel the search after this duration (0 disables the limit)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level trace logging")
	return cmd
}

func printModel(w io.Writer, p *sat.Problem) {
	for v := 1; v <= p.VariableCount(); v++ {
		bit := 0
		if p.Value(v) {
			bit = 1
		}
		fmt.Fprintf(w, "x%d = %d\n", v, bit)
	}
}
