// Command gosat-gencnf emits random 3-CNF benchmark suites, ported from
// original_source/test_gen/test_gen.cpp's ratio sweep (see
// SPEC_FULL.md §6.4). Each instance is written to its own file under
// <out>/ratio<R*10>/<index>_<variables>_<clauses>.cnf, matching the
// original's directory layout.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xDarkicex/gosat/internal/dimacs"
	"github.com/xDarkicex/gosat/internal/randcnf"
)

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)

	var variableCount int
	var minRatio, maxRatio, step float64
	var perRatio int
	var seed uint64
	var outDir string

	cmd := &cobra.Command{
		Use:   "gosat-gencnf",
		Short: "Generate a random 3-CNF benchmark suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			instances := randcnf.Suite(variableCount, minRatio, maxRatio, step, perRatio, seed)
			log.WithField("count", len(instances)).Info("generated suite")

			for _, inst := range instances {
				dir := filepath.Join(outDir, fmt.Sprintf("ratio%d", int(inst.Ratio*10)))
				if err := os.MkdirAll(dir, 0o777); err != nil {
					return errors.Wrap(err, "creating ratio directory")
				}
				name := fmt.Sprintf("%d_%d_%d.cnf", inst.Index, inst.VariableCount, len(inst.Clauses))
				path := filepath.Join(dir, name)
				f, err := os.Create(path)
				if err != nil {
					return errors.Wrapf(err, "creating %s", path)
				}
				err = dimacs.Write(f, inst.VariableCount, inst.Clauses)
				closeErr := f.Close()
				if err != nil {
					return errors.Wrapf(err, "writing %s", path)
				}
				if closeErr != nil {
					return errors.Wrapf(closeErr, "closing %s", path)
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&variableCount, "variables", 50, "variable count per instance")
	flags.Float64Var(&minRatio, "min-ratio", 3.0, "lowest clause/variable ratio")
	flags.Float64Var(&maxRatio, "max-ratio", 6.0, "highest clause/variable ratio")
	flags.Float64Var(&step, "step", 0.2, "ratio step between suites")
	flags.IntVar(&perRatio, "per-ratio", 100, "instances generated per ratio")
	flags.Uint64Var(&seed, "seed", 1, "RNG seed")
	flags.StringVar(&outDir, "out", "suite", "output directory")

	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error("gosat-gencnf failed")
		os.Exit(2)
	}
}
