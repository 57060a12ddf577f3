// Package randcnf generates random 3-CNF benchmark instances. Ported from
// original_source/test_gen/test_gen.cpp: fixed clause width of 3, no
// repeated variable within a clause, and a variable/clause ratio that
// sweeps a benchmark suite from easy to hard around the satisfiability
// threshold. Uses sat.RNG instead of the original's fast_random so that
// instances and solver runs share one deterministic seeding scheme.
package randcnf

import (
	"math"

	"github.com/xDarkicex/gosat/sat"
)

// Options configures a single random instance.
type Options struct {
	VariableCount int
	Ratio         float64 // clause count = VariableCount * Ratio
	Seed          uint64
}

// Generate produces VariableCount variables and round(VariableCount*Ratio)
// clauses, each exactly 3 literals over 3 distinct variables.
func Generate(opts Options) (variableCount int, clauses [][]int) {
	rng := sat.NewRNG(opts.Seed)
	clauseCount := int(math.Round(float64(opts.VariableCount) * opts.Ratio))
	clauses = make([][]int, clauseCount)
	for i := range clauses {
		clauses[i] = randomClause(rng, opts.VariableCount)
	}
	return opts.VariableCount, clauses
}

func randomClause(rng *sat.RNG, variableCount int) []int {
	seen := make(map[int]bool, 3)
	lits := make([]int, 0, 3)
	for len(lits) < 3 {
		v := rng.Intn(variableCount) + 1
		if seen[v] {
			continue
		}
		seen[v] = true
		if rng.Bool() {
			v = -v
		}
		lits = append(lits, v)
	}
	return lits
}

// Instance is one named member of a generated benchmark suite.
type Instance struct {
	Ratio         float64
	Index         int
	VariableCount int
	Clauses       [][]int
}

// Suite generates perRatio instances at each ratio step from minRatio to
// maxRatio (inclusive, stepped by step), mirroring test_gen.cpp's main:
// one subdirectory per ratio, a fixed 50-variable default per instance.
func Suite(variableCount int, minRatio, maxRatio, step float64, perRatio int, seed uint64) []Instance {
	rng := sat.NewRNG(seed)
	var instances []Instance
	for ratio := minRatio; ratio <= maxRatio+1e-9; ratio += step {
		for i := 0; i < perRatio; i++ {
			clauseCount := int(float64(variableCount) * ratio)
			clauses := make([][]int, clauseCount)
			for c := range clauses {
				clauses[c] = randomClause(rng, variableCount)
			}
			instances = append(instances, Instance{
				Ratio:         ratio,
				Index:         i,
				VariableCount: variableCount,
				Clauses:       clauses,
			})
		}
	}
	return instances
}
