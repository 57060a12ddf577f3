package sat

import "fmt"

// SplittingHeuristic selects the strategy Problem.Solve uses to pick the
// next branching variable and its trial value. All three are static:
// built once after parsing, never re-ranked during search (see
// heuristics.go).
type SplittingHeuristic int

const (
	Random SplittingHeuristic = iota
	TwoClause
	Polarity
)

func (h SplittingHeuristic) String() string {
	switch h {
	case Random:
		return "random"
	case TwoClause:
		return "two-clause"
	case Polarity:
		return "polarity"
	default:
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
}

// ParseHeuristic accepts the single-letter form the original command line
// used (r/t/p) as well as the spelled-out names.
func ParseHeuristic(s string) (SplittingHeuristic, error) {
	switch s {
	case "r", "random":
		return Random, nil
	case "t", "two-clause", "twoclause":
		return TwoClause, nil
	case "p", "polarity":
		return Polarity, nil
	default:
		return 0, &RangeError{Op: "ParseHeuristic", Msg: fmt.Sprintf("unknown heuristic %q", s)}
	}
}

// Result is the outcome of Problem.Solve.
type Result int

const (
	Unresolved Result = iota
	Sat
	Unsat
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNRESOLVED"
	}
}

// Stats reports search effort: Splits mirrors the split_count the
// original driver wrote to stderr, the rest are Go-native additions
// surfaced through the CLI's structured logging.
type Stats struct {
	Splits       int
	Propagations int
	Backtracks   int
}
