// Package dimacs reads and writes the DIMACS CNF format: comment lines
// starting with 'c', one problem line "p cnf <variables> <clauses>", and
// clauses as whitespace-separated signed integers terminated by 0, with an
// optional trailing '%' marking end of input. It is the external
// collaborator spec.md §6 describes: the parser pre-applies unit clauses
// directly against the sat.Problem it builds, before that Problem's watch
// index exists.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/xDarkicex/gosat/sat"
)

// ParseError reports a malformed DIMACS file, tagged with the 1-based
// input line at which the problem was detected.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Msg)
}

// Parse reads a DIMACS CNF stream and builds a sat.Problem using the given
// heuristic and RNG seed. Unit clauses are applied as forced assignments
// during the scan, exactly as driver.cpp's parser does, ahead of the
// solver's own watch-index build.
func Parse(r io.Reader, heuristic sat.SplittingHeuristic, seed uint64) (*sat.Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var problem *sat.Problem
	var variableCount, declaredClauses int
	headerSeen := false
	clauseID := 0
	literals := make([]int, 0, 8)
	lineNo := 0
	done := false

	for scanner.Scan() {
		lineNo++
		if done {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			if headerSeen {
				return nil, &ParseError{Line: lineNo, Msg: "duplicate problem line"}
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, &ParseError{Line: lineNo, Msg: "malformed problem line, want 'p cnf V M'"}
			}
			var err error
			variableCount, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "variable count is not an integer"}
			}
			declaredClauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "clause count is not an integer"}
			}
			problem, err = sat.New(variableCount, declaredClauses, heuristic, seed)
			if err != nil {
				return nil, errors.Wrap(err, "dimacs: building problem from header")
			}
			headerSeen = true
			continue
		}

		if !headerSeen {
			return nil, &ParseError{Line: lineNo, Msg: "clause data before problem line"}
		}

		for _, tok := range strings.Fields(line) {
			if tok == "%" {
				done = true
				break
			}
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("malformed literal %q", tok)}
			}
			if n == 0 {
				if clauseID >= declaredClauses {
					return nil, &ParseError{Line: lineNo, Msg: "more clauses than declared in problem line"}
				}
				if len(literals) == 0 {
					return nil, &ParseError{Line: lineNo, Msg: "empty clause"}
				}
				if err := commitClause(problem, clauseID, literals); err != nil {
					return nil, &ParseError{Line: lineNo, Msg: err.Error()}
				}
				clauseID++
				literals = literals[:0]
				continue
			}
			literals = append(literals, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: reading input")
	}
	if !headerSeen {
		return nil, &ParseError{Line: lineNo, Msg: "missing problem line"}
	}
	if len(literals) != 0 {
		return nil, &ParseError{Line: lineNo, Msg: "clause not terminated by 0"}
	}
	if clauseID != declaredClauses {
		return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("declared %d clauses, found %d", declaredClauses, clauseID)}
	}
	return problem, nil
}

func commitClause(p *sat.Problem, clauseID int, literals []int) error {
	for _, lit := range literals {
		variableID := lit
		negated := lit < 0
		if negated {
			variableID = -variableID
		}
		if err := p.AddLiteral(clauseID, variableID, negated); err != nil {
			return err
		}
	}
	if len(literals) == 1 {
		lit := literals[0]
		variableID := lit
		value := lit > 0
		if !value {
			variableID = -variableID
		}
		if err := p.ApplyUnit(variableID, value); err != nil {
			return err
		}
	}
	return nil
}

// Write emits clauses (each a slice of signed DIMACS literals) in DIMACS
// CNF format for variableCount variables. Grounded on
// DoOR-Team-gophersat/bf/bf.go's Dimacs function, which writes the same
// problem-line-then-clauses shape from a lowered formula.
func Write(w io.Writer, variableCount int, clauses [][]int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", variableCount, len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
