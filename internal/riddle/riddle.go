// Package riddle encodes the classic Einstein/Zebra puzzle — five houses,
// five categories of five values each — as a boolean formula and lowers
// it to CNF. Ported from original_source/riddle_test/generate_riddle.cpp,
// which builds the same 25-property-by-5-position encoding (125
// variables) directly against a DIMACS writer; here the clue-building
// logic is expressed through internal/formula's combinators instead of
// emitting raw clauses by hand.
package riddle

import (
	"fmt"

	"github.com/xDarkicex/gosat/internal/formula"
)

const houseCount = 5

var categories = map[string][]string{
	"color":  {"red", "green", "ivory", "yellow", "blue"},
	"nation": {"englishman", "spaniard", "ukrainian", "norwegian", "japanese"},
	"drink":  {"coffee", "tea", "milk", "orange_juice", "water"},
	"smoke":  {"old_gold", "kools", "chesterfields", "lucky_strike", "parliaments"},
	"pet":    {"dog", "snails", "fox", "horse", "zebra"},
}

var categoryOrder = []string{"color", "nation", "drink", "smoke", "pet"}

func key(category, value string, position int) string {
	return fmt.Sprintf("%s:%s:%d", category, value, position)
}

func at(category, value string, position int) formula.Formula {
	return formula.Var(key(category, value, position))
}

// sameHouse asserts that value1 of category1 and value2 of category2 are
// always assigned to the same house, e.g. "the Englishman lives in the
// red house".
func sameHouse(category1, value1, category2, value2 string) formula.Formula {
	terms := make([]formula.Formula, houseCount)
	for p := 1; p <= houseCount; p++ {
		terms[p-1] = formula.Eq(at(category1, value1, p), at(category2, value2, p))
	}
	return formula.And(terms...)
}

// nextTo asserts the two values occupy adjacent houses, in either
// direction, e.g. "the Chesterfields smoker lives next to the fox owner".
func nextTo(category1, value1, category2, value2 string) formula.Formula {
	terms := make([]formula.Formula, 0, houseCount)
	for p := 1; p <= houseCount; p++ {
		var neighbors []formula.Formula
		if p > 1 {
			neighbors = append(neighbors, at(category2, value2, p-1))
		}
		if p < houseCount {
			neighbors = append(neighbors, at(category2, value2, p+1))
		}
		terms = append(terms, formula.Implies(at(category1, value1, p), formula.Or(neighbors...)))
	}
	return formula.And(terms...)
}

// rightOf asserts value1 occupies the house immediately to the right of
// value2, e.g. "the green house is immediately to the right of the ivory
// house".
func rightOf(category1, value1, category2, value2 string) formula.Formula {
	terms := []formula.Formula{formula.Not(at(category1, value1, 1))}
	for p := 2; p <= houseCount; p++ {
		terms = append(terms, formula.Eq(at(category1, value1, p), at(category2, value2, p-1)))
	}
	return formula.And(terms...)
}

func fixed(category, value string, position int) formula.Formula {
	return at(category, value, position)
}

// permutationConstraints asserts every value of every category is
// assigned to exactly one house, and every house has exactly one value
// per category.
func permutationConstraints() []formula.Formula {
	var constraints []formula.Formula
	for _, category := range categoryOrder {
		values := categories[category]
		for _, value := range values {
			group := make([]formula.Formula, houseCount)
			for p := 1; p <= houseCount; p++ {
				group[p-1] = at(category, value, p)
			}
			constraints = append(constraints, formula.Unique(group...))
		}
		for p := 1; p <= houseCount; p++ {
			group := make([]formula.Formula, len(values))
			for i, value := range values {
				group[i] = at(category, value, p)
			}
			constraints = append(constraints, formula.Unique(group...))
		}
	}
	return constraints
}

// clues encodes the fourteen classic statements of the puzzle.
func clues() []formula.Formula {
	return []formula.Formula{
		sameHouse("nation", "englishman", "color", "red"),
		sameHouse("nation", "spaniard", "pet", "dog"),
		sameHouse("drink", "coffee", "color", "green"),
		sameHouse("nation", "ukrainian", "drink", "tea"),
		rightOf("color", "green", "color", "ivory"),
		sameHouse("smoke", "old_gold", "pet", "snails"),
		sameHouse("smoke", "kools", "color", "yellow"),
		fixed("drink", "milk", 3),
		fixed("nation", "norwegian", 1),
		nextTo("smoke", "chesterfields", "pet", "fox"),
		nextTo("smoke", "kools", "pet", "horse"),
		sameHouse("smoke", "lucky_strike", "drink", "orange_juice"),
		sameHouse("nation", "japanese", "smoke", "parliaments"),
		nextTo("nation", "norwegian", "color", "blue"),
	}
}

// Encode builds the full CNF encoding of the puzzle: permutation
// constraints plus the fourteen clues, conjoined into one formula.
func Encode() *formula.Encoding {
	all := append(permutationConstraints(), clues()...)
	return formula.Encode(formula.And(all...))
}

// Model maps each category/value pair to the house position a solved
// encoding assigned it to, keyed "category:value" (Encode's variable names
// without the trailing ":position").
type Model map[string]int

// Interpret reads the house assignment for every category/value pair out
// of a solved sat.Problem-shaped value function.
func Interpret(enc *formula.Encoding, valueOf func(int) bool) Model {
	model := make(Model)
	for category, values := range categories {
		for _, value := range values {
			for p := 1; p <= houseCount; p++ {
				id, ok := enc.Names[key(category, value, p)]
				if ok && valueOf(id) {
					model[fmt.Sprintf("%s:%s", category, value)] = p
				}
			}
		}
	}
	return model
}
