// Package ingredient converts raw recipe ingredient lines into structured entries.
//
// Parsing is a best-effort natural-language heuristic, not a grammar. A line
// whose leading token happens to be a bare number that belongs to the name
// (e.g. "2 day old bread") is consumed as a quantity; this is a known,
// accepted source of error. Failure to detect a quantity or unit is a normal
// outcome, never an error; only a line whose name would be empty fails.
package ingredient

import (
	"strconv"
	"strings"

	"github.com/krywa5/forkify/internal/domain"
	apperrors "github.com/krywa5/forkify/internal/errors"
	"github.com/krywa5/forkify/internal/units"
)

// Parse converts one raw ingredient line into a structured entry.
//
// Steps: strip parenthetical annotations, consume an optional leading quantity
// expression (number, fraction, mixed number, or range taking the first
// bound), consume an optional unit token, and join the rest as the name.
func Parse(rawLine string) (domain.IngredientEntry, error) {
	tokens := strings.Fields(stripParentheticals(rawLine))

	quantity, consumed := parseQuantity(tokens)
	tokens = tokens[consumed:]

	unit := ""
	if len(tokens) > 0 {
		if code, ok := units.Lookup(tokens[0]); ok {
			unit = code
			tokens = tokens[1:]
		}
	}

	name := strings.Join(tokens, " ")
	if name == "" {
		return domain.IngredientEntry{}, apperrors.ParseError("ingredient line yields empty name").WithContext("line", rawLine)
	}

	return domain.IngredientEntry{Quantity: quantity, Unit: unit, Name: name}, nil
}

// ParseAll parses a whole ingredient block, failing on the first bad line so
// that no partially parsed recipe is ever published.
func ParseAll(rawLines []string) ([]domain.IngredientEntry, error) {
	entries := make([]domain.IngredientEntry, 0, len(rawLines))
	for _, line := range rawLines {
		entry, err := Parse(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// stripParentheticals removes balanced (...) spans, including nested ones.
// An unbalanced closing paren is kept as-is.
func stripParentheticals(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseQuantity consumes a leading quantity expression from the token stream.
// Returns the parsed value (nil when no valid expression leads the stream) and
// the number of tokens consumed.
func parseQuantity(tokens []string) (*float64, int) {
	if len(tokens) == 0 {
		return nil, 0
	}

	if v, ok := parseFraction(tokens[0]); ok {
		return &v, 1
	}
	if v, ok := parseRange(tokens[0]); ok {
		return &v, 1
	}
	if v, ok := parseNumber(tokens[0]); ok {
		// Mixed number: "4 1/2" is four and a half.
		if len(tokens) > 1 {
			if frac, ok := parseFraction(tokens[1]); ok {
				sum := v + frac
				return &sum, 2
			}
		}
		return &v, 1
	}

	return nil, 0
}

func parseNumber(token string) (float64, bool) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func parseFraction(token string) (float64, bool) {
	num, den, found := strings.Cut(token, "/")
	if !found {
		return 0, false
	}
	n, ok := parseNumber(num)
	if !ok {
		return 0, false
	}
	d, ok := parseNumber(den)
	if !ok || d == 0 {
		return 0, false
	}
	return n / d, true
}

// parseRange takes the first bound of "a-b". This is a documented
// simplification; neither averaging nor the upper bound is used.
func parseRange(token string) (float64, bool) {
	lo, hi, found := strings.Cut(token, "-")
	if !found {
		return 0, false
	}
	v, ok := parseNumber(lo)
	if !ok {
		return 0, false
	}
	if _, ok := parseNumber(hi); !ok {
		return 0, false
	}
	return v, true
}
