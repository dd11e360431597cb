// Package units normalizes ingredient measurement units to canonical codes.
package units

import "strings"

// synonyms maps every known spelling (long forms, plurals, abbreviations) to
// its canonical unit code. Lookup is case-insensitive exact match; anything
// absent from the table is not a unit.
var synonyms = map[string]string{
	"tablespoons": "tbsp",
	"tablespoon":  "tbsp",
	"tbsp":        "tbsp",
	"tbs":         "tbsp",
	"teaspoons":   "tsp",
	"teaspoon":    "tsp",
	"tsp":         "tsp",
	"ounces":      "oz",
	"ounce":       "oz",
	"oz":          "oz",
	"cups":        "cup",
	"cup":         "cup",
	"pounds":      "pound",
	"pound":       "pound",
	"lbs":         "pound",
	"lb":          "pound",
	"grams":       "g",
	"gram":        "g",
	"g":           "g",
	"kilograms":   "kg",
	"kilogram":    "kg",
	"kg":          "kg",
	"milliliters": "ml",
	"milliliter":  "ml",
	"ml":          "ml",
	"liters":      "l",
	"liter":       "l",
	"l":           "l",
	"pinches":     "pinch",
	"pinch":       "pinch",
	"cloves":      "clove",
	"clove":       "clove",
	"slices":      "slice",
	"slice":       "slice",
	"cans":        "can",
	"can":         "can",
}

// Lookup resolves a token to its canonical unit code. The second return value
// is false when the token is not a recognized unit.
func Lookup(token string) (string, bool) {
	code, ok := synonyms[strings.ToLower(token)]
	return code, ok
}
