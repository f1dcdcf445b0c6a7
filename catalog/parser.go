package catalog

import (
	"errors"
	"regexp"
	"strconv"
)

// ErrNotRecognized means no catalog name appeared in the text. It is a
// user-correctable rejection, distinct from storage failures.
var ErrNotRecognized = errors.New("food item not recognized")

var quantityRe = regexp.MustCompile(`\d+`)

// ParsedIntake is the result of interpreting one free-text logging request.
type ParsedIntake struct {
	Food     Entry
	Quantity int
}

// Parse matches free-form text against the catalog and extracts a quantity.
// Matching is the first-entry substring scan from Catalog.Lookup. The
// quantity is the first run of decimal digits anywhere in the raw text,
// defaulting to 1. Quantity is deliberately not range-checked: zero or
// absurdly large values pass through unchanged.
func Parse(text string, c *Catalog) (ParsedIntake, error) {
	food, ok := c.Lookup(text)
	if !ok {
		return ParsedIntake{}, ErrNotRecognized
	}

	quantity := 1
	if m := quantityRe.FindString(text); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			quantity = n
		}
	}
	return ParsedIntake{Food: food, Quantity: quantity}, nil
}
