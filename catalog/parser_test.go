package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEveryCatalogName(t *testing.T) {
	c := Default()
	for _, e := range c.Entries() {
		parsed, err := Parse(e.Name, c)
		assert.NoError(t, err, e.Name)
		assert.Equal(t, e.Name, parsed.Food.Name)
		assert.Equal(t, 1, parsed.Quantity)
	}
}

func TestParseWithQuantity(t *testing.T) {
	c := Default()
	for _, n := range []int{1, 2, 3, 12, 100} {
		parsed, err := Parse(fmt.Sprintf("%d banana", n), c)
		assert.NoError(t, err)
		assert.Equal(t, "banana", parsed.Food.Name)
		assert.Equal(t, n, parsed.Quantity)
	}
}

func TestParseDefaultsQuantityToOne(t *testing.T) {
	c := Default()

	parsed, err := Parse("had some rice for dinner", c)
	assert.NoError(t, err)
	assert.Equal(t, "rice", parsed.Food.Name)
	assert.Equal(t, 1, parsed.Quantity)
}

func TestParseUnrecognized(t *testing.T) {
	c := Default()

	_, err := Parse("ate a spaceship", c)
	assert.ErrorIs(t, err, ErrNotRecognized)
}

func TestParseBananaScenario(t *testing.T) {
	c := Default()

	parsed, err := Parse("had 3 banana for breakfast", c)
	assert.NoError(t, err)
	assert.Equal(t, "banana", parsed.Food.Name)
	assert.Equal(t, 3, parsed.Quantity)
	assert.Equal(t, 89.0, parsed.Food.Calories)
	assert.Equal(t, 1.1, parsed.Food.Protein)
	assert.Equal(t, 23.0, parsed.Food.Carbs)
	assert.Equal(t, 0.3, parsed.Food.Fat)
}

func TestParseFirstDigitRunWins(t *testing.T) {
	c := Default()

	parsed, err := Parse("2 rice bowls at 10pm", c)
	assert.NoError(t, err)
	assert.Equal(t, 2, parsed.Quantity)
}

func TestParseZeroQuantityPassesThrough(t *testing.T) {
	// Quantity is deliberately not range-checked.
	c := Default()

	parsed, err := Parse("0 banana", c)
	assert.NoError(t, err)
	assert.Equal(t, 0, parsed.Quantity)
}

func TestParseIsCaseInsensitiveForMatching(t *testing.T) {
	c := Default()

	parsed, err := Parse("HAD 2 Chapati", c)
	assert.NoError(t, err)
	assert.Equal(t, "chapati", parsed.Food.Name)
	assert.Equal(t, 2, parsed.Quantity)
}
