package fraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentPerUnit(t *testing.T) {
	assert.Equal(t, 1.0, PercentPerUnit(100))
	assert.Equal(t, 0.5, PercentPerUnit(200))
	assert.Equal(t, 0.0, PercentPerUnit(0))
}

func TestPercentFor(t *testing.T) {
	assert.Equal(t, 5.0, PercentFor(5, 100))
	assert.Equal(t, 25.0, PercentFor(50, 200))
}

func TestPricePerUnit(t *testing.T) {
	assert.Equal(t, int64(1000), PricePerUnit(100000, 100))
	// rounds down, never up
	assert.Equal(t, int64(999), PricePerUnit(99999, 100))
	assert.Equal(t, int64(0), PricePerUnit(99, 100))
	assert.Equal(t, int64(0), PricePerUnit(100000, 0))
}

func TestFormatPercentPerUnit(t *testing.T) {
	assert.Equal(t, "1%", FormatPercentPerUnit(100))
	assert.Equal(t, "0.50%", FormatPercentPerUnit(200))
	assert.Equal(t, "33.33%", FormatPercentPerUnit(3))
}

func TestFormatPercentFor(t *testing.T) {
	assert.Equal(t, "5%", FormatPercentFor(5, 100))
	assert.Equal(t, "100%", FormatPercentFor(100, 100))
	assert.Equal(t, "2.50%", FormatPercentFor(5, 200))
}
