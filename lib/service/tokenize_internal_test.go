package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSymbol(t *testing.T) {
	assert.Equal(t, "LIGH", TokenSymbol("Lighthouse"))
	assert.Equal(t, "GOLD", TokenSymbol("gold bar"))
	assert.Equal(t, "ART", TokenSymbol("art"))
	assert.Equal(t, "", TokenSymbol(""))
	// multibyte names truncate on rune boundaries
	assert.Equal(t, "ÉCOL", TokenSymbol("école de paris"))
}
