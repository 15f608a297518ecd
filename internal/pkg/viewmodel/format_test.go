package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0.00", Money(0))
	assert.Equal(t, "$54.60", Money(54.6))
	assert.Equal(t, "$1,234.50", Money(1234.5))
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "$500", Amount(500))
	assert.Equal(t, "$250,000", Amount(250000))
	assert.Equal(t, "$1,000,000", Amount(1000000))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("Jane Doe"))
	assert.Equal(t, "J", Initials("jane"))
	assert.Equal(t, "AB", Initials("a b c"))
	assert.Equal(t, "", Initials("  "))
}

func TestDict(t *testing.T) {
	m, err := Dict("Card", 1, "CSRF", "token")
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"Card": 1, "CSRF": "token"}, m)

	_, err = Dict("odd")
	assert.Error(t, err)

	_, err = Dict(1, 2)
	assert.Error(t, err)
}
