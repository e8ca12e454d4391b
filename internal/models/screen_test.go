package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeopleOptions(t *testing.T) {
	opts := PeopleOptions()

	assert.Len(t, opts, MaxPeopleOffset+1)
	assert.Equal(t, "2 people", opts[0])
	assert.Equal(t, "98 people", opts[len(opts)-1])
	assert.Equal(t, "5 people", opts[3])
}

func TestIsValidTip(t *testing.T) {
	for _, p := range TipPercentages {
		assert.True(t, IsValidTip(p), "tip %d", p)
	}
	assert.False(t, IsValidTip(15))
	assert.False(t, IsValidTip(-20))
}

func TestIsValidPeopleOffset(t *testing.T) {
	assert.True(t, IsValidPeopleOffset(0))
	assert.True(t, IsValidPeopleOffset(96))
	assert.False(t, IsValidPeopleOffset(97))
	assert.False(t, IsValidPeopleOffset(-1))
}

func TestTipLabel(t *testing.T) {
	assert.Equal(t, "25%", TipLabel(25))
	assert.Equal(t, "0%", TipLabel(0))
}
