package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfidence(t *testing.T) {
	assert.Equal(t, ConfidenceHigh, ParseConfidence("high"))
	assert.Equal(t, ConfidenceMedium, ParseConfidence("medium"))
	assert.Equal(t, ConfidenceLow, ParseConfidence("low"))

	// Odd labels degrade to medium instead of failing the entry.
	assert.Equal(t, ConfidenceMedium, ParseConfidence("very-high"))
	assert.Equal(t, ConfidenceMedium, ParseConfidence(""))
}

func TestConfidenceValid(t *testing.T) {
	assert.True(t, Confidence("high").Valid())
	assert.False(t, Confidence("certain").Valid())
}
