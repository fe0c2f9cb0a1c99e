package wordcount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountEmptyString(t *testing.T) {
	assert.Equal(t, 0, Count(""))
}

func TestCountOnlySpaces(t *testing.T) {
	assert.Equal(t, 0, Count("      "))
}

func TestCountText(t *testing.T) {
	assert.Equal(t, 1, Count("hola"))
	assert.Equal(t, 2, Count("hola hola"))
}

func TestCountMixedWhitespace(t *testing.T) {
	assert.Equal(t, 3, Count("one\ttwo\nthree"))
	assert.Equal(t, 2, Count("  leading and-trailing  "))
	assert.Equal(t, 4, Count("  a  b\t c \n d  "))
}

func TestCountPunctuationStaysAttached(t *testing.T) {
	// Tokens are whitespace runs only; punctuation does not split words.
	assert.Equal(t, 5, Count("Lorem ipsum, dolor sit amet."))
}
