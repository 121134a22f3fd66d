package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCharBitmapKnown(t *testing.T) {
	bitmap := GetCharBitmap('A')
	assert.Equal(t, uint8(0b01110), bitmap[0])
	assert.Equal(t, uint8(0b11111), bitmap[3])
}

func TestGetCharBitmapLowercaseFoldsToUppercase(t *testing.T) {
	assert.Equal(t, GetCharBitmap('A'), GetCharBitmap('a'))
	assert.Equal(t, GetCharBitmap('Z'), GetCharBitmap('z'))
}

func TestGetCharBitmapUnknownFallsBackToSpace(t *testing.T) {
	space := GetCharBitmap(' ')
	assert.Equal(t, space, GetCharBitmap('€'))
	assert.Equal(t, space, GetCharBitmap('~'))

	for row := 0; row < CharHeight; row++ {
		assert.Equal(t, uint8(0), space[row])
	}
}

func TestHasBitSet(t *testing.T) {
	// 0b10001 sets the leftmost and rightmost columns.
	row := uint8(0b10001)
	assert.True(t, HasBitSet(row, 0))
	assert.False(t, HasBitSet(row, 1))
	assert.False(t, HasBitSet(row, 2))
	assert.False(t, HasBitSet(row, 3))
	assert.True(t, HasBitSet(row, 4))
}

func TestDigitsAndPunctuationPresent(t *testing.T) {
	space := GetCharBitmap(' ')
	for _, r := range "0123456789.,:!?-/%()" {
		assert.NotEqual(t, space, GetCharBitmap(r), "char %q should have a glyph", r)
	}
}
