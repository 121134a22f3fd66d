package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byos/trmnl-go/internal/domain"
)

func TestDrawTextSetsGlyphPixels(t *testing.T) {
	c := domain.NewCanvas(40, 20)

	DrawText(c, "I", 0, 0, domain.Black)

	// 'I' row 0 is 0b01110: columns 1-3 set, columns 0 and 4 clear.
	assert.True(t, c.GetPixel(1, 0).Equals(domain.Black))
	assert.True(t, c.GetPixel(2, 0).Equals(domain.Black))
	assert.True(t, c.GetPixel(3, 0).Equals(domain.Black))
	assert.True(t, c.GetPixel(0, 0).Equals(domain.White))
	assert.True(t, c.GetPixel(4, 0).Equals(domain.White))
}

func TestDrawTextAdvance(t *testing.T) {
	c := domain.NewCanvas(40, 20)

	DrawText(c, "II", 0, 0, domain.Black)

	// Second glyph starts at x = CharWidth + CharSpacing.
	secondX := CharWidth + CharSpacing
	assert.True(t, c.GetPixel(secondX+1, 0).Equals(domain.Black))
	// Spacing column stays clear.
	assert.True(t, c.GetPixel(CharWidth, 0).Equals(domain.White))
}

func TestDrawTextScaledExpandsBlocks(t *testing.T) {
	c := domain.NewCanvas(40, 30)

	DrawTextScaled(c, "I", 0, 0, 2, domain.Black)

	// Column 1 of 'I' at scale 2 covers x 2-3, y 0-1.
	assert.True(t, c.GetPixel(2, 0).Equals(domain.Black))
	assert.True(t, c.GetPixel(3, 1).Equals(domain.Black))
	assert.True(t, c.GetPixel(0, 0).Equals(domain.White))
	assert.True(t, c.GetPixel(1, 1).Equals(domain.White))
}

func TestDrawTextScaledClampsScale(t *testing.T) {
	c := domain.NewCanvas(40, 20)

	DrawTextScaled(c, "I", 0, 0, 0, domain.Black)

	// Scale 0 is treated as 1.
	assert.True(t, c.GetPixel(1, 0).Equals(domain.Black))
	assert.True(t, c.GetPixel(2, 2).Equals(domain.Black))
}

func TestMeasureText(t *testing.T) {
	assert.Equal(t, 0, MeasureText(""))
	assert.Equal(t, CharWidth, MeasureText("A"))
	assert.Equal(t, 2*CharWidth+CharSpacing, MeasureText("AB"))
}

func TestMeasureTextScaled(t *testing.T) {
	assert.Equal(t, 2*CharWidth, MeasureTextScaled("A", 2))
	assert.Equal(t, (3*CharWidth+2*CharSpacing)*3, MeasureTextScaled("ABC", 3))
	assert.Equal(t, 0, MeasureTextScaled("", 2))
}

func TestDrawTextCentered(t *testing.T) {
	c := domain.NewCanvas(100, 20)

	DrawTextCentered(c, "I", 100, 0, 1, domain.Black)

	expectedX := (100 - CharWidth) / 2
	// Column 1 of 'I' at the centered origin.
	require.NotNil(t, c.GetPixel(expectedX+1, 0))
	assert.True(t, c.GetPixel(expectedX+1, 0).Equals(domain.Black))
}

func TestTextBounds(t *testing.T) {
	bounds := TextBounds("HELLO")
	assert.Equal(t, 5*CharWidth+4*CharSpacing, bounds.Width)
	assert.Equal(t, CharHeight, bounds.Height)

	assert.Equal(t, Bounds{}, TextBounds(""))
}
