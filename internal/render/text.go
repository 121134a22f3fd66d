package render

import "github.com/byos/trmnl-go/internal/domain"

// Bounds represents the bounding box of rendered text.
type Bounds struct {
	Width  int
	Height int
}

// DrawText draws text at the specified position at scale 1.
func DrawText(c *domain.Canvas, text string, x, y int, col domain.RGB) {
	DrawTextScaled(c, text, x, y, 1, col)
}

// DrawTextScaled draws text with each font pixel expanded to a scale×scale
// block. Scale values below 1 are treated as 1.
func DrawTextScaled(c *domain.Canvas, text string, x, y, scale int, col domain.RGB) {
	if scale < 1 {
		scale = 1
	}
	currentX := x
	for _, char := range text {
		DrawCharScaled(c, char, currentX, y, scale, col)
		currentX += (CharWidth + CharSpacing) * scale
	}
}

// DrawTextCentered draws scaled text centered horizontally within the given width.
func DrawTextCentered(c *domain.Canvas, text string, width, y, scale int, col domain.RGB) {
	textWidth := MeasureTextScaled(text, scale)
	x := (width - textWidth) / 2
	DrawTextScaled(c, text, x, y, scale, col)
}

// DrawCharScaled draws a single character at the specified position and scale.
func DrawCharScaled(c *domain.Canvas, char rune, x, y, scale int, col domain.RGB) {
	bitmap := GetCharBitmap(char)
	for row := 0; row < CharHeight; row++ {
		for colIdx := 0; colIdx < CharWidth; colIdx++ {
			if HasBitSet(bitmap[row], colIdx) {
				c.FillRect(x+colIdx*scale, y+row*scale, scale, scale, col)
			}
		}
	}
}

// MeasureText returns the width of text in pixels at scale 1.
func MeasureText(text string) int {
	return MeasureTextScaled(text, 1)
}

// MeasureTextScaled returns the width of scaled text in pixels.
func MeasureTextScaled(text string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	return (len(runes)*CharWidth + (len(runes)-1)*CharSpacing) * scale
}

// TextBounds returns the bounding box for the given text at scale 1.
func TextBounds(text string) Bounds {
	if len(text) == 0 {
		return Bounds{}
	}
	return Bounds{
		Width:  MeasureText(text),
		Height: CharHeight,
	}
}
