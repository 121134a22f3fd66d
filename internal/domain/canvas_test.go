package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRGB(t *testing.T) {
	rgb := NewRGB(255, 128, 64)
	assert.Equal(t, uint8(255), rgb.R)
	assert.Equal(t, uint8(128), rgb.G)
	assert.Equal(t, uint8(64), rgb.B)
}

func TestRGBEquals(t *testing.T) {
	rgb1 := NewRGB(100, 150, 200)
	rgb2 := NewRGB(100, 150, 200)
	rgb3 := NewRGB(100, 150, 201)

	assert.True(t, rgb1.Equals(rgb2))
	assert.False(t, rgb1.Equals(rgb3))
}

func TestRGBString(t *testing.T) {
	rgb := NewRGB(255, 128, 64)
	assert.Equal(t, "RGB(255, 128, 64)", rgb.String())
}

func TestNewCanvasIsWhite(t *testing.T) {
	c := NewCanvas(8, 8)

	assert.Equal(t, 8, c.Width)
	assert.Equal(t, 8, c.Height)
	assert.Equal(t, 8*8*BytesPerPixel, len(c.Pixels))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pixel := c.GetPixel(x, y)
			require.NotNil(t, pixel)
			assert.True(t, pixel.Equals(White), "Pixel at (%d, %d) should be white", x, y)
		}
	}
}

func TestCanvasSetGetPixel(t *testing.T) {
	c := NewCanvas(8, 8)

	c.SetPixel(3, 5, Black)
	pixel := c.GetPixel(3, 5)

	require.NotNil(t, pixel)
	assert.True(t, pixel.Equals(Black))
}

func TestCanvasSetPixelOutOfBounds(t *testing.T) {
	c := NewCanvas(8, 8)

	// Should not panic
	c.SetPixel(-1, 0, Black)
	c.SetPixel(0, -1, Black)
	c.SetPixel(8, 0, Black)
	c.SetPixel(0, 8, Black)

	assert.Nil(t, c.GetPixel(8, 8))
	assert.Nil(t, c.GetPixel(-1, -1))
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(10, 10)

	c.FillRect(2, 2, 4, 3, Black)

	assert.True(t, c.GetPixel(2, 2).Equals(Black))
	assert.True(t, c.GetPixel(5, 4).Equals(Black))
	assert.True(t, c.GetPixel(6, 2).Equals(White))
	assert.True(t, c.GetPixel(2, 5).Equals(White))
}

func TestCanvasFillRectClips(t *testing.T) {
	c := NewCanvas(4, 4)

	// Extends past the canvas edge without panicking.
	c.FillRect(2, 2, 10, 10, Black)

	assert.True(t, c.GetPixel(3, 3).Equals(Black))
	assert.True(t, c.GetPixel(1, 1).Equals(White))
}

func TestCanvasDrawRectThickness(t *testing.T) {
	c := NewCanvas(20, 20)

	c.DrawRect(2, 2, 16, 16, 3, Black)

	// Outer edge and the two inner strokes are black.
	assert.True(t, c.GetPixel(2, 2).Equals(Black))
	assert.True(t, c.GetPixel(10, 3).Equals(Black))
	assert.True(t, c.GetPixel(10, 4).Equals(Black))
	// Interior stays white.
	assert.True(t, c.GetPixel(10, 10).Equals(White))
	// Bottom edge.
	assert.True(t, c.GetPixel(10, 17).Equals(Black))
}

func TestCanvasFillEllipse(t *testing.T) {
	c := NewCanvas(20, 20)

	c.FillEllipse(4, 4, 12, 12, Black)

	// Center is filled, corners of the bounding box are not.
	assert.True(t, c.GetPixel(10, 10).Equals(Black))
	assert.True(t, c.GetPixel(4, 4).Equals(White))
	assert.True(t, c.GetPixel(15, 15).Equals(White))
}

func TestCanvasFillEllipseDegenerate(t *testing.T) {
	c := NewCanvas(10, 10)

	// Zero-size ellipse should not panic or draw.
	c.FillEllipse(2, 2, 0, 5, Black)
	assert.True(t, c.GetPixel(2, 2).Equals(White))
}

func TestCanvasFillTriangle(t *testing.T) {
	c := NewCanvas(20, 20)

	c.FillTriangle(0, 0, 10, 19, 19, 0, Black)

	// Top edge between the outer vertices is covered.
	assert.True(t, c.GetPixel(10, 1).Equals(Black))
	// Far corners outside the triangle stay white.
	assert.True(t, c.GetPixel(0, 19).Equals(White))
	assert.True(t, c.GetPixel(19, 19).Equals(White))
}

func TestCanvasFillTriangleDegenerate(t *testing.T) {
	c := NewCanvas(10, 10)

	// Collinear vertices should not panic.
	c.FillTriangle(0, 0, 5, 0, 9, 0, Black)
}

func TestToPaletted(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetPixel(1, 1, Black)
	c.SetPixel(2, 2, NewRGB(30, 30, 30)) // dark gray quantizes to black
	c.SetPixel(3, 3, NewRGB(200, 200, 200))

	img := c.ToPaletted()

	require.Equal(t, 2, len(img.Palette))
	assert.Equal(t, uint8(1), img.ColorIndexAt(1, 1))
	assert.Equal(t, uint8(1), img.ColorIndexAt(2, 2))
	assert.Equal(t, uint8(0), img.ColorIndexAt(3, 3))
	assert.Equal(t, uint8(0), img.ColorIndexAt(0, 0))
}
