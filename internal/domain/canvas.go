// Package domain contains core domain types for the e-ink server.
package domain

import (
	"fmt"
	"image"
	"image/color"
)

// Default display dimensions for TRMNL e-ink panels.
const (
	DefaultWidth  = 800
	DefaultHeight = 480
)

// BytesPerPixel is the number of bytes per pixel (RGB).
const BytesPerPixel = 3

// RGB represents an RGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates a new RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Equals checks if two RGB colors are equal.
func (c RGB) Equals(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the RGB color.
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// The two tones of an e-ink panel. The canvas carries full RGB depth so the
// watermark stage can draw freely; quantization back to two tones happens at
// encode time.
var (
	White = NewRGB(255, 255, 255)
	Black = NewRGB(0, 0, 0)
)

// Canvas is an in-memory raster being composed before persistence. It starts
// out white and is drawn on in black; the monochrome encoder quantizes it
// down to a 1-bit PNG.
type Canvas struct {
	Width  int
	Height int
	// Pixels is a flat array of RGB values: [r0,g0,b0, r1,g1,b1, ...]
	Pixels []byte
}

// NewCanvas creates a new canvas filled with white.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*BytesPerPixel),
	}
	c.Fill(White)
	return c
}

// SetPixel sets a single pixel. Out of bounds coordinates are silently ignored.
func (c *Canvas) SetPixel(x, y int, col RGB) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	offset := (y*c.Width + x) * BytesPerPixel
	c.Pixels[offset] = col.R
	c.Pixels[offset+1] = col.G
	c.Pixels[offset+2] = col.B
}

// GetPixel returns the color at the specified coordinates, or nil if out of bounds.
func (c *Canvas) GetPixel(x, y int) *RGB {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return nil
	}
	offset := (y*c.Width + x) * BytesPerPixel
	return &RGB{
		R: c.Pixels[offset],
		G: c.Pixels[offset+1],
		B: c.Pixels[offset+2],
	}
}

// Fill fills the entire canvas with the specified color.
func (c *Canvas) Fill(col RGB) {
	for i := 0; i < c.Width*c.Height; i++ {
		offset := i * BytesPerPixel
		c.Pixels[offset] = col.R
		c.Pixels[offset+1] = col.G
		c.Pixels[offset+2] = col.B
	}
}

// FillRect fills a rectangular area with the specified color.
func (c *Canvas) FillRect(x, y, width, height int, col RGB) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			c.SetPixel(x+dx, y+dy, col)
		}
	}
}

// DrawRect draws a rectangle outline with the given stroke thickness, drawn
// inward from the outer edge.
func (c *Canvas) DrawRect(x, y, width, height, thickness int, col RGB) {
	for t := 0; t < thickness; t++ {
		for i := 0; i < width; i++ {
			c.SetPixel(x+i, y+t, col)
			c.SetPixel(x+i, y+height-1-t, col)
		}
		for i := 0; i < height; i++ {
			c.SetPixel(x+t, y+i, col)
			c.SetPixel(x+width-1-t, y+i, col)
		}
	}
}

// FillEllipse fills the ellipse inscribed in the given bounding box.
func (c *Canvas) FillEllipse(x, y, width, height int, col RGB) {
	if width <= 0 || height <= 0 {
		return
	}
	cx := float64(x) + float64(width)/2
	cy := float64(y) + float64(height)/2
	rx := float64(width) / 2
	ry := float64(height) / 2
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.SetPixel(px, py, col)
			}
		}
	}
}

// FillTriangle fills the triangle with the given vertices using a scanline
// over the bounding box.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, col RGB) {
	minX := min3(x0, x1, x2)
	maxX := max3(x0, x1, x2)
	minY := min3(y0, y1, y2)
	maxY := max3(y0, y1, y2)

	// Twice the signed area; zero means a degenerate triangle.
	area := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	if area == 0 {
		return
	}

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			w0 := (x1-px)*(y2-py) - (x2-px)*(y1-py)
			w1 := (x2-px)*(y0-py) - (x0-px)*(y2-py)
			w2 := (x0-px)*(y1-py) - (x1-px)*(y0-py)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				c.SetPixel(px, py, col)
			}
		}
	}
}

// ToPaletted quantizes the canvas down to a two-color paletted image. Pixels
// darker than mid-gray become black, everything else white. The stdlib PNG
// encoder writes a two-entry palette at bit depth 1.
func (c *Canvas) ToPaletted() *image.Paletted {
	pal := color.Palette{color.White, color.Black}
	img := image.NewPaletted(image.Rect(0, 0, c.Width, c.Height), pal)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			offset := (y*c.Width + x) * BytesPerPixel
			sum := int(c.Pixels[offset]) + int(c.Pixels[offset+1]) + int(c.Pixels[offset+2])
			if sum < 384 {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
