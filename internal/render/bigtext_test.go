package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byos/trmnl-go/internal/domain"
)

// bigTextCells mirrors the cell layout of RenderBigText so tests can locate
// each glyph block.
func bigTextCells(text string, width, height int, hasSubtitle bool) (cellW, cellH, startX, startY int) {
	glyphs, spaces := 0, 0
	for _, r := range text {
		if r == ' ' {
			spaces++
		} else {
			glyphs++
		}
	}
	if glyphs == 0 {
		glyphs = 1
	}
	availWidth := width - bigTextSideMargin
	availHeight := height - bigTextPlainSpace
	if hasSubtitle {
		availHeight = height - bigTextSubtitleSpace
	}
	cellW = availWidth / (glyphs + spaces/2)
	cellH = availHeight * 2 / 3
	totalWidth := glyphs*cellW + spaces*cellW/3
	startX = (width - totalWidth) / 2
	startY = (availHeight-cellH)/2 + 10
	return
}

func TestRenderBigTextDimensions(t *testing.T) {
	c := RenderBigText("HI", "", 800, 480)

	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 480, c.Height)
}

func TestRenderBigTextEmptyInput(t *testing.T) {
	// Must not divide by zero or panic.
	c := RenderBigText("", "", 800, 480)

	require.NotNil(t, c)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			assert.True(t, c.GetPixel(x, y).Equals(domain.White))
		}
	}
}

func TestRenderBigTextSpacesOnly(t *testing.T) {
	c := RenderBigText("   ", "", 800, 480)

	require.NotNil(t, c)
}

func TestRenderBigTextSolidBlockForPlainGlyph(t *testing.T) {
	// 'X' has no cutout, so its cell is one solid block.
	c := RenderBigText("X", "", 800, 480)

	cellW, cellH, startX, startY := bigTextCells("X", 800, 480, false)
	blockW := cellW - bigTextCellGap

	assert.True(t, c.GetPixel(startX, startY).Equals(domain.Black))
	assert.True(t, c.GetPixel(startX+blockW/2, startY+cellH/2).Equals(domain.Black))
	assert.True(t, c.GetPixel(startX+blockW-1, startY+cellH-1).Equals(domain.Black))
	// Outside the block.
	assert.True(t, c.GetPixel(startX-1, startY).Equals(domain.White))
	assert.True(t, c.GetPixel(startX, startY+cellH).Equals(domain.White))
}

func TestRenderBigTextCutoutPunchesWhite(t *testing.T) {
	// 'O' carves a centered white ellipse out of the block.
	c := RenderBigText("O", "", 800, 480)

	cellW, cellH, startX, startY := bigTextCells("O", 800, 480, false)
	blockW := cellW - bigTextCellGap

	// Center of the block is inside the ellipse cutout.
	assert.True(t, c.GetPixel(startX+blockW/2, startY+cellH/2).Equals(domain.White))
	// Block frame stays black.
	assert.True(t, c.GetPixel(startX, startY).Equals(domain.Black))
	assert.True(t, c.GetPixel(startX+blockW-1, startY+cellH-1).Equals(domain.Black))
}

func TestRenderBigTextLowercaseUsesCutout(t *testing.T) {
	upper := RenderBigText("O", "", 800, 480)
	lower := RenderBigText("o", "", 800, 480)

	assert.Equal(t, upper.Pixels, lower.Pixels)
}

func TestRenderBigTextHelloWorldCells(t *testing.T) {
	const text = "HELLO WORLD"
	c := RenderBigText(text, "", 800, 480)

	cellW, cellH, startX, startY := bigTextCells(text, 800, 480, false)

	// Every glyph cell contains visible ink inside the canvas.
	x := startX
	for _, r := range text {
		if r == ' ' {
			x += cellW / 3
			continue
		}
		found := false
		for dy := 0; dy < cellH && !found; dy++ {
			for dx := 0; dx < cellW-bigTextCellGap; dx++ {
				p := c.GetPixel(x+dx, startY+dy)
				if p != nil && p.Equals(domain.Black) {
					found = true
					break
				}
			}
		}
		assert.True(t, found, "cell for %q has no ink", r)
		x += cellW
	}
}

func TestRenderBigTextSubtitleReservesSpace(t *testing.T) {
	subtitled := RenderBigText("H", "SUBTITLE", 800, 480)

	_, plainH, _, _ := bigTextCells("H", 800, 480, false)
	_, subH, _, subY := bigTextCells("H", 800, 480, true)
	assert.Greater(t, plainH, subH)

	// Subtitle text is drawn centered below the blocks.
	textY := subY + subH + bigTextSubtitleGap
	found := false
	for x := 0; x < subtitled.Width; x++ {
		if subtitled.GetPixel(x, textY).Equals(domain.Black) {
			found = true
			break
		}
	}
	assert.True(t, found)
}
