package render

import (
	"unicode"

	"github.com/byos/trmnl-go/internal/domain"
)

// Big text layout constants. Each non-space character gets a cell sized from
// the canvas dimensions; spaces advance a third of a cell.
const (
	bigTextSideMargin    = 20
	bigTextSubtitleSpace = 100
	bigTextPlainSpace    = 20
	bigTextCellGap       = 8
	bigTextSubtitleGap   = 30
	bigTextSubtitleScale = 2
)

// glyphCutout punches white detail out of a solid glyph block. The
// coordinates describe the inner box of the block (the block minus its
// margin).
type glyphCutout func(c *domain.Canvas, x, y, w, h int)

// glyphCutouts approximates legibility for a handful of letters. Characters
// without an entry render as plain solid blocks.
var glyphCutouts = map[rune]glyphCutout{
	'H': func(c *domain.Canvas, x, y, w, h int) {
		bar := w / 4
		c.FillRect(x+bar, y, w-2*bar, h, domain.White)
		c.FillRect(x, y+h/3, w, h/3, domain.Black)
	},
	'E': func(c *domain.Canvas, x, y, w, h int) {
		c.FillRect(x+w/2, y, w-w/2, h, domain.White)
		c.FillRect(x, y+h/3, w, h/3, domain.Black)
	},
	'L': func(c *domain.Canvas, x, y, w, h int) {
		c.FillRect(x+w/3, y, w-w/3, 2*h/3, domain.White)
	},
	'O': func(c *domain.Canvas, x, y, w, h int) {
		c.FillEllipse(x+w/4, y+h/4, w/2, h/2, domain.White)
	},
	'W': func(c *domain.Canvas, x, y, w, h int) {
		c.FillTriangle(x+w/4, y, x+w/2, y+h/2, x+3*w/4, y, domain.White)
	},
	'R': func(c *domain.Canvas, x, y, w, h int) {
		c.FillRect(x+w/2, y, w-w/2, h/2, domain.White)
		c.FillRect(x+w/3, y+h/4, w-w/3, h/2, domain.White)
	},
	'D': func(c *domain.Canvas, x, y, w, h int) {
		c.FillRect(x+2*w/3, y, w-2*w/3, h, domain.White)
		c.FillEllipse(x+w/3, y, w-w/3, h, domain.White)
	},
}

// RenderBigText synthesizes oversized block glyphs that fill most of the
// canvas, with an optional small centered subtitle below. This path never
// falls back to the bitmap font for the main text.
func RenderBigText(text, subtitle string, width, height int) *domain.Canvas {
	c := domain.NewCanvas(width, height)

	glyphs := 0
	spaces := 0
	for _, r := range text {
		if r == ' ' {
			spaces++
		} else {
			glyphs++
		}
	}
	// Avoid division by zero on empty input.
	if glyphs == 0 {
		glyphs = 1
	}

	availWidth := width - bigTextSideMargin
	availHeight := height - bigTextPlainSpace
	if subtitle != "" {
		availHeight = height - bigTextSubtitleSpace
	}

	cellWidth := availWidth / (glyphs + spaces/2)
	cellHeight := availHeight * 2 / 3

	totalWidth := glyphs*cellWidth + spaces*cellWidth/3
	startX := (width - totalWidth) / 2
	startY := (availHeight-cellHeight)/2 + 10

	x := startX
	for _, r := range text {
		if r == ' ' {
			x += cellWidth / 3
			continue
		}
		blockWidth := cellWidth - bigTextCellGap
		c.FillRect(x, startY, blockWidth, cellHeight, domain.Black)

		inset := blockWidth / 8
		innerX := x + inset
		innerY := startY + inset
		innerW := blockWidth - 2*inset
		innerH := cellHeight - 2*inset
		if cutout, ok := glyphCutouts[unicode.ToUpper(r)]; ok && innerW > 0 && innerH > 0 {
			cutout(c, innerX, innerY, innerW, innerH)
		}
		x += cellWidth
	}

	if subtitle != "" {
		subY := startY + cellHeight + bigTextSubtitleGap
		DrawTextCentered(c, subtitle, width, subY, bigTextSubtitleScale, domain.Black)
	}

	return c
}
