package render

import "github.com/byos/trmnl-go/internal/domain"

// Watermark layout constants.
const (
	watermarkMargin  = 5
	watermarkPadding = 2
)

// Watermark overlays the given label flush to the bottom-right corner of the
// canvas, on an opaque white box with a thin black outline so the label stays
// legible over any content. Applied to every generated artifact.
func Watermark(c *domain.Canvas, label string) {
	if label == "" {
		return
	}
	bounds := TextBounds(label)
	x := c.Width - bounds.Width - watermarkMargin
	y := c.Height - bounds.Height - watermarkMargin

	boxX := x - watermarkPadding
	boxY := y - watermarkPadding
	boxW := bounds.Width + 2*watermarkPadding
	boxH := bounds.Height + 2*watermarkPadding
	c.FillRect(boxX, boxY, boxW, boxH, domain.White)
	c.DrawRect(boxX, boxY, boxW, boxH, 1, domain.Black)

	DrawText(c, label, x, y, domain.Black)
}
