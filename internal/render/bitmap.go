package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/byos/trmnl-go/internal/domain"
)

// DecodeDataURI decodes the base64 payload of a data URI into a bitmap. The
// prefix up to and including the first comma is ignored; input without a
// comma is treated as bare base64.
func DecodeDataURI(uri string) (image.Image, error) {
	payload := uri
	if i := strings.IndexByte(uri, ','); i >= 0 {
		payload = uri[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode bitmap: %w", err)
	}
	return img, nil
}

// RenderBitmap shrinks a bitmap to fit within the target canvas, preserving
// aspect ratio and never upscaling, then centers it on a white background of
// exactly width×height.
func RenderBitmap(src image.Image, width, height int) *domain.Canvas {
	c := domain.NewCanvas(width, height)

	bounds := src.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return c
	}

	scale := 1.0
	if sx := float64(width) / float64(srcW); sx < scale {
		scale = sx
	}
	if sy := float64(height) / float64(srcH); sy < scale {
		scale = sy
	}

	dstW := int(float64(srcW) * scale)
	dstH := int(float64(srcH) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, bounds, xdraw.Over, nil)

	offX := (width - dstW) / 2
	offY := (height - dstH) / 2
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			r, g, b, a := scaled.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			c.SetPixel(offX+x, offY+y, domain.NewRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return c
}
