// Package render converts screen content into fixed-size canvases for
// e-ink panels.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/byos/trmnl-go/internal/domain"
)

// Plain text layout constants. Content beyond these limits is silently
// truncated, never wrapped.
const (
	TextMaxLines    = 15
	TextMaxLineLen  = 60
	TextLineHeight  = 30
	TextMarginLeft  = 50
	TextMarginTop   = 50
	TextMarginBot   = 50
	textScale       = 2
	defaultScale    = 2
	defaultInset    = 10
	defaultBorderPx = 3
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Rasterize converts a content payload into a canvas of exactly width×height.
// Data URI payloads are the only path that can fail; malformed base64 or an
// undecodable bitmap is a validation error.
func Rasterize(p domain.ContentPayload, width, height int) (*domain.Canvas, error) {
	switch p.Kind {
	case domain.ContentText:
		return RenderText(p.Raw, width, height), nil
	case domain.ContentHTML:
		return RenderText(StripTags(p.Raw), width, height), nil
	case domain.ContentDataURI:
		img, err := DecodeDataURI(p.Raw)
		if err != nil {
			return nil, err
		}
		return RenderBitmap(img, width, height), nil
	case domain.ContentBigText:
		return RenderBigText(p.Raw, p.Subtitle, width, height), nil
	default:
		return nil, fmt.Errorf("unknown content kind %q", p.Kind)
	}
}

// RenderText draws newline-separated text line by line. Lines are clipped to
// TextMaxLineLen characters, at most TextMaxLines are drawn, and drawing
// stops early once the next line would run past the bottom margin. Empty
// content falls through to the default status layout.
func RenderText(content string, width, height int) *domain.Canvas {
	if content == "" {
		return RenderDefault(width, height, time.Now().UTC())
	}
	c := domain.NewCanvas(width, height)
	lines := strings.Split(content, "\n")
	if len(lines) > TextMaxLines {
		lines = lines[:TextMaxLines]
	}
	y := TextMarginTop
	for _, line := range lines {
		if y+TextLineHeight > height-TextMarginBot {
			break
		}
		runes := []rune(line)
		if len(runes) > TextMaxLineLen {
			runes = runes[:TextMaxLineLen]
		}
		DrawTextScaled(c, string(runes), TextMarginLeft, y, textScale, domain.Black)
		y += TextLineHeight
	}
	return c
}

// RenderDefault draws the no-content status layout: a border, a title line,
// a generation timestamp and two static status lines.
func RenderDefault(width, height int, now time.Time) *domain.Canvas {
	c := domain.NewCanvas(width, height)
	c.DrawRect(defaultInset, defaultInset, width-2*defaultInset, height-2*defaultInset, defaultBorderPx, domain.Black)

	DrawTextScaled(c, "TRMNL Custom Server", 50, 50, defaultScale, domain.Black)
	timestamp := now.UTC().Format("2006-01-02 15:04:05 UTC")
	DrawTextScaled(c, "Generated: "+timestamp, 50, 100, defaultScale, domain.Black)
	DrawTextScaled(c, "Status: Server Running", 50, 150, defaultScale, domain.Black)
	DrawTextScaled(c, "Ready for device connection", 50, 200, defaultScale, domain.Black)
	return c
}

// StripTags removes HTML markup with a permissive, non-nested pass and trims
// surrounding whitespace. A trailing `<` with no closing `>` is stripped
// greedily to the end of the input.
func StripTags(markup string) string {
	clean := tagPattern.ReplaceAllString(markup, "")
	if i := strings.IndexByte(clean, '<'); i >= 0 {
		clean = clean[:i]
	}
	return strings.TrimSpace(clean)
}

// RenderWelcome produces the device provisioning screen shown after setup.
func RenderWelcome(friendlyID string, now time.Time, width, height int) *domain.Canvas {
	content := fmt.Sprintf(`Welcome to TRMNL!

Device: %s
Status: Successfully Connected

Your device is now configured
and ready to display content.

Image format: PNG (1-bit)
Resolution: %dx%d

Server time: %s`,
		friendlyID, width, height, now.UTC().Format("2006-01-02 15:04:05 UTC"))
	return RenderText(content, width, height)
}

// RenderHelloWorld produces the default screen served to polling devices
// before any content has been pushed.
func RenderHelloWorld(now time.Time, width, height int) *domain.Canvas {
	subtitle := "YOUR TRMNL IS HACKED! | TIME: " + now.UTC().Format("15:04:05")
	return RenderBigText("HELLO WORLD", subtitle, width, height)
}
