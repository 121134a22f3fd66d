// Package imaging persists rendered canvases as 1-bit monochrome PNGs and
// tracks the most recently produced artifact.
package imaging

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/byos/trmnl-go/internal/domain"
)

// DefaultToolTimeout bounds a single external quantization run. A hung tool
// is treated as a failure, not an indefinitely blocking call.
const DefaultToolTimeout = 10 * time.Second

// Encoder writes a canvas to a PNG file at the given path. A file always
// exists at path on successful return; strict 1-bit depth is best effort and
// callers must treat the PNG's bit depth as advisory.
type Encoder interface {
	Encode(c *domain.Canvas, path string) error
	Name() string
}

// NativeEncoder quantizes in-process: the canvas is thresholded to a
// two-color palette, which the stdlib PNG encoder writes at bit depth 1.
type NativeEncoder struct{}

// Name identifies the encoder in logs.
func (NativeEncoder) Name() string { return "native" }

// Encode writes the canvas as a two-color paletted PNG.
func (NativeEncoder) Encode(c *domain.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, c.ToPaletted()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// ToolEncoder runs an external ImageMagick binary to force true 1-bit-depth
// output with metadata stripped. On any tool failure the already-written
// temporary file is renamed into place, so a usable PNG always lands at the
// target path.
type ToolEncoder struct {
	Tool    string
	Timeout time.Duration
}

// Name identifies the encoder in logs.
func (e *ToolEncoder) Name() string { return "imagemagick" }

// Encode writes the canvas to a temporary PNG and quantizes it into place.
func (e *ToolEncoder) Encode(c *domain.Canvas, path string) error {
	tmp := path + ".tmp.png"
	if err := (NativeEncoder{}).Encode(c, tmp); err != nil {
		return err
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultToolTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.Tool,
		tmp, "-monochrome", "-colors", "2", "-depth", "1", "-strip", "png:"+path)
	if err := cmd.Run(); err != nil {
		// Tool missing, crashed or timed out: the temp file is already a
		// valid (if not strictly quantized) PNG.
		if renameErr := os.Rename(tmp, path); renameErr != nil {
			return fmt.Errorf("quantize failed (%v) and fallback rename failed: %w", err, renameErr)
		}
		return nil
	}
	_ = os.Remove(tmp)
	return nil
}

// DetectEncoder probes once at startup for the ImageMagick binary and picks
// the tool-backed encoder when available, the native one otherwise.
func DetectEncoder(log *zap.Logger, timeout time.Duration) Encoder {
	if path, err := exec.LookPath("magick"); err == nil {
		log.Info("using imagemagick for monochrome quantization", zap.String("path", path))
		return &ToolEncoder{Tool: path, Timeout: timeout}
	}
	log.Info("imagemagick not found, using native 1-bit encoder")
	return NativeEncoder{}
}
