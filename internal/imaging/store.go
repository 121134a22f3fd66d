package imaging

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/byos/trmnl-go/internal/domain"
)

// timestampLayout is the UTC timestamp embedded in derived filenames.
const timestampLayout = "2006-01-02-T15-04-05Z"

// Artifact is a persisted screen image. Filename carries no extension.
type Artifact struct {
	Filename string
	Path     string
}

// Store writes final PNGs under a served directory. Filenames are the only
// addressing scheme; a second save with the same filename silently
// overwrites (last write wins).
type Store struct {
	dir string
	enc Encoder
}

// NewStore creates the output directory (including parents) eagerly.
func NewStore(dir string, enc Encoder) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir %s: %w", dir, err)
	}
	return &Store{dir: dir, enc: enc}, nil
}

// Dir returns the directory artifacts are written to.
func (s *Store) Dir() string { return s.dir }

// Save encodes the canvas to <dir>/<filename>.png. An empty filename derives
// one from the canvas contents and the current time.
func (s *Store) Save(c *domain.Canvas, filename string) (Artifact, error) {
	if filename == "" {
		filename = DeriveFilename(string(c.Pixels), time.Now().UTC())
	}
	path := filepath.Join(s.dir, filename+".png")
	if err := s.enc.Encode(c, path); err != nil {
		return Artifact{}, fmt.Errorf("save %s: %w", filename, err)
	}
	return Artifact{Filename: filename, Path: path}, nil
}

// DeriveFilename builds a deterministic name from the content hash and a UTC
// timestamp. Two pushes of the same content within the same second collide;
// that is accepted, the later write wins.
func DeriveFilename(content string, now time.Time) string {
	if content == "" {
		content = "default"
	}
	sum := md5.Sum([]byte(content))
	return fmt.Sprintf("generated-%s-%x", now.UTC().Format(timestampLayout), sum[:4])
}
