// Package server exposes the device-facing HTTP surface.
package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/byos/trmnl-go/internal/config"
	"github.com/byos/trmnl-go/internal/imaging"
	"github.com/byos/trmnl-go/internal/storage"
)

// Version is reported by the status endpoint.
const Version = "1.0.0"

// Server wires the rasterization pipeline, image store and device directory
// behind the HTTP surface. All endpoints have open access.
type Server struct {
	log     *zap.Logger
	cfg     *config.Config
	store   storage.Store
	images  *imaging.Store
	latest  *imaging.Latest
	refresh *refreshCell
}

// New creates a server. The latest-image register starts unset and the
// refresh rate starts at the configured default.
func New(log *zap.Logger, cfg *config.Config, store storage.Store, images *imaging.Store) *Server {
	return &Server{
		log:     log,
		cfg:     cfg,
		store:   store,
		images:  images,
		latest:  &imaging.Latest{},
		refresh: &refreshCell{seconds: cfg.Display.RefreshRate},
	}
}

// Router builds the HTTP handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleStatus)
	r.Get("/status", s.handleStatus)

	r.Route("/api", func(r chi.Router) {
		r.Get("/display", s.handleDisplay)
		r.Post("/setup", s.handleSetup)
		r.Post("/log", s.handleLog)
		r.With(httprate.LimitByIP(60, time.Minute)).Post("/screens", s.handleScreens)
		r.Post("/refresh_rate", s.handleRefreshRate)
		r.Get("/current_screen", s.handleCurrentScreen)
	})

	// Generated PNGs are served read-only; filenames are the only addressing
	// scheme.
	fileServer := http.StripPrefix("/static/images/", http.FileServer(http.Dir(s.images.Dir())))
	r.Method(http.MethodGet, "/static/images/*", fileServer)

	return r
}

// recoverer converts any unhandled panic into the device-facing 500 envelope.
// The raw message is included; there is no authentication boundary to leak
// across, but this needs revisiting before any multi-tenant reuse.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				if rv == http.ErrAbortHandler {
					panic(rv)
				}
				s.log.Error("panic serving request",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rv))
				writeInternalError(w, rv)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// refreshCell is the process-wide default refresh rate handed to polling
// devices, mutable through the refresh_rate endpoint.
type refreshCell struct {
	mu      sync.Mutex
	seconds int
}

func (c *refreshCell) Get() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seconds
}

func (c *refreshCell) Set(seconds int) {
	c.mu.Lock()
	c.seconds = seconds
	c.mu.Unlock()
}
