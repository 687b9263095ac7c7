// Package server exposes the portfolio page and its JSON API over HTTP.
package server

import (
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/naka-gawa/devfolio/internal/usecase"
	"github.com/naka-gawa/devfolio/internal/view"
	"github.com/rs/zerolog"
)

// DefaultPageTimeout bounds how long the page waits for GitHub data before
// rendering whatever has settled so far.
const DefaultPageTimeout = 5 * time.Second

type Options struct {
	// ProfileURL is linked from the repository panels.
	ProfileURL string
	// StaticDir replaces the embedded assets when set.
	StaticDir   string
	PageTimeout time.Duration
}

type Server struct {
	proxy    *usecase.Proxy
	analyzer *usecase.Analyzer
	renderer *view.Renderer
	opts     Options
	logger   zerolog.Logger
	now      func() time.Time
}

func New(proxy *usecase.Proxy, analyzer *usecase.Analyzer, renderer *view.Renderer, opts Options, logger zerolog.Logger) *Server {
	if opts.PageTimeout <= 0 {
		opts.PageTimeout = DefaultPageTimeout
	}
	return &Server{
		proxy:    proxy,
		analyzer: analyzer,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

// Routes builds the router serving every endpoint.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apiLogger(s.logger))
	r.Use(jsonRecoverer(s.logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/github/profile", s.handleProfile)
		r.Get("/github/repos", s.handleRepositories)
		r.Post("/analyze", s.handleAnalyze)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(filesOnly{s.staticFS()}))))
	r.Get("/", s.handlePage)

	return r
}

// filesOnly hides directories so the file server never lists them.
type filesOnly struct {
	fs.FS
}

func (f filesOnly) Open(name string) (fs.File, error) {
	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}

func (s *Server) staticFS() fs.FS {
	if s.opts.StaticDir != "" {
		return os.DirFS(s.opts.StaticDir)
	}
	return view.StaticFS()
}
