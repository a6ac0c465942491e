/**
 * HTTP server for the lipi service
 *
 * Thin wrapper over chi + the stdlib http.Server. Routes mirror the
 * public API: detection, OCR extraction, transliteration and the
 * phrasebook CRUD, plus the embedded single-page UI at /.
 */

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Server wires the handlers into a chi router.
type Server struct {
	addr string
	srv  *http.Server
	log  zerolog.Logger
}

// NewServer builds the router and the underlying http.Server.
func NewServer(addr string, h *Handlers, log zerolog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/", h.Index)
	r.Route("/api", func(r chi.Router) {
		r.Post("/detect", h.Detect)
		r.Post("/ocr", h.OCR)
		r.Post("/transliterate", h.Transliterate)
		r.Route("/phrasebook", func(r chi.Router) {
			r.Post("/save", h.PhrasebookSave)
			r.Get("/list", h.PhrasebookList)
			r.Get("/get/{id}", h.PhrasebookGet)
			r.Delete("/delete/{id}", h.PhrasebookDelete)
			r.Get("/download/{id}", h.PhrasebookDownload)
			r.Get("/download_all", h.PhrasebookDownloadAll)
		})
	})

	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Handler exposes the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run starts the server and blocks until it is shut down.
func (s *Server) Run() error {
	s.log.Info().Str("addr", s.addr).Msg("http listening")
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// requestLogger logs one line per request.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
