// Package server serves rendered trees over HTTP.
//
// Routes:
//   - GET /, GET /tree: the tree as a complete HTML page
//   - GET /tree/fragment: the wrapped tree markup only
//   - GET /healthz: liveness probe
//
// The tree is obtained from a [Source] on every request, so edits to a
// definition file show up on reload without restarting the server.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/treemark/pkg/buildinfo"
	treeerrors "github.com/matzehuels/treemark/pkg/errors"
	"github.com/matzehuels/treemark/pkg/io"
	"github.com/matzehuels/treemark/pkg/render/markup"
	"github.com/matzehuels/treemark/pkg/render/page"
)

// shutdownTimeout bounds how long Serve waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Source returns the document to serve.
type Source func(ctx context.Context) (*io.Document, error)

// Config configures the handler.
type Config struct {
	Source   Source          // Required
	Renderer markup.Renderer // markup.Recursive if nil
	Check    bool            // Reject cycles and shared children (500 instead of hanging)
	Logger   *log.Logger     // log.Default() if nil
}

type handlers struct {
	cfg Config
}

// NewHandler returns the HTTP handler for cfg.
func NewHandler(cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	h := &handlers{cfg: cfg}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Server", buildinfo.Product()))

	r.Get("/", h.page)
	r.Route("/tree", func(r chi.Router) {
		r.Get("/", h.page)
		r.Get("/fragment", h.fragment)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, page.KindDocument)
}

func (h *handlers) fragment(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, page.KindFragment)
}

func (h *handlers) render(w http.ResponseWriter, r *http.Request, kind page.Kind) {
	ctx := r.Context()
	logger := h.cfg.Logger.With("request_id", RequestIDFromContext(ctx))

	doc, err := h.cfg.Source(ctx)
	if err != nil {
		logger.Error("load tree", "err", err)
		http.Error(w, treeerrors.UserMessage(err), statusFor(err))
		return
	}

	opts := page.Options{
		Title:       doc.Title,
		Heading:     doc.Heading,
		Description: doc.Description,
		Renderer:    h.cfg.Renderer,
		Check:       h.cfg.Check,
	}
	out, err := page.Build(ctx, opts, doc.Root, kind)
	if err != nil {
		logger.Error("render tree", "err", err)
		http.Error(w, treeerrors.UserMessage(err), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

// statusFor maps error codes to HTTP status codes. Problems with the served
// definition are server-side, so they map to 5xx.
func statusFor(err error) int {
	switch treeerrors.GetCode(err) {
	case treeerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Serve runs an HTTP server on addr until ctx is cancelled, then shuts it
// down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			return srv.Close()
		}
		return nil
	}
}
