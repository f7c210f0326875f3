package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/cors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

func NewServer(funcs ...OptionFunc) *Server {
	return &Server{
		opts: NewOptions(funcs...),
	}
}

// Run starts the HTTP server and blocks until the context is cancelled
// or the server fails.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	basePath := strings.TrimSuffix(s.opts.BaseURL, "/")

	mux.HandleFunc("GET "+basePath+"/health", s.handleHealth)

	for prefix, handler := range s.opts.Mounts {
		mux.Handle(basePath+prefix, http.StripPrefix(strippedPrefix(basePath+prefix), handler))
	}

	var handler http.Handler = mux

	if s.opts.CORS != nil {
		handler = cors.New(cors.Options{
			AllowedOrigins:   s.opts.CORS.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}).Handler(handler)
	}

	handler = sloghttp.New(slog.Default())(handler)

	server := &http.Server{
		Addr:    s.opts.Address,
		Handler: handler,
	}

	errs := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}
	}()

	select {
	case err := <-errs:
		return errors.WithStack(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func strippedPrefix(prefix string) string {
	if len(prefix) > 1 && prefix[len(prefix)-1] == '/' {
		return prefix[:len(prefix)-1]
	}

	return prefix
}
