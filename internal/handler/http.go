package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/tagbook/internal/handler/gen"
	"github.com/pkordes/tagbook/internal/middleware"
)

// Options configures NewHTTPHandler. The zero value is usable.
type Options struct {
	// Router receives the API routes. When nil a new chi router is used with
	// middleware.EscapedRoutePath installed; a supplied router must install
	// it itself, before any route.
	Router chi.Router

	// Middlewares run per operation, after the generated wrapper has put the
	// operation's security scopes on the context (see middleware.NewAuthenticator).
	Middlewares []gen.MiddlewareFunc

	// Logger receives unhandled errors. Defaults to a discarding logger.
	Logger *slog.Logger
}

// NewHTTPHandler wires s into the generated chi routes with the strict
// server's error hooks and request-context middleware installed.
// main.go and the handler tests both build the API through here.
func NewHTTPHandler(s *Server, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	strict := gen.NewStrictHandlerWithOptions(s,
		[]gen.StrictMiddlewareFunc{withBaseURL},
		gen.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  requestErrorHandler,
			ResponseErrorHandlerFunc: responseErrorHandler(log),
		},
	)

	router := opts.Router
	if router == nil {
		r := chi.NewRouter()
		r.Use(middleware.EscapedRoutePath)
		router = r
	}

	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       router,
		Middlewares:      opts.Middlewares,
		ErrorHandlerFunc: requestErrorHandler,
	})
}

type baseURLKey struct{}

// withBaseURL is a strict middleware that records scheme://host of the
// inbound request so handlers can build absolute Location headers.
func withBaseURL(next gen.StrictHandlerFunc, _ string) gen.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
		return next(context.WithValue(ctx, baseURLKey{}, requestBaseURL(r)), w, r, request)
	}
}

func baseURLFromContext(ctx context.Context) string {
	base, _ := ctx.Value(baseURLKey{}).(string)
	return base
}

// requestBaseURL is https when the connection is TLS or a proxy says so via
// X-Forwarded-Proto, http otherwise.
func requestBaseURL(r *http.Request) string {
	if r.Host == "" {
		return ""
	}
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
