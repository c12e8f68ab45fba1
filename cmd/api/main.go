// Package main is the entry point for the Tagbook API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkordes/tagbook/internal/auth"
	"github.com/pkordes/tagbook/internal/config"
	"github.com/pkordes/tagbook/internal/docs"
	"github.com/pkordes/tagbook/internal/handler"
	"github.com/pkordes/tagbook/internal/handler/gen"
	"github.com/pkordes/tagbook/internal/middleware"
	"github.com/pkordes/tagbook/internal/repo"
	"github.com/pkordes/tagbook/internal/service"
	"github.com/pkordes/tagbook/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Default slog handler until the JSON logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// Schema is managed separately with `tagctl migrate up`.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Auth -------------------------------------------------------------
	verifier, err := auth.NewTokenVerifier([]byte(cfg.JWTSecret), cfg.JWTIssuer)
	if err != nil {
		slog.Error("failed to create token verifier", "error", err)
		os.Exit(1)
	}
	policies := auth.Policies{
		auth.PolicyTrustedDomain: auth.EmailDomain(cfg.TrustedEmailDomain),
	}

	// --- Services ---------------------------------------------------------
	tagSvc := service.NewTagService(repo.NewTagRepo(pool))
	srv := handler.NewServer(tagSvc, handler.NewTagMapper())

	// --- Router -----------------------------------------------------------
	// Order: EscapedRoutePath → RequestID → RealIP → Logger → Recoverer → CORS → MaxBodySize.
	// EscapedRoutePath makes chi route on the raw path so tag names are
	// decoded once, by the generated parameter binding.
	// Authentication runs per operation inside the generated wrapper, where
	// the operation's security scopes are known.
	r := chi.NewRouter()
	r.Use(middleware.EscapedRoutePath)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger, "/healthz"))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Group(docs.Routes(cfg.Docs, spec.OpenAPI))

	handler.NewHTTPHandler(srv, handler.Options{
		Router:      r,
		Middlewares: []gen.MiddlewareFunc{middleware.NewAuthenticator(verifier, policies, logger)},
		Logger:      logger,
	})

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "docs", cfg.Docs.UIEndpoint)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
