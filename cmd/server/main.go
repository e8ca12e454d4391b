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

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/wesplit/internal/auth"
	"github.com/mmynk/wesplit/internal/config"
	"github.com/mmynk/wesplit/internal/currency"
	"github.com/mmynk/wesplit/internal/metrics"
	"github.com/mmynk/wesplit/internal/middleware"
	"github.com/mmynk/wesplit/internal/service"
	"github.com/mmynk/wesplit/internal/storage/memory"
	"github.com/mmynk/wesplit/pkg/api/apiconnect"
	"github.com/mmynk/wesplit/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(cfg.MetricsNamespace, prometheus.DefaultRegisterer)

	store := memory.New(cfg.ScreenTTL)
	store.OnClose = m.ScreensClosed
	defer store.Close()
	go store.RunSweeper(ctx, cfg.SweepInterval)
	slog.Info("Screen store initialized", "ttl", cfg.ScreenTTL, "sweep_interval", cfg.SweepInterval)

	formatter := currency.FromEnvironment(cfg.Locale)
	slog.Info("Currency formatting", "locale", formatter.Locale(), "currency", formatter.Code())

	tokens := auth.NewTokenManager(cfg.ScreenSecret, cfg.ScreenTTL)
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(m),
		middleware.RequireScreen(tokens, apiconnect.PublicProcedures),
	)

	mux := http.NewServeMux()

	splitPath, splitHandler := apiconnect.NewSplitServiceHandler(
		service.NewSplitService(store, tokens, formatter, m),
		interceptors,
	)
	mux.Handle(splitPath, splitHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms", middleware.ScreenIDHeader, middleware.ScreenTokenHeader},
	}).Handler(loggingMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	slog.Info("Connect server starting", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// loggingMiddleware logs every HTTP request at debug level.
// RPC outcomes are logged by the Connect interceptor.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
