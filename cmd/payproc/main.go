package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mvilaca/payproc/internal/config"
	"github.com/mvilaca/payproc/internal/csvio"
	"github.com/mvilaca/payproc/internal/handler"
	"github.com/mvilaca/payproc/internal/ledger"
	"github.com/mvilaca/payproc/internal/service"
)

func main() {
	serve := flag.Bool("serve", false, "Run as an HTTP service instead of processing a CSV file")
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *serve {
		runServer(cfg)
		return
	}
	runBatch(cfg, flag.Args())
}

// runBatch processes a CSV transaction file and writes the final account
// snapshot to stdout. Per-transaction rejections are logged to stderr and
// do not affect the exit code; a missing or malformed input file does.
func runBatch(cfg *config.Config, args []string) {
	// Batch mode logs human-readable text to stderr so stdout stays a
	// clean CSV document.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	if len(args) != 1 {
		logger.Error("usage: payproc <transactions.csv>")
		os.Exit(1)
	}

	f, err := os.Open(args[0])
	if err != nil {
		logger.Error("failed to open input", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	svc := service.NewLedgerService(ledger.New(), logger)

	stats, err := svc.ProcessStream(f)
	if err != nil {
		logger.Error("failed to decode input", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Debug("stream processed",
		slog.Int("processed", stats.Processed),
		slog.Int("rejected", stats.Rejected),
	)

	if err := csvio.WriteSnapshot(os.Stdout, svc.Accounts()); err != nil {
		logger.Error("failed to write snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runServer exposes the ledger over HTTP until SIGINT/SIGTERM.
func runServer(cfg *config.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	svc := service.NewLedgerService(ledger.New(), logger)
	router := handler.NewRouter(svc, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
