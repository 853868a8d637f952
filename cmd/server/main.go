package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ordemia/ordemia/config"
	"github.com/ordemia/ordemia/pkg/otel"
	"github.com/ordemia/ordemia/server"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	configFlag := flag.String("config", "config.yaml", "configuration file")

	flag.Parse()

	level := slog.LevelInfo

	if otel.EnableDebug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := otel.Setup(ctx, "ordemia"); err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server starting", "address", cfg.Address)

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
