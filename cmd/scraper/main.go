package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"

	"hireall/internal/app"
	"hireall/internal/config"
	"hireall/internal/logger"
	"hireall/internal/pipeline"
)

func main() {
	pages := flag.Int("pages", 2, "listing pages per board")
	workers := flag.Int("workers", 0, "detail fetch workers (0 = config default)")
	timeout := flag.Duration("timeout", 30*time.Minute, "whole-batch timeout")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", "development")
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.App.LogLevel, cfg.App.Environment)

	c, err := app.NewContainer(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init container")
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := c.Batch.Run(ctx, pipeline.BatchParams{Pages: *pages, Workers: *workers}); err != nil {
		logger.Fatal().Err(err).Msg("batch run failed")
	}
}
