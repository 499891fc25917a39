package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/copygate/internal/analytics"
	"github.com/jonathan/copygate/internal/config"
	"github.com/jonathan/copygate/internal/llm"
	"github.com/jonathan/copygate/internal/repair"
	"github.com/jonathan/copygate/internal/rules"
	"github.com/jonathan/copygate/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the evaluate and fix endpoints of the quality gate.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides COPYGATE_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reg, err := rules.NewRegistry()
	if err != nil {
		return fmt.Errorf("failed to load rule registry: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	genCfg := llm.DefaultConfig()
	genCfg.Model = cfg.GeneratorModel
	genCfg.Timeout = cfg.GeneratorTimeout
	gen, err := llm.NewGeminiClient(ctx, genCfg, cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create generator client: %w", err)
	}
	defer func() { _ = gen.Close() }()

	emitter := analytics.NewPrometheus()
	fixer := repair.NewFixer(reg, gen, emitter, logger, repair.Options{
		MaxAttempts:     cfg.MaxFixAttempts,
		SimilarityFloor: cfg.SimilarityFloor,
		TestMode:        cfg.TestMode,
	})

	srv := server.New(server.Config{Port: cfg.Port, TestMode: cfg.TestMode}, reg, fixer, emitter, logger)
	return srv.Run(ctx)
}
