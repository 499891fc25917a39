package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/copygate/internal/analytics"
	"github.com/jonathan/copygate/internal/config"
	"github.com/jonathan/copygate/internal/llm"
	"github.com/jonathan/copygate/internal/repair"
	"github.com/jonathan/copygate/internal/rules"
	"github.com/jonathan/copygate/internal/textdiff"
)

var (
	fixContentType string
	fixFile        string
	fixTestMode    bool
	fixJSON        bool
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Run the auto-fix loop over a text file",
	Long:  `Evaluate the file, ask the generator to repair any failing rules, and print the gated result. The original file is never modified.`,
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().StringVar(&fixContentType, "content-type", "", "Content type id (required)")
	fixCmd.Flags().StringVar(&fixFile, "file", "", "Path to the text file to fix (required)")
	fixCmd.Flags().BoolVar(&fixTestMode, "test-mode", false, "Evaluate under test-mode rule policies")
	fixCmd.Flags().BoolVar(&fixJSON, "json", false, "Print the full outcome as JSON")
	_ = fixCmd.MarkFlagRequired("content-type")
	_ = fixCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(fixFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
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

	fixer := repair.NewFixer(reg, gen, analytics.Nop{}, logger, repair.Options{
		MaxAttempts:     cfg.MaxFixAttempts,
		SimilarityFloor: cfg.SimilarityFloor,
		TestMode:        fixTestMode,
	})

	outcome, err := fixer.Run(ctx, fixContentType, string(data))
	if err != nil {
		return err
	}

	if fixJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	}

	fmt.Printf("State:      %s\n", outcome.State)
	fmt.Printf("Decision:   %s\n", outcome.Decision)
	fmt.Printf("Attempts:   %d\n", outcome.AttemptCount)
	fmt.Printf("Fallback:   %v\n", outcome.UsedFallback)
	fmt.Printf("Similarity: %s\n", outcome.SimilarityBucket)
	if outcome.State == repair.StateAccepted && outcome.AttemptCount > 0 {
		fmt.Println("\nProposed text (not applied):")
		fmt.Println(outcome.FinalText)
		fmt.Println("\nChanges:")
		for _, run := range textdiff.CollapseRuns(outcome.DiffTokens) {
			switch run.Kind {
			case textdiff.Added:
				fmt.Printf("  + %s\n", run.Text)
			case textdiff.Removed:
				fmt.Printf("  - %s\n", run.Text)
			}
		}
	}

	logger.Debug("fix finished", zap.String("state", string(outcome.State)))
	return nil
}
