package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/copygate/internal/evaluation"
	"github.com/jonathan/copygate/internal/rules"
)

var (
	checkContentType string
	checkFile        string
	checkTestMode    bool
	checkJSON        bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a text file against a content type's rules",
	Long:  `Run the rule evaluator over the contents of a file and print the decision and any failing rules.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkContentType, "content-type", "", "Content type id (required)")
	checkCmd.Flags().StringVar(&checkFile, "file", "", "Path to the text file to evaluate (required)")
	checkCmd.Flags().BoolVar(&checkTestMode, "test-mode", false, "Evaluate under test-mode rule policies")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the full report as JSON")
	_ = checkCmd.MarkFlagRequired("content-type")
	_ = checkCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(checkFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	reg, err := rules.NewRegistry()
	if err != nil {
		return fmt.Errorf("failed to load rule registry: %w", err)
	}

	report, err := evaluation.Evaluate(reg, checkContentType, string(data), checkTestMode)
	if err != nil {
		return err
	}

	if checkJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Decision: %s\n", report.Decision)
	for _, f := range report.HardFails {
		fmt.Printf("  HARD %-28s %s\n", f.RuleID, f.Message)
	}
	for _, f := range report.SoftFails {
		fmt.Printf("  SOFT %-28s %s\n", f.RuleID, f.Message)
	}
	return nil
}
