// Package main provides the entry point for the copygate quality gate.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "copygate",
	Short: "Content quality gate for AI-generated marketing copy",
	Long:  "copygate evaluates candidate marketing copy against per-content-type rule sets and runs a bounded, safety-first auto-repair loop with an external text generator.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
