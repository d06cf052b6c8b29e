// Package main provides the lifecast CLI: career and life-quality
// trajectory forecasts for candidate life choices.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lifecast",
	Short: "Career and life-quality trajectory forecasting",
	Long:  "lifecast projects multi-year career and life-quality trajectories for candidate life choices, and compares two choices side by side.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
