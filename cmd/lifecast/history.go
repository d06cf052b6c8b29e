package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifecast/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved simulations for a user",
	Long:  "List a user's saved simulations (newest first), or print one in full with --id.",
	RunE:  runHistory,
}

var (
	historyConfig string
	historyUserID string
	historyID     string
	historyLimit  int
)

func init() {
	historyCmd.Flags().StringVarP(&historyConfig, "config", "c", "", "Path to JSON config file")
	historyCmd.Flags().StringVarP(&historyUserID, "user-id", "u", "", "User ID whose simulations to list (required)")
	historyCmd.Flags().StringVar(&historyID, "id", "", "Print a single simulation by ID")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum number of simulations to list (default 50)")

	if err := historyCmd.MarkFlagRequired("user-id"); err != nil {
		panic(fmt.Sprintf("failed to mark user-id flag as required: %v", err))
	}

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(historyConfig)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("history requires a database URL (config or DATABASE_URL)")
	}

	ctx := context.Background()
	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if historyID != "" {
		sim, err := db.GetSimulation(ctx, historyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("simulation %s not found", historyID)
			}
			return err
		}
		return writeJSON(sim)
	}

	sims, err := db.ListSimulations(ctx, historyUserID, historyLimit)
	if err != nil {
		return err
	}
	return writeJSON(sims)
}
