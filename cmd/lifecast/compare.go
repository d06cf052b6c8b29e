package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lifecast/internal/logging"
	"lifecast/internal/policy"
	"lifecast/internal/store"
	"lifecast/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Forecast and compare two life choices",
	Long:  "Forecast both choices of a simulation request JSON file ({\"choice_a\": ..., \"choice_b\": ..., \"user_context\": ...}) and print the two timelines with a comparison summary. With a database URL and user id, the run is metered against the user's tier and persisted.",
	RunE:  runCompare,
}

var (
	compareInput     string
	compareConfig    string
	compareYears     int
	compareStartYear int
	compareSeed      int64
	compareUseModel  bool
	compareUserID    string
	compareTier      string
	compareSave      bool
)

func init() {
	compareCmd.Flags().StringVarP(&compareInput, "input", "i", "", "Path to simulation request JSON file (required)")
	compareCmd.Flags().StringVarP(&compareConfig, "config", "c", "", "Path to JSON config file")
	compareCmd.Flags().IntVar(&compareYears, "years", 0, "Horizon in years (default 10)")
	compareCmd.Flags().IntVar(&compareStartYear, "start-year", 0, "First simulated year (default: current year)")
	compareCmd.Flags().Int64Var(&compareSeed, "seed", 0, "Random seed for reproducible runs (0 = time-seeded)")
	compareCmd.Flags().BoolVar(&compareUseModel, "use-model", false, "Try the hosted model before the local engine")
	compareCmd.Flags().StringVarP(&compareUserID, "user-id", "u", "", "User ID for metering and persistence")
	compareCmd.Flags().StringVar(&compareTier, "tier", string(policy.TierFree), "Subscription tier (free or premium)")
	compareCmd.Flags().BoolVar(&compareSave, "save", false, "Persist the finished simulation")

	if err := compareCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(compareConfig)
	if err != nil {
		return err
	}
	applySimFlags(cfg, compareYears, compareStartYear, compareSeed)

	var req types.SimulationRequest
	if err := readJSONFile(compareInput, &req); err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// The document store is only needed when metering or persisting.
	var db *store.DB
	if compareUserID != "" || compareSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("metering and persistence require a database URL (config or DATABASE_URL)")
		}
		db, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	var meter *policy.Meter
	if db != nil && compareUserID != "" {
		meter = policy.NewMeter(db, logger)
		if err := meter.Allow(ctx, compareUserID, policy.Tier(compareTier)); err != nil {
			var limitErr *policy.LimitExceededError
			if errors.As(err, &limitErr) {
				return fmt.Errorf("%s: upgrade to premium for unlimited simulations", limitErr.Error())
			}
			return err
		}
	}

	a, closeGen, err := buildAdapter(ctx, cfg, logger, compareUseModel)
	if err != nil {
		return err
	}
	defer closeGen()

	comparison, err := a.Compare(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to compare choices: %w", err)
	}

	if meter != nil {
		if err := meter.Record(ctx, compareUserID); err != nil {
			logger.Warn("failed to record usage", zap.Error(err))
		}
	}

	if db != nil && compareSave {
		sim := types.NewSimulation(compareUserID, req, comparison)
		if err := db.SaveSimulation(ctx, sim); err != nil {
			return err
		}
		logger.Info("simulation saved", zap.String("id", sim.ID))
	}

	return writeJSON(comparison)
}
