package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lifecast/internal/adapter"
	"lifecast/internal/config"
	"lifecast/internal/engine"
	"lifecast/internal/llm"
	"lifecast/internal/logging"
	"lifecast/internal/types"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Forecast a single life choice",
	Long:  "Forecast a multi-year timeline for one life choice described in a JSON input file ({\"choice\": ..., \"user_context\": ...}). With --detailed, the full per-year metrics are printed instead of the simplified timeline.",
	RunE:  runSimulate,
}

var (
	simulateInput     string
	simulateConfig    string
	simulateYears     int
	simulateStartYear int
	simulateSeed      int64
	simulateDetailed  bool
	simulateUseModel  bool
)

// simulateRequest is the simulate command's input file shape.
type simulateRequest struct {
	Choice      types.Choice      `json:"choice"`
	UserContext types.UserContext `json:"user_context"`
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateInput, "input", "i", "", "Path to JSON input file (required)")
	simulateCmd.Flags().StringVarP(&simulateConfig, "config", "c", "", "Path to JSON config file")
	simulateCmd.Flags().IntVar(&simulateYears, "years", 0, "Horizon in years (default 10)")
	simulateCmd.Flags().IntVar(&simulateStartYear, "start-year", 0, "First simulated year (default: current year)")
	simulateCmd.Flags().Int64Var(&simulateSeed, "seed", 0, "Random seed for reproducible runs (0 = time-seeded)")
	simulateCmd.Flags().BoolVar(&simulateDetailed, "detailed", false, "Print full per-year metrics")
	simulateCmd.Flags().BoolVar(&simulateUseModel, "use-model", false, "Try the hosted model before the local engine")

	if err := simulateCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(simulateConfig)
	if err != nil {
		return err
	}
	applySimFlags(cfg, simulateYears, simulateStartYear, simulateSeed)

	var req simulateRequest
	if err := readJSONFile(simulateInput, &req); err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	a, closeGen, err := buildAdapter(ctx, cfg, logger, simulateUseModel)
	if err != nil {
		return err
	}
	defer closeGen()

	if simulateDetailed {
		result, err := a.Predict(req.Choice, req.UserContext)
		if err != nil {
			return fmt.Errorf("failed to predict: %w", err)
		}
		return writeJSON(result)
	}

	timeline := a.Timeline(ctx, req.Choice, req.UserContext)
	return writeJSON(timeline)
}

// loadConfig reads the optional config file and fills secrets from the environment.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applySimFlags lets CLI flags override file-configured simulation values.
func applySimFlags(cfg *config.Config, years, startYear int, seed int64) {
	if years > 0 {
		cfg.Years = years
	}
	if startYear > 0 {
		cfg.StartYear = startYear
	}
	if seed != 0 {
		cfg.Seed = seed
	}
}

// buildAdapter assembles the engine and adapter, wiring the hosted-model
// generator when requested and configured. The returned func releases the
// generator's resources.
func buildAdapter(ctx context.Context, cfg *config.Config, logger *zap.Logger, useModel bool) (*adapter.Adapter, func(), error) {
	var engineOpts []engine.Option
	if cfg.Seed != 0 {
		engineOpts = append(engineOpts, engine.WithSource(engine.NewSource(cfg.Seed)))
	}
	eng := engine.New(engineOpts...)

	opts := []adapter.Option{
		adapter.WithLogger(logger),
		adapter.WithHorizon(cfg.HorizonOrDefault()),
		adapter.WithStartYear(cfg.StartYear),
	}

	closeGen := func() {}
	if useModel {
		if cfg.APIKey == "" {
			return nil, nil, fmt.Errorf("--use-model requires an API key (config, flag, or GEMINI_API_KEY)")
		}
		client, err := llm.NewClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create model client: %w", err)
		}
		opts = append(opts, adapter.WithGenerator(client))
		closeGen = func() { _ = client.Close() }
	}

	return adapter.New(eng, opts...), closeGen, nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return nil
}

func writeJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
