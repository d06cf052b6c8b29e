package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifecast/internal/config"
)

func TestLoadConfig_NoFileUsesEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoadConfig_InvalidFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"years": -1}`), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestApplySimFlags(t *testing.T) {
	cfg := &config.Config{Years: 10, StartYear: 2026, Seed: 1}

	// Zero-valued flags leave the file configuration alone.
	applySimFlags(cfg, 0, 0, 0)
	assert.Equal(t, 10, cfg.Years)
	assert.Equal(t, 2026, cfg.StartYear)
	assert.Equal(t, int64(1), cfg.Seed)

	applySimFlags(cfg, 20, 2030, 42)
	assert.Equal(t, 20, cfg.Years)
	assert.Equal(t, 2030, cfg.StartYear)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestReadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"choice":{"title":"Stay"}}`), 0o644))

	var req simulateRequest
	require.NoError(t, readJSONFile(path, &req))
	assert.Equal(t, "Stay", req.Choice.Title)
}

func TestReadJSONFile_Missing(t *testing.T) {
	var req simulateRequest
	assert.Error(t, readJSONFile(filepath.Join(t.TempDir(), "nope.json"), &req))
}

func TestBuildAdapter_UseModelRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, _, err := buildAdapter(context.Background(),&config.Config{}, nil, true)
	assert.Error(t, err)
}
