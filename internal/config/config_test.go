package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifecast/internal/engine"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `{
		"database_url": "postgres://localhost/lifecast",
		"model": "gemini-1.5-flash",
		"years": 15,
		"start_year": 2027,
		"seed": 42,
		"log_level": "debug",
		"log_format": "json"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/lifecast", cfg.DatabaseURL)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
	assert.Equal(t, 15, cfg.Years)
	assert.Equal(t, 2027, cfg.StartYear)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "{not json")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{}
	cfg.FromEnv()
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestFromEnv_FileValuesWin(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg := &Config{DatabaseURL: "postgres://file/db"}
	cfg.FromEnv()
	assert.Equal(t, "postgres://file/db", cfg.DatabaseURL)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Years: 10, LogFormat: "console"}).Validate())

	assert.Error(t, (&Config{Years: -1}).Validate())
	assert.Error(t, (&Config{StartYear: -1}).Validate())
	assert.Error(t, (&Config{LogFormat: "xml"}).Validate())
}

func TestHorizonOrDefault(t *testing.T) {
	assert.Equal(t, engine.DefaultHorizon, (&Config{}).HorizonOrDefault())
	assert.Equal(t, 15, (&Config{Years: 15}).HorizonOrDefault())
}
