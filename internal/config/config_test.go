package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pthm/prosecheck/internal/llm"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GOOGLE_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY",
		"PROSECHECK_AI_PROVIDER", "PROSECHECK_AI_API_KEY", "PROSECHECK_AI_MODEL",
		"PROSECHECK_AI_TIMEOUT", "PROSECHECK_AI_REQUESTS_PER_MINUTE",
		"PROSECHECK_AI_CONCURRENCY", "PROSECHECK_PATTERNS",
	} {
		t.Setenv(name, "")
	}
}

func isolated(t *testing.T) Options {
	t.Helper()
	clearEnv(t)
	return Options{SearchPaths: []string{t.TempDir()}, SkipDotEnv: true}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(isolated(t))
	require.NoError(t, err)

	assert.Equal(t, "none", cfg.AI.Provider)
	assert.False(t, cfg.AIEnabled())
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 15, cfg.AI.RequestsPerMinute)
	assert.Equal(t, 2, cfg.AI.Concurrency)
	assert.Equal(t, "english", cfg.Patterns)
}

func TestLoadProviderFromEnvKeys(t *testing.T) {
	t.Run("google key selects gemini", func(t *testing.T) {
		opts := isolated(t)
		t.Setenv("GOOGLE_API_KEY", "g-key")

		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "gemini", cfg.AI.Provider)
		assert.Equal(t, "g-key", cfg.AI.APIKey)
	})

	t.Run("anthropic key selects anthropic", func(t *testing.T) {
		opts := isolated(t)
		t.Setenv("ANTHROPIC_API_KEY", "a-key")

		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "anthropic", cfg.AI.Provider)
		assert.Equal(t, "a-key", cfg.AI.APIKey)
	})

	t.Run("explicit provider picks its own key", func(t *testing.T) {
		opts := isolated(t)
		t.Setenv("GOOGLE_API_KEY", "g-key")
		t.Setenv("ANTHROPIC_API_KEY", "a-key")
		t.Setenv("PROSECHECK_AI_PROVIDER", "anthropic")

		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "anthropic", cfg.AI.Provider)
		assert.Equal(t, "a-key", cfg.AI.APIKey)
	})
}

func TestLoadConfigFile(t *testing.T) {
	opts := isolated(t)
	dir := opts.SearchPaths[0]
	content := `ai:
  provider: claude-code
  model: haiku
  timeout: 5s
  requests_per_minute: 30
  concurrency: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prosecheck.yaml"), []byte(content), 0o644))

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "claude-code", cfg.AI.Provider)
	assert.Equal(t, "haiku", cfg.AI.Model)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 30, cfg.AI.RequestsPerMinute)
	assert.Equal(t, 4, cfg.AI.Concurrency)

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("PROSECHECK_AI_MODEL", "opus")
		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "opus", cfg.AI.Model)
	})
}

func TestLoadExplicitFileMissing(t *testing.T) {
	opts := isolated(t)
	opts.File = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(opts)
	assert.Error(t, err)
}

func TestLoadFlagsOverride(t *testing.T) {
	opts := isolated(t)
	t.Setenv("PROSECHECK_AI_CONCURRENCY", "3")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("provider", "", "")
	flags.Int("concurrency", 1, "")
	require.NoError(t, flags.Parse([]string{"--provider", "gemini", "--concurrency", "8"}))
	opts.Flags = flags

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, 8, cfg.AI.Concurrency)
	assert.Empty(t, cfg.AI.APIKey)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad provider", map[string]string{"PROSECHECK_AI_PROVIDER": "openai"}, "ai.provider must be one of none, gemini, anthropic, claude-code"},
		{"zero concurrency", map[string]string{"PROSECHECK_AI_CONCURRENCY": "0"}, "ai.concurrency must be at least 1"},
		{"huge concurrency", map[string]string{"PROSECHECK_AI_CONCURRENCY": "100"}, "ai.concurrency must be at most 16"},
		{"negative rate", map[string]string{"PROSECHECK_AI_REQUESTS_PER_MINUTE": "-1"}, "ai.requests_per_minute must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := isolated(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLLMConfig(t *testing.T) {
	cfg := &Config{AI: AIConfig{
		Provider:          "gemini",
		APIKey:            "k",
		Model:             "gemini-2.0-flash",
		Timeout:           time.Second,
		RequestsPerMinute: 10,
		Concurrency:       1,
	}}

	assert.Equal(t, llm.Config{
		Provider:          llm.ProviderGemini,
		APIKey:            "k",
		Model:             "gemini-2.0-flash",
		Timeout:           time.Second,
		RequestsPerMinute: 10,
	}, cfg.LLM())
	assert.True(t, cfg.AIEnabled())
}

func TestTables(t *testing.T) {
	cfg := &Config{Patterns: "english"}
	tables, err := cfg.Tables()
	require.NoError(t, err)
	assert.Equal(t, "english", tables.Name)

	cfg.Patterns = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.Tables()
	assert.Error(t, err)
}
