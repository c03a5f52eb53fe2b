// Package config loads prosecheck settings from defaults, an optional
// prosecheck.yaml, a .env file, PROSECHECK_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pthm/prosecheck/internal/llm"
	"github.com/pthm/prosecheck/internal/patterns"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file name without extension
	FileName = "prosecheck"

	// EnvPrefix prefixes every environment override, e.g. PROSECHECK_AI_PROVIDER
	EnvPrefix = "PROSECHECK"

	// ProviderAuto picks a provider from whichever API key is present
	ProviderAuto = "auto"
)

// Config holds the resolved settings
type Config struct {
	AI AIConfig `mapstructure:"ai"`

	// Patterns names a built-in pattern table or a YAML table file
	Patterns string `mapstructure:"patterns"`
}

// AIConfig configures the optional AI collaborator
type AIConfig struct {
	Provider          string        `mapstructure:"provider" validate:"oneof=none gemini anthropic claude-code"`
	APIKey            string        `mapstructure:"api_key"`
	Model             string        `mapstructure:"model"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gte=0"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute" validate:"gte=0"`
	Concurrency       int           `mapstructure:"concurrency" validate:"gte=1,lte=16"`
}

// Options controls where Load looks
type Options struct {
	// File is an explicit config file. When empty, prosecheck.yaml is
	// searched for in SearchPaths.
	File string

	// SearchPaths defaults to the working directory and the user config dir
	SearchPaths []string

	// Flags are bound over every other source when set
	Flags *pflag.FlagSet

	// SkipDotEnv disables loading .env from the working directory
	SkipDotEnv bool
}

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"provider":    "ai.provider",
	"api-key":     "ai.api_key",
	"model":       "ai.model",
	"timeout":     "ai.timeout",
	"rate":        "ai.requests_per_minute",
	"concurrency": "ai.concurrency",
	"patterns":    "patterns",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ai.provider", ProviderAuto)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.timeout", 30*time.Second)
	v.SetDefault("ai.requests_per_minute", 15)
	v.SetDefault("ai.concurrency", 2)
	v.SetDefault("patterns", patterns.DefaultName)
}

// Load resolves the configuration
func Load(opts Options) (*Config, error) {
	if !opts.SkipDotEnv {
		// A missing .env is normal
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.resolveProvider()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, opts Options) error {
	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read %s: %w", opts.File, err)
		}
		return nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	paths := opts.SearchPaths
	if paths == nil {
		paths = defaultSearchPaths()
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func defaultSearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "prosecheck"))
	}
	return paths
}

// resolveProvider fills in the provider and key from the provider's
// conventional environment variables.
func (c *Config) resolveProvider() {
	google := firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY")
	anthropic := os.Getenv("ANTHROPIC_API_KEY")

	if c.AI.Provider == ProviderAuto || c.AI.Provider == "" {
		switch {
		case c.AI.APIKey != "":
			c.AI.Provider = string(llm.ProviderGemini)
		case google != "":
			c.AI.Provider = string(llm.ProviderGemini)
		case anthropic != "":
			c.AI.Provider = string(llm.ProviderAnthropic)
		default:
			c.AI.Provider = string(llm.ProviderNone)
		}
	}

	if c.AI.APIKey == "" {
		switch llm.Provider(c.AI.Provider) {
		case llm.ProviderGemini:
			c.AI.APIKey = google
		case llm.ProviderAnthropic:
			c.AI.APIKey = anthropic
		}
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks field constraints
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

var fieldKeys = map[string]string{
	"Provider":          "ai.provider",
	"Timeout":           "ai.timeout",
	"RequestsPerMinute": "ai.requests_per_minute",
	"Concurrency":       "ai.concurrency",
}

func describe(fe validator.FieldError) string {
	key, ok := fieldKeys[fe.Field()]
	if !ok {
		key = fe.Field()
	}

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", key, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", key, fe.Tag())
	}
}

// AIEnabled reports whether an AI provider is configured
func (c *Config) AIEnabled() bool {
	return llm.Provider(c.AI.Provider) != llm.ProviderNone
}

// LLM returns the client configuration
func (c *Config) LLM() llm.Config {
	return llm.Config{
		Provider:          llm.Provider(c.AI.Provider),
		APIKey:            c.AI.APIKey,
		Model:             c.AI.Model,
		Timeout:           c.AI.Timeout,
		RequestsPerMinute: c.AI.RequestsPerMinute,
	}
}

// Tables loads the configured pattern tables. A value naming a built-in
// table wins over a file of the same name.
func (c *Config) Tables() (*patterns.Tables, error) {
	name := c.Patterns
	if name == "" {
		return patterns.Default(), nil
	}
	if slices.Contains(patterns.Available(), name) {
		return patterns.Load(name)
	}
	return patterns.LoadFile(name)
}
