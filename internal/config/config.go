// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/application-assistant/internal/llm"
	"github.com/jonathan/application-assistant/internal/selection"
	"github.com/spf13/viper"
)

// Annotator backends selectable with the "annotator" key
const (
	AnnotatorHeuristic = "heuristic"
	AnnotatorGemini    = "gemini"
	AnnotatorNone      = "none"
)

// Config is the merged result of defaults, an optional config file,
// environment variables and bound CLI flags.
type Config struct {
	Annotator string          `mapstructure:"annotator" validate:"oneof=heuristic gemini none"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Selection SelectionConfig `mapstructure:"selection"`
	Log       LogConfig       `mapstructure:"log"`
}

// GeminiConfig configures the optional Gemini annotator
type GeminiConfig struct {
	APIKey  string        `mapstructure:"api-key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// SelectionConfig holds the consumption-boundary limits
type SelectionConfig struct {
	Threshold      float64 `mapstructure:"threshold" validate:"gte=0,lte=10"`
	MaxProjects    int     `mapstructure:"max-projects" validate:"gte=0"`
	MaxExperiences int     `mapstructure:"max-experiences" validate:"gte=0"`
	MaxAssets      int     `mapstructure:"max-assets" validate:"gte=0"`
}

// LogConfig selects the log encoder and level
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// envBindings maps config keys to the environment variables that set them
var envBindings = map[string]string{
	"annotator":                 "ANNOTATOR",
	"gemini.api-key":            "GEMINI_API_KEY",
	"gemini.model":              "MODEL_NAME",
	"selection.threshold":       "SELECTION_THRESHOLD",
	"selection.max-projects":    "MAX_PROJECTS",
	"selection.max-experiences": "MAX_EXPERIENCES",
}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("annotator", AnnotatorHeuristic)
	v.SetDefault("gemini.model", llm.DefaultConfig().GetModel(llm.TierLite))
	v.SetDefault("gemini.timeout", llm.DefaultAnnotateTimeout)
	v.SetDefault("selection.threshold", selection.DefaultThreshold)
	v.SetDefault("selection.max-projects", selection.DefaultMaxProjects)
	v.SetDefault("selection.max-experiences", selection.DefaultMaxExperiences)
	v.SetDefault("selection.max-assets", selection.DefaultTopN)
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
}

// Load reads configuration into a Config. path may be empty, in which case
// only defaults, environment variables and flags already bound on v apply.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Annotator = strings.ToLower(strings.TrimSpace(cfg.Annotator))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &ValidationError{Message: "invalid configuration", Cause: err}
	}
	if c.Annotator == AnnotatorGemini && c.Gemini.APIKey == "" {
		return &ValidationError{Message: "annotator \"gemini\" requires GEMINI_API_KEY or gemini.api-key"}
	}
	return nil
}

// SelectionOptions converts the selection section for the selection package
func (c *Config) SelectionOptions() selection.Options {
	return selection.Options{
		Threshold:      c.Selection.Threshold,
		MaxProjects:    c.Selection.MaxProjects,
		MaxExperiences: c.Selection.MaxExperiences,
	}
}

// ValidationError represents a configuration that failed validation
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
