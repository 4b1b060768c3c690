// Package config loads the yugantar.yaml configuration file, merges it over
// built-in defaults and resolves environment indirections (API keys are
// referenced by env var name, never stored in the file).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML duration strings
// ("3m", "45s") or bare integers (seconds).
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(time.Duration(n) * time.Second)
		return nil
	}
	return fmt.Errorf("invalid duration value")
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the complete runtime configuration.
type Config struct {
	LLM    LLMConfig    `yaml:"llm"`
	Server ServerConfig `yaml:"server"`
	Limits LimitsConfig `yaml:"limits"`
}

// LLMConfig selects the hosted generation models.
type LLMConfig struct {
	// APIKeyEnv names the environment variable holding the upstream
	// credential. The key itself is read lazily per request so its absence
	// surfaces as a configuration error on the request path, not a crash.
	APIKeyEnv string `yaml:"api_key_env"`

	// BaseURL overrides the upstream endpoint (proxies, tests).
	BaseURL string `yaml:"base_url,omitempty"`

	// InstructionModel produces the streamed instruction document.
	InstructionModel string `yaml:"instruction_model"`

	// CompilerModel produces the final HTML document.
	CompilerModel string `yaml:"compiler_model"`
}

// ServerConfig groups HTTP server settings.
type ServerConfig struct {
	// AllowedWSOrigins lists origins accepted for WebSocket upgrades.
	// Empty means same-host only.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty"`
}

// LimitsConfig bounds request and generation sizes.
type LimitsConfig struct {
	// MaxPromptChars caps the user prompt length.
	MaxPromptChars int `yaml:"max_prompt_chars"`

	// MaxInstructionChars caps caller-supplied instruction text.
	MaxInstructionChars int `yaml:"max_instruction_chars"`

	// GenerationTimeout bounds one full decode+compile pipeline.
	GenerationTimeout Duration `yaml:"generation_timeout"`
}

// defaults are the built-in values the file is merged over.
func defaults() Config {
	return Config{
		LLM: LLMConfig{
			APIKeyEnv:        "GEMINI_API_KEY",
			InstructionModel: "gemini-2.0-flash",
			CompilerModel:    "gemini-2.0-flash",
		},
		Limits: LimitsConfig{
			MaxPromptChars:      4000,
			MaxInstructionChars: 200_000,
			GenerationTimeout:   Duration(3 * time.Minute),
		},
	}
}

// Load reads the configuration file (optional — defaults apply when it does
// not exist), merges it over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := defaults()

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Info("No configuration file found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config file %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.LLM.APIKeyEnv == "" {
		return fmt.Errorf("llm.api_key_env must not be empty")
	}
	if c.LLM.InstructionModel == "" || c.LLM.CompilerModel == "" {
		return fmt.Errorf("llm.instruction_model and llm.compiler_model must be set")
	}
	if c.Limits.MaxPromptChars <= 0 {
		return fmt.Errorf("limits.max_prompt_chars must be positive")
	}
	if c.Limits.GenerationTimeout <= 0 {
		return fmt.Errorf("limits.generation_timeout must be positive")
	}
	return nil
}

// APIKey resolves the upstream credential from the configured env var.
// Empty means the credential is absent — a configuration error on any
// request that would call the generator.
func (c *Config) APIKey() string {
	return os.Getenv(c.LLM.APIKeyEnv)
}
