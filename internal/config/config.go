package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance for config structs.
var validate = validator.New()

// Config is the application configuration, loaded once at startup from a
// YAML file and never mutated afterwards.
type Config struct {
	App   AppConfig   `yaml:"app" json:"app"`
	Agent AgentConfig `yaml:"agent" json:"agent"`
}

// AppConfig holds the UI-facing settings.
type AppConfig struct {
	Title string `yaml:"title" json:"title" validate:"required"`
	Icon  string `yaml:"icon" json:"icon,omitempty"`
}

// AgentConfig selects and parameterizes the conversational agent.
type AgentConfig struct {
	Type             string  `yaml:"type" json:"type,omitempty"`
	Model            string  `yaml:"model" json:"model" validate:"required"`
	Temperature      float64 `yaml:"temperature" json:"temperature" validate:"gte=0,lte=2"`
	ReasoningEffort  string  `yaml:"reasoning_effort" json:"reasoning_effort,omitempty" validate:"omitempty,oneof=low medium high"`
	SystemPromptFile string  `yaml:"system_prompt_file" json:"system_prompt_file,omitempty"`
	HistoryMaxTokens int     `yaml:"history_max_tokens" json:"history_max_tokens,omitempty" validate:"gte=0"`
}

// Load reads and validates the YAML configuration at path. Absent keys
// keep their defaults; a missing file or malformed document is an error
// the caller should treat as fatal.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{
		Agent: AgentConfig{
			Type:        DefaultAgentType,
			Temperature: DefaultTemperature,
		},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// APIKey returns the model provider credential from the environment.
// The credential is never written anywhere by the application.
func APIKey() (string, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	return key, nil
}

// PromptPath returns the path of the configured system prompt file,
// resolved against the prompts directory, or "" when no file is
// configured.
func (c *Config) PromptPath() string {
	if c.Agent.SystemPromptFile == "" {
		return ""
	}
	return filepath.Join(PromptsDir, c.Agent.SystemPromptFile)
}
