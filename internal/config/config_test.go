package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `app:
  title: "Test Chat"
  icon: "💬"

agent:
  type: basic
  model: gemini-2.5-flash
  temperature: 0.3
  reasoning_effort: low
  system_prompt_file: assistant_prompt.txt
  history_max_tokens: 4096
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Chat", cfg.App.Title)
	assert.Equal(t, "💬", cfg.App.Icon)
	assert.Equal(t, "basic", cfg.Agent.Type)
	assert.Equal(t, "gemini-2.5-flash", cfg.Agent.Model)
	assert.Equal(t, 0.3, cfg.Agent.Temperature)
	assert.Equal(t, "low", cfg.Agent.ReasoningEffort)
	assert.Equal(t, "assistant_prompt.txt", cfg.Agent.SystemPromptFile)
	assert.Equal(t, 4096, cfg.Agent.HistoryMaxTokens)
}

func TestLoad_IsIdempotent(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `app:
  title: "Minimal"
agent:
  model: gemini-2.5-flash
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultAgentType, cfg.Agent.Type)
	assert.Equal(t, DefaultTemperature, cfg.Agent.Temperature)
	assert.Zero(t, cfg.Agent.HistoryMaxTokens)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "app: [not: a: mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing title",
			content: `agent:
  model: gemini-2.5-flash
`,
		},
		{
			name: "missing model",
			content: `app:
  title: "Chat"
`,
		},
		{
			name: "temperature out of range",
			content: `app:
  title: "Chat"
agent:
  model: gemini-2.5-flash
  temperature: 5.0
`,
		},
		{
			name: "unknown reasoning effort",
			content: `app:
  title: "Chat"
agent:
  model: gemini-2.5-flash
  reasoning_effort: extreme
`,
		},
		{
			name: "negative history budget",
			content: `app:
  title: "Chat"
agent:
  model: gemini-2.5-flash
  history_max_tokens: -1
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	key, err := APIKey()
	require.NoError(t, err)
	assert.Equal(t, "test-key", key)

	t.Setenv("GEMINI_API_KEY", "")
	_, err = APIKey()
	assert.Error(t, err)
}

func TestPromptPath(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.PromptPath())

	cfg.Agent.SystemPromptFile = "assistant_prompt.txt"
	assert.Equal(t, filepath.Join(PromptsDir, "assistant_prompt.txt"), cfg.PromptPath())
}

func TestSchema(t *testing.T) {
	schema, err := Schema()
	require.NoError(t, err)

	for _, key := range []string{"title", "model", "temperature", "reasoning_effort", "system_prompt_file"} {
		assert.Contains(t, string(schema), key)
	}
}
