// Package prompt loads system prompt text for the agent.
package prompt

import (
	"os"
	"strings"

	"chat/internal/config"
)

// Load reads the system prompt at path, trimmed of surrounding
// whitespace. A missing or unreadable file, an empty path, or a file
// that trims down to nothing all yield the built-in default prompt
// rather than an error.
func Load(path string) string {
	if path == "" {
		return config.DefaultSystemPrompt
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config.DefaultSystemPrompt
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return config.DefaultSystemPrompt
	}
	return text
}
