package config

// DefaultSystemPrompt is used when no prompt file is configured or the
// configured file cannot be read.
const DefaultSystemPrompt = "You are a helpful AI assistant. Answer questions clearly and concisely."

// PromptsDir is the directory system prompt files are resolved against.
const PromptsDir = "prompts"

const (
	// DefaultAgentType selects the plain conversational agent.
	DefaultAgentType = "basic"

	// DefaultTemperature applies when the config file leaves the
	// temperature unset.
	DefaultTemperature = 0.7
)
