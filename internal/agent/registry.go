package agent

import (
	"fmt"
	"sort"

	"chat/internal/config"
	"chat/internal/llm"
)

// Constructor builds an agent from the agent config and the loaded
// system prompt.
type Constructor func(generator llm.Generator, cfg config.AgentConfig, systemPrompt string) (Agent, error)

// registry maps the agent.type config label to its constructor.
var registry = map[string]Constructor{
	"basic": func(generator llm.Generator, cfg config.AgentConfig, systemPrompt string) (Agent, error) {
		return NewBasic(generator, cfg, systemPrompt)
	},
}

// New constructs the agent selected by cfg.Type. An unknown type is an
// error listing the registered types.
func New(generator llm.Generator, cfg config.AgentConfig, systemPrompt string) (Agent, error) {
	construct, ok := registry[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unknown agent type %q (known types: %v)", cfg.Type, Types())
	}
	return construct(generator, cfg, systemPrompt)
}

// Register adds a constructor under the given type label, replacing any
// existing registration.
func Register(agentType string, construct Constructor) {
	registry[agentType] = construct
}

// Types returns the registered agent type labels, sorted.
func Types() []string {
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
