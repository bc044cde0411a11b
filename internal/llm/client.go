// Package llm wraps the hosted Gemini chat-completion API.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator is the slice of the genai client the agent depends on.
// *genai.Models satisfies it; tests substitute a fake.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewClient creates a Gemini API client from the given credential.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// Thinking token budgets for each reasoning effort level.
const (
	thinkingBudgetLow    int32 = 1024
	thinkingBudgetMedium int32 = 8192
	thinkingBudgetHigh   int32 = 24576
)

// ThinkingConfig maps a reasoning effort level onto the provider's
// thinking budget. An empty level keeps the provider default and
// returns nil.
func ThinkingConfig(effort string) *genai.ThinkingConfig {
	var budget int32
	switch effort {
	case "low":
		budget = thinkingBudgetLow
	case "medium":
		budget = thinkingBudgetMedium
	case "high":
		budget = thinkingBudgetHigh
	default:
		return nil
	}
	return &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(budget)}
}
