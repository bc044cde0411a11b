package models

import "fmt"

// Model describes a hosted chat model the application knows about. The
// catalog is advisory: a configured model that is not listed here is
// still sent to the provider as-is.
type Model struct {
	ID          string
	Name        string
	Description string
	MaxTokens   int
	IsDefault   bool
}

// Available chat models
var AvailableModels = []Model{
	{
		ID:          "gemini-2.5-flash",
		Name:        "Gemini 2.5 Flash",
		Description: "Fast general-purpose model, good default for chat",
		MaxTokens:   8192,
		IsDefault:   true,
	},
	{
		ID:          "gemini-2.5-pro",
		Name:        "Gemini 2.5 Pro",
		Description: "Strongest reasoning, slower and more expensive",
		MaxTokens:   8192,
	},
	{
		ID:          "gemini-2.5-flash-lite",
		Name:        "Gemini 2.5 Flash Lite",
		Description: "Cheapest and fastest, for simple conversations",
		MaxTokens:   8192,
	},
	{
		ID:          "gemini-2.0-flash",
		Name:        "Gemini 2.0 Flash",
		Description: "Previous generation fast model",
		MaxTokens:   8192,
	},
	{
		ID:          "gemini-1.5-pro",
		Name:        "Gemini 1.5 Pro",
		Description: "Long-context model for large conversations",
		MaxTokens:   2097152,
	},
}

// GetModelByID returns the catalog entry for id.
func GetModelByID(id string) (*Model, error) {
	for _, model := range AvailableModels {
		if model.ID == id {
			return &model, nil
		}
	}
	return nil, fmt.Errorf("model with ID '%s' not found", id)
}

// GetDefaultModel returns the default catalog entry.
func GetDefaultModel() *Model {
	for _, model := range AvailableModels {
		if model.IsDefault {
			return &model
		}
	}
	if len(AvailableModels) > 0 {
		return &AvailableModels[0]
	}
	return nil
}

// DisplayName returns the catalog name for id, or id itself for models
// outside the catalog.
func DisplayName(id string) string {
	if model, err := GetModelByID(id); err == nil {
		return model.Name
	}
	return id
}
