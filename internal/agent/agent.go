// Package agent implements the conversational agents the application
// can be configured with.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"chat/internal/chat"
	"chat/internal/config"
	"chat/internal/llm"
)

// ErrEmptyMessage is returned by Chat for blank input.
var ErrEmptyMessage = errors.New("message must not be empty")

// Agent pairs a system prompt, a conversation history, and a handle to a
// remote text-generation service.
type Agent interface {
	// Chat exchanges one conversational turn. The returned string is
	// always displayable: on remote failure it describes the failure
	// and the error carries the cause.
	Chat(ctx context.Context, message string) (string, error)

	// ClearHistory drops every past turn. The system prompt is kept.
	ClearHistory()

	// History returns the past user/assistant turns in order.
	History() []chat.Message

	// SystemPrompt returns the fixed instruction text prepended to
	// every model invocation.
	SystemPrompt() string

	Model() string
	SetModel(id string)
}

// Basic is the plain conversational agent: no tools, no retrieval, just
// the system prompt plus the running conversation sent to the model on
// every turn. The model can be switched from the UI while a turn is in
// flight, so access to it is synchronized; the history synchronizes
// itself.
type Basic struct {
	generator       llm.Generator
	temperature     float64
	reasoningEffort string
	systemPrompt    string
	history         *chat.History

	mu    sync.Mutex
	model string
}

// NewBasic creates a Basic agent from the agent section of the config.
func NewBasic(generator llm.Generator, cfg config.AgentConfig, systemPrompt string) (*Basic, error) {
	history, err := chat.NewBoundedHistory(cfg.HistoryMaxTokens, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create history: %w", err)
	}

	return &Basic{
		generator:       generator,
		model:           cfg.Model,
		temperature:     cfg.Temperature,
		reasoningEffort: cfg.ReasoningEffort,
		systemPrompt:    systemPrompt,
		history:         history,
	}, nil
}

// Chat appends message as a user turn, sends the system instruction plus
// the full history to the model, and on success appends and returns the
// reply. Remote failures come back as a displayable string describing
// the failure together with the underlying error; no retry is attempted
// and no assistant turn is recorded.
func (b *Basic) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	b.history.Add(chat.RoleUser, message)

	response, err := b.generator.GenerateContent(ctx, b.Model(), b.contents(), b.generateConfig())
	if err != nil {
		wrapped := fmt.Errorf("failed to generate response: %w", err)
		return fmt.Sprintf("Sorry, something went wrong talking to the model: %v", err), wrapped
	}

	reply, err := replyText(response)
	if err != nil {
		return fmt.Sprintf("Sorry, the model returned nothing usable: %v", err), err
	}

	b.history.Add(chat.RoleAssistant, reply)
	return reply, nil
}

// ClearHistory resets the conversation. The system prompt is unaffected.
func (b *Basic) ClearHistory() {
	b.history.Clear()
}

// History returns a copy of the past turns in chronological order.
func (b *Basic) History() []chat.Message {
	return b.history.Messages()
}

// SystemPrompt returns the system instruction text.
func (b *Basic) SystemPrompt() string {
	return b.systemPrompt
}

// Model returns the current model ID.
func (b *Basic) Model() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.model
}

// SetModel switches the model used for subsequent turns. The history is
// kept as-is.
func (b *Basic) SetModel(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.model = id
}

// contents converts the history into the provider's wire form.
func (b *Basic) contents() []*genai.Content {
	messages := b.history.Messages()
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := genai.Role(genai.RoleUser)
		if msg.Role == chat.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	return contents
}

// generateConfig assembles the per-request generation settings.
func (b *Basic) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(b.temperature)),
		SystemInstruction: genai.NewContentFromText(b.systemPrompt, genai.RoleUser),
		ThinkingConfig:    llm.ThinkingConfig(b.reasoningEffort),
	}
}

// replyText extracts the text of the first candidate.
func replyText(response *genai.GenerateContentResponse) (string, error) {
	if response == nil || len(response.Candidates) == 0 {
		return "", errors.New("no response candidates from model")
	}

	candidate := response.Candidates[0]
	if candidate.Content == nil {
		return "", errors.New("response candidate has no content")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("response contains no text parts")
	}
	return sb.String(), nil
}
