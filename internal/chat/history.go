package chat

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// fallbackEncoding is used when the configured model has no registered
// tiktoken encoding (hosted Gemini models, for example).
const fallbackEncoding = "cl100k_base"

// History holds the ordered user/assistant turns of one conversation.
// The system instruction is not part of the history; it belongs to the
// agent and survives Clear.
//
// When maxTokens is zero the history grows without bound. When a budget
// is set, adding a message drops the oldest turns until the total token
// count fits again, so the most recent context is always kept.
//
// All operations are safe for concurrent use; the UI reads the history
// while a turn is in flight.
type History struct {
	mu          sync.Mutex
	messages    []Message
	tokens      []int
	totalTokens int
	maxTokens   int
	encoding    *tiktoken.Tiktoken
}

// NewHistory creates an unbounded conversation history.
func NewHistory() *History {
	return &History{}
}

// NewBoundedHistory creates a history that keeps at most maxTokens worth
// of content, counted with the encoding registered for model. Models
// without a registered encoding fall back to cl100k_base, which is close
// enough for windowing purposes.
func NewBoundedHistory(maxTokens int, model string) (*History, error) {
	if maxTokens <= 0 {
		return NewHistory(), nil
	}

	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoding, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return nil, err
		}
	}

	return &History{
		maxTokens: maxTokens,
		encoding:  encoding,
	}, nil
}

// Add appends a message and, if a token budget is set, evicts the oldest
// turns until the history fits the budget again.
func (h *History) Add(role Role, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages = append(h.messages, Message{Role: role, Content: content})

	if h.encoding == nil {
		return
	}

	n := len(h.encoding.Encode(content, nil, nil))
	h.tokens = append(h.tokens, n)
	h.totalTokens += n
	h.truncate()
}

// truncate drops oldest messages until the total token count is within
// the budget. The newest message is always kept, even when it alone
// exceeds the budget. Callers must hold mu.
func (h *History) truncate() {
	for h.totalTokens > h.maxTokens && len(h.messages) > 1 {
		h.totalTokens -= h.tokens[0]
		h.messages = h.messages[1:]
		h.tokens = h.tokens[1:]
	}
}

// Messages returns a copy of the conversation in chronological order.
func (h *History) Messages() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Len returns the number of turns currently held.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages)
}

// Clear removes every turn. The token budget, if any, is kept.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages = nil
	h.tokens = nil
	h.totalTokens = 0
}
