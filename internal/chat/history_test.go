package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AddKeepsOrder(t *testing.T) {
	h := NewHistory()

	h.Add(RoleUser, "hello")
	h.Add(RoleAssistant, "hi there")
	h.Add(RoleUser, "how are you?")

	msgs := h.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, Message{Role: RoleUser, Content: "hello"}, msgs[0])
	assert.Equal(t, Message{Role: RoleAssistant, Content: "hi there"}, msgs[1])
	assert.Equal(t, Message{Role: RoleUser, Content: "how are you?"}, msgs[2])
}

func TestHistory_PairsPerTurn(t *testing.T) {
	h := NewHistory()

	const turns = 5
	for i := 0; i < turns; i++ {
		h.Add(RoleUser, fmt.Sprintf("question %d", i))
		h.Add(RoleAssistant, fmt.Sprintf("answer %d", i))
	}

	require.Equal(t, 2*turns, h.Len())
	for i, msg := range h.Messages() {
		if i%2 == 0 {
			assert.Equal(t, RoleUser, msg.Role)
		} else {
			assert.Equal(t, RoleAssistant, msg.Role)
		}
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory()
	h.Add(RoleUser, "hello")
	h.Add(RoleAssistant, "hi")

	h.Clear()

	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Messages())

	// Still usable after clearing.
	h.Add(RoleUser, "again")
	assert.Equal(t, 1, h.Len())
}

func TestHistory_MessagesReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Add(RoleUser, "hello")

	msgs := h.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, "hello", h.Messages()[0].Content)
}

func TestNewBoundedHistory_ZeroBudgetIsUnbounded(t *testing.T) {
	h, err := NewBoundedHistory(0, "gemini-2.5-flash")
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		h.Add(RoleUser, "msg")
	}
	assert.Equal(t, 100, h.Len())
}

func TestHistory_TruncateDropsOldestFirst(t *testing.T) {
	h := &History{maxTokens: 10}
	for i, n := range []int{4, 4, 4} {
		h.messages = append(h.messages, Message{Role: RoleUser, Content: fmt.Sprintf("m%d", i)})
		h.tokens = append(h.tokens, n)
		h.totalTokens += n
	}

	h.truncate()

	require.Equal(t, 2, h.Len())
	assert.Equal(t, "m1", h.messages[0].Content)
	assert.Equal(t, "m2", h.messages[1].Content)
	assert.Equal(t, 8, h.totalTokens)
}

func TestHistory_TruncateKeepsNewestMessage(t *testing.T) {
	h := &History{maxTokens: 5}
	h.messages = []Message{{Role: RoleUser, Content: "oversized"}}
	h.tokens = []int{50}
	h.totalTokens = 50

	h.truncate()

	// The newest message survives even when it exceeds the budget alone.
	require.Equal(t, 1, h.Len())
}

func TestHistory_ConcurrentAccess(t *testing.T) {
	h := NewHistory()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			h.Add(RoleUser, "question")
			h.Add(RoleAssistant, "answer")
		}
	}()

	// Reads interleave with the writer, as the UI does while a turn is
	// in flight.
	for i := 0; i < 200; i++ {
		_ = h.Messages()
		_ = h.Len()
	}
	<-done

	assert.Equal(t, 400, h.Len())
}

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Assistant"},
		{RoleSystem, "System"},
		{Role("tool"), "tool"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.role.DisplayName())
	}
}
