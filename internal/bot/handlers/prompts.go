package handlers

import "sync"

// PromptKind identifies which question the bot last asked in a chat, so the
// user's next plain-text message can be routed to the right input handler.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptHabit
	PromptReminder
	PromptTask
)

// PromptRegistry tracks the pending prompt per chat. State is in-memory
// only: a restart simply forgets open prompts, which is acceptable for a
// conversational menu.
type PromptRegistry struct {
	mu      sync.Mutex
	pending map[int64]PromptKind
}

// NewPromptRegistry creates an empty registry.
func NewPromptRegistry() *PromptRegistry {
	return &PromptRegistry{pending: make(map[int64]PromptKind)}
}

// Await marks the chat as waiting for an answer of the given kind.
func (p *PromptRegistry) Await(chatID int64, kind PromptKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending[chatID] = kind
}

// Take returns and clears the pending prompt for the chat, if any.
func (p *PromptRegistry) Take(chatID int64) (PromptKind, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	kind, ok := p.pending[chatID]
	if ok {
		delete(p.pending, chatID)
	}
	return kind, ok
}

// Clear drops any pending prompt for the chat.
func (p *PromptRegistry) Clear(chatID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.pending, chatID)
}
