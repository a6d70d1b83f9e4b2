package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role identifies who a transcript message belongs to.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Status tracks whether a message is still a placeholder.
type Status string

const (
	StatusPending Status = "pending"
	StatusFinal   Status = "final"
)

// PendingBody marks a placeholder awaiting the assistant's reply.
const PendingBody = "Thinking..."

// Message is one transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Body      string    `json:"body"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Transcript is an append-only, in-order sequence of chat messages. Messages
// are addressed by stable id; the only in-place rewrite allowed is a pending
// placeholder becoming final. Ordering is strictly append order.
type Transcript struct {
	mu       sync.Mutex
	messages []*Message
	byID     map[string]*Message
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		byID: make(map[string]*Message),
	}
}

// AppendUser appends a final user message and returns a copy of it.
func (t *Transcript) AppendUser(body string) Message {
	return t.append(RoleUser, body, StatusFinal)
}

// AppendPending appends an assistant placeholder and returns a copy of it.
// The caller later rewrites it via ResolvePending or FailPending using the
// returned id.
func (t *Transcript) AppendPending() Message {
	return t.append(RoleAssistant, PendingBody, StatusPending)
}

// ResolvePending rewrites the placeholder with the assistant's final text.
// It reports false, and leaves the transcript untouched, when the id is
// unknown or the message is no longer pending, so a stale response can never
// overwrite a later message.
func (t *Transcript) ResolvePending(id, body string) bool {
	return t.finalize(id, body)
}

// FailPending rewrites the placeholder with a user-visible failure notice.
// Same staleness rules as ResolvePending.
func (t *Transcript) FailPending(id, notice string) bool {
	return t.finalize(id, notice)
}

// Messages returns the transcript in append order. The returned slice is a
// copy and safe to hold across later appends.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Message, len(t.messages))
	for i, msg := range t.messages {
		out[i] = *msg
	}
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

func (t *Transcript) append(role Role, body string, status Status) Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg := &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Body:      body,
		Status:    status,
		CreatedAt: time.Now(),
	}
	t.messages = append(t.messages, msg)
	t.byID[msg.ID] = msg
	return *msg
}

func (t *Transcript) finalize(id, body string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg, ok := t.byID[id]
	if !ok || msg.Status != StatusPending {
		return false
	}
	msg.Body = body
	msg.Status = StatusFinal
	return true
}
