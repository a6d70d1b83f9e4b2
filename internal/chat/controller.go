package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"enerscout/internal/providers/assessment"
	"enerscout/internal/types"
)

var (
	// ErrEmptyMessage rejects an empty or whitespace-only send before
	// anything is appended to the transcript.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrSendInProgress rejects a send while the previous cycle for the
	// same session has not finished.
	ErrSendInProgress = errors.New("a message is already being sent")
)

// FailureNotice replaces the placeholder when a send cycle fails. The
// failure is not retried automatically.
const FailureNotice = "Sorry, I couldn't process that right now. Please try again."

// Chatter is the AI chat collaborator.
type Chatter interface {
	Chat(ctx context.Context, message, sessionID string) (*assessment.ChatResult, error)
}

// SessionState is the per-session state a send cycle touches: the transcript,
// the single-send guard, and the shared assessment slots.
type SessionState interface {
	SessionID() string
	Transcript() *Transcript
	// BeginSend marks the session as sending; it fails with
	// ErrSendInProgress when a cycle is already running.
	BeginSend() error
	EndSend()
	ApplyCombined(types.CombinedAssessment)
}

// Controller drives one chat send cycle: append the user message and a
// pending placeholder, call the collaborator, rewrite the placeholder with
// the reply or a failure notice, and forward an embedded assessment payload
// to the session.
type Controller struct {
	chatter Chatter
	logger  *slog.Logger
}

// NewController creates a chat controller.
func NewController(chatter Chatter, logger *slog.Logger) *Controller {
	return &Controller{
		chatter: chatter,
		logger:  logger.With("component", "chat-controller"),
	}
}

// Send runs one cycle for the session and returns the final assistant
// message. A collaborator failure is not an error to the caller: the
// placeholder is rewritten to FailureNotice and that message is returned.
// Only the entry guards (empty input, send already in progress) return an
// error, in which case the transcript is untouched.
func (c *Controller) Send(ctx context.Context, sess SessionState, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}
	if err := sess.BeginSend(); err != nil {
		return Message{}, err
	}
	defer sess.EndSend()

	// Both entries land before the network call, so the transcript is
	// never observed with a user message and no reply slot.
	transcript := sess.Transcript()
	transcript.AppendUser(text)
	pending := transcript.AppendPending()

	result, err := c.chatter.Chat(ctx, text, sess.SessionID())
	if err != nil {
		c.logger.Error("chat collaborator call failed",
			"session_id", sess.SessionID(),
			"error", err,
		)
		transcript.FailPending(pending.ID, FailureNotice)
		pending.Body = FailureNotice
		pending.Status = StatusFinal
		return pending, nil
	}

	transcript.ResolvePending(pending.ID, result.Response)

	if result.Solar != nil && result.Wind != nil {
		sess.ApplyCombined(types.CombinedAssessment{
			Solar: *result.Solar,
			Wind:  *result.Wind,
		})
		c.logger.Info("applied assessment payload from assistant reply",
			"session_id", sess.SessionID(),
		)
	}

	pending.Body = result.Response
	pending.Status = StatusFinal
	return pending, nil
}
