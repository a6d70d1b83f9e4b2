package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enerscout/internal/providers/assessment"
	"enerscout/internal/types"
)

type mockChatter struct {
	result *assessment.ChatResult
	err    error
	calls  int
}

func (m *mockChatter) Chat(ctx context.Context, message, sessionID string) (*assessment.ChatResult, error) {
	m.calls++
	return m.result, m.err
}

// fakeSession implements SessionState without pulling in the session package.
type fakeSession struct {
	transcript *Transcript
	sending    bool
	applied    []types.CombinedAssessment
}

func newFakeSession() *fakeSession {
	return &fakeSession{transcript: NewTranscript()}
}

func (f *fakeSession) SessionID() string       { return "session-test" }
func (f *fakeSession) Transcript() *Transcript { return f.transcript }

func (f *fakeSession) BeginSend() error {
	if f.sending {
		return ErrSendInProgress
	}
	f.sending = true
	return nil
}

func (f *fakeSession) EndSend() { f.sending = false }

func (f *fakeSession) ApplyCombined(combined types.CombinedAssessment) {
	f.applied = append(f.applied, combined)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestController_Send_EmptyInputIsRejected(t *testing.T) {
	chatter := &mockChatter{}
	ctrl := NewController(chatter, testLogger())
	sess := newFakeSession()

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := ctrl.Send(context.Background(), sess, input)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}

	assert.Equal(t, 0, chatter.calls)
	assert.Equal(t, 0, sess.transcript.Len())
	assert.False(t, sess.sending)
}

func TestController_Send_Success(t *testing.T) {
	chatter := &mockChatter{
		result: &assessment.ChatResult{Response: "Phoenix averages 300 sunny days a year."},
	}
	ctrl := NewController(chatter, testLogger())
	sess := newFakeSession()

	reply, err := ctrl.Send(context.Background(), sess, "  How sunny is Phoenix?  ")
	require.NoError(t, err)

	assert.Equal(t, "Phoenix averages 300 sunny days a year.", reply.Body)
	assert.Equal(t, StatusFinal, reply.Status)

	messages := sess.transcript.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "How sunny is Phoenix?", messages[0].Body, "input should be trimmed")
	assert.Equal(t, reply.ID, messages[1].ID)
	assert.Equal(t, StatusFinal, messages[1].Status)

	assert.Empty(t, sess.applied, "no payload means no session update")
	assert.False(t, sess.sending, "controller must return to idle")
}

func TestController_Send_AppliesCombinedPayload(t *testing.T) {
	chatter := &mockChatter{
		result: &assessment.ChatResult{
			Response: "Here is the assessment for Phoenix.",
			Solar:    &types.SolarAssessment{ACAnnual: 9500},
			Wind:     &types.WindAssessment{TotalEnergyKWh: 4200},
		},
	}
	ctrl := NewController(chatter, testLogger())
	sess := newFakeSession()

	_, err := ctrl.Send(context.Background(), sess, "What's the solar potential in Phoenix?")
	require.NoError(t, err)

	require.Len(t, sess.applied, 1)
	assert.Equal(t, 9500.0, sess.applied[0].Solar.ACAnnual)
	assert.Equal(t, 4200.0, sess.applied[0].Wind.TotalEnergyKWh)
}

func TestController_Send_PartialPayloadIsNotApplied(t *testing.T) {
	chatter := &mockChatter{
		result: &assessment.ChatResult{
			Response: "Solar only, no wind data.",
			Solar:    &types.SolarAssessment{ACAnnual: 9500},
		},
	}
	ctrl := NewController(chatter, testLogger())
	sess := newFakeSession()

	_, err := ctrl.Send(context.Background(), sess, "solar for Phoenix?")
	require.NoError(t, err)

	assert.Empty(t, sess.applied, "a lone half must not be applied")
}

func TestController_Send_FailureRewritesPlaceholder(t *testing.T) {
	chatter := &mockChatter{
		err: &assessment.ServiceError{Kind: assessment.ErrorNetwork, Message: "could not reach the assessment service"},
	}
	ctrl := NewController(chatter, testLogger())
	sess := newFakeSession()

	reply, err := ctrl.Send(context.Background(), sess, "hello?")
	require.NoError(t, err, "a collaborator failure degrades to a message, not an error")

	assert.Equal(t, FailureNotice, reply.Body)

	messages := sess.transcript.Messages()
	require.Len(t, messages, 2, "failed cycle adds exactly user message + failed placeholder")
	assert.Equal(t, "hello?", messages[0].Body)
	assert.Equal(t, FailureNotice, messages[1].Body)
	assert.Equal(t, StatusFinal, messages[1].Status)

	assert.Empty(t, sess.applied, "a chat failure must not touch assessment results")
	assert.False(t, sess.sending)
}

func TestController_Send_RejectedWhileSending(t *testing.T) {
	chatter := &mockChatter{result: &assessment.ChatResult{Response: "ok"}}
	ctrl := NewController(chatter, testLogger())
	sess := newFakeSession()
	sess.sending = true

	_, err := ctrl.Send(context.Background(), sess, "second message")
	assert.ErrorIs(t, err, ErrSendInProgress)
	assert.Equal(t, 0, chatter.calls)
	assert.Equal(t, 0, sess.transcript.Len())
	assert.True(t, sess.sending, "guard failure must not clear the in-flight flag")
}

func TestController_Send_ReplayIsDeterministic(t *testing.T) {
	responses := []error{
		nil,
		errors.New("transient failure"),
		nil,
	}
	sess := newFakeSession()

	for i, sendErr := range responses {
		chatter := &mockChatter{result: &assessment.ChatResult{Response: "answer"}, err: sendErr}
		ctrl := NewController(chatter, testLogger())
		_, err := ctrl.Send(context.Background(), sess, "question")
		require.NoError(t, err, "cycle %d", i)
	}

	messages := sess.transcript.Messages()
	require.Len(t, messages, 6)
	for i, msg := range messages {
		if i%2 == 0 {
			assert.Equal(t, RoleUser, msg.Role, "message %d", i)
		} else {
			assert.Equal(t, RoleAssistant, msg.Role, "message %d", i)
			assert.Equal(t, StatusFinal, msg.Status, "message %d", i)
		}
	}
	assert.Equal(t, FailureNotice, messages[3].Body)
}
