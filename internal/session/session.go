package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"enerscout/internal/chat"
	"enerscout/internal/types"
)

// Session holds one browser session's assessment state: the solar and wind
// slots, the chat transcript, and the single-send guard. Both trigger paths
// (form submission and chat) write to it; all mutation goes through the
// methods below, under one mutex.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu         sync.Mutex
	solar      Slot[types.SolarAssessment]
	wind       Slot[types.WindAssessment]
	sending    bool
	updatedAt  time.Time
	transcript *chat.Transcript
}

func newSession() *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.New(),
		CreatedAt:  now,
		updatedAt:  now,
		transcript: chat.NewTranscript(),
	}
}

// SessionID returns the stable per-session identifier sent to the chat
// collaborator.
func (s *Session) SessionID() string {
	return s.ID.String()
}

// Transcript returns the session's chat transcript.
func (s *Session) Transcript() *chat.Transcript {
	return s.transcript
}

// BeginSend marks the session as sending. It fails while a previous send
// cycle is still running; there is no coalescing and no cancellation of the
// in-flight call.
func (s *Session) BeginSend() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sending {
		return chat.ErrSendInProgress
	}
	s.sending = true
	return nil
}

// EndSend clears the sending flag.
func (s *Session) EndSend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sending = false
}

// beginSolar moves the solar slot to loading, clearing its prior error. The
// wind slot is untouched.
func (s *Session) beginSolar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solar.setLoading()
	s.updatedAt = time.Now()
}

func (s *Session) finishSolar(result types.SolarAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solar.setOk(result)
	s.updatedAt = time.Now()
}

func (s *Session) failSolar(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solar.setErr(message)
	s.updatedAt = time.Now()
}

func (s *Session) beginWind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wind.setLoading()
	s.updatedAt = time.Now()
}

func (s *Session) finishWind(result types.WindAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wind.setOk(result)
	s.updatedAt = time.Now()
}

func (s *Session) failWind(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wind.setErr(message)
	s.updatedAt = time.Now()
}

// ApplyCombined sets both slots and clears both errors in one critical
// section. A Snapshot taken by any other goroutine sees either both halves
// updated or neither.
func (s *Session) ApplyCombined(combined types.CombinedAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solar.setOk(combined.Solar)
	s.wind.setOk(combined.Wind)
	s.updatedAt = time.Now()
}

// Snapshot is a consistent read-only view of the assessment state.
type Snapshot struct {
	SessionID string                          `json:"session_id"`
	Solar     SlotView[types.SolarAssessment] `json:"solar"`
	Wind      SlotView[types.WindAssessment]  `json:"wind"`
	UpdatedAt time.Time                       `json:"updated_at"`
}

// Snapshot returns the current assessment state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		SessionID: s.ID.String(),
		Solar:     s.solar.view(),
		Wind:      s.wind.view(),
		UpdatedAt: s.updatedAt,
	}
}
