package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sourcegraph/conc"

	"enerscout/internal/providers/assessment"
	"enerscout/internal/types"
)

// Calculator is the slice of the assessment gateway the session service
// needs.
type Calculator interface {
	ComputeSolar(ctx context.Context, coords types.Coordinates) (*types.SolarAssessment, error)
	ComputeWind(ctx context.Context, coords types.Coordinates, opts assessment.WindOptions) (*types.WindAssessment, error)
}

// Service runs calculations against the gateway and records their outcomes
// on a session.
type Service struct {
	calc   Calculator
	logger *slog.Logger
}

// NewService creates a session service.
func NewService(calc Calculator, logger *slog.Logger) *Service {
	return &Service{
		calc:   calc,
		logger: logger.With("component", "session-service"),
	}
}

// SubmitSolar runs a solar calculation and records the result or error on
// the session's solar slot. The wind slot is never touched.
func (s *Service) SubmitSolar(ctx context.Context, sess *Session, coords types.Coordinates) {
	sess.beginSolar()

	result, err := s.calc.ComputeSolar(ctx, coords)
	if err != nil {
		s.logger.Error("solar calculation failed",
			"session_id", sess.SessionID(),
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		sess.failSolar(userMessage(err))
		return
	}
	sess.finishSolar(*result)
}

// SubmitWind runs a wind calculation with default parameters and records the
// result or error on the session's wind slot. The solar slot is never
// touched.
func (s *Service) SubmitWind(ctx context.Context, sess *Session, coords types.Coordinates) {
	sess.beginWind()

	result, err := s.calc.ComputeWind(ctx, coords, assessment.WindOptions{})
	if err != nil {
		s.logger.Error("wind calculation failed",
			"session_id", sess.SessionID(),
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		sess.failWind(userMessage(err))
		return
	}
	sess.finishWind(*result)
}

// Submit runs the solar and wind calculations in parallel. The two are
// independent and unordered; either may fail without affecting the other,
// and the returned snapshot may show one half errored next to the other's
// result.
func (s *Service) Submit(ctx context.Context, sess *Session, coords types.Coordinates) Snapshot {
	wg := conc.NewWaitGroup()
	wg.Go(func() {
		s.SubmitSolar(ctx, sess, coords)
	})
	wg.Go(func() {
		s.SubmitWind(ctx, sess, coords)
	})
	wg.Wait()

	return sess.Snapshot()
}

// userMessage converts a gateway error into the string shown next to the
// failed slot.
func userMessage(err error) string {
	var svcErr *assessment.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return "calculation failed, please try again"
}
