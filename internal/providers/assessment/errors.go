package assessment

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorKind classifies a failed round trip against the assessment backend.
type ErrorKind string

const (
	ErrorNetwork    ErrorKind = "network"     // transport failure, service unreachable
	ErrorValidation ErrorKind = "validation"  // the service rejected the input
	ErrorNoCoverage ErrorKind = "no_coverage" // the service has no data for the location
	ErrorUnknown    ErrorKind = "unknown"     // unparsable or unexpected failure shape
)

// ServiceError is the single error shape returned by the client. Message is
// safe to show to a user.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assessment service: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("assessment service: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// errorBody is the structured error payload the backend returns on non-2xx
// responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// Phrases the backend uses when its data source has nothing for a location.
var noCoveragePhrases = []string{
	"no climate data found",
	"no coverage",
}

const noCoverageMessage = "no renewable energy data is available for this location"

// mapResponseError turns a non-success status and response body into a
// ServiceError. The mapping is pure and does not depend on which endpoint
// was called: a known no-data detail becomes NoCoverage, any other
// structured detail passes through as Validation, and an unparsable body
// becomes Unknown.
func mapResponseError(statusCode int, body []byte) *ServiceError {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil || strings.TrimSpace(parsed.Detail) == "" {
		return &ServiceError{
			Kind:    ErrorUnknown,
			Message: fmt.Sprintf("the assessment service returned status %d", statusCode),
		}
	}

	detail := strings.TrimSpace(parsed.Detail)
	lower := strings.ToLower(detail)
	for _, phrase := range noCoveragePhrases {
		if strings.Contains(lower, phrase) {
			return &ServiceError{
				Kind:    ErrorNoCoverage,
				Message: noCoverageMessage,
			}
		}
	}

	return &ServiceError{
		Kind:    ErrorValidation,
		Message: detail,
	}
}
