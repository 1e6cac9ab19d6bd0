package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedModelOutput means the generative service returned text that
// does not parse as the JSON requested in the prompt. Callers must treat
// this as fatal for the stage: falling back to an empty record would let
// reconciliation report false negatives downstream.
var ErrMalformedModelOutput = errors.New("malformed model output")

// SchemaViolationError means the model output parsed as JSON but does not
// satisfy the declared schema (missing keys, wrong types, out-of-range
// values). Kept distinct from ErrMalformedModelOutput so operators can tell
// "not JSON at all" from "JSON of the wrong shape".
type SchemaViolationError struct {
	Violations []string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("model output violates schema: %s", strings.Join(e.Violations, "; "))
}

// ServiceError is a non-success response from an external endpoint.
type ServiceError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}
