package workflow

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBusy is returned by Submit when the workflow is not in the upload
	// phase, which includes while an analysis is already in flight.
	ErrBusy = errors.New("workflow: submission not allowed in current phase")

	// ErrNotEditable is returned by setters outside the upload phase.
	ErrNotEditable = errors.New("workflow: submission is not editable in current phase")

	// ErrOrphaned is returned by Submit when Reset ran while the analysis
	// was in flight; its outcome is discarded.
	ErrOrphaned = errors.New("workflow: reset during analysis, result discarded")
)

// ValidationError lists the readiness conditions that blocked a submission.
type ValidationError struct {
	Missing []Condition
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		names[i] = string(c)
	}
	return "workflow: submission not ready, missing " + strings.Join(names, ", ")
}

// TransportError means the analysis service could not be reached.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("analysis service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is a non-2xx answer from the analysis service. Message is the
// human readable error the service sent, if any.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("analysis service returned status %d", e.Status)
	}
	return fmt.Sprintf("analysis service returned status %d: %s", e.Status, e.Message)
}

// MalformedResponseError is a 2xx answer whose body is not a usable result.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed analysis response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
