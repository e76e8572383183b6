package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"alfredoptarigan/linkedin-analyzer/internal/scoring"
)

type ErrorKind string

const (
	KindInput         ErrorKind = "input"
	KindVerification  ErrorKind = "verification"
	KindConfiguration ErrorKind = "configuration"
	KindUpstream      ErrorKind = "upstream"
	KindMalformed     ErrorKind = "malformed"
)

// AnalysisError is the error returned by the analyzer. Status is the HTTP
// status the API answers with and Message is shown to the user. When Safe
// is set it replaces Message in production.
type AnalysisError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Safe    string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// PublicMessage is the message to send to the client.
func (e *AnalysisError) PublicMessage(production bool) string {
	if production && e.Safe != "" {
		return e.Safe
	}
	return e.Message
}

func inputError(lang scoring.Language, key MessageKey, err error) *AnalysisError {
	return &AnalysisError{Kind: KindInput, Status: http.StatusBadRequest, Message: Message(lang, key), Err: err}
}

// VerificationError rejects a request whose CAPTCHA token did not verify.
func VerificationError(lang scoring.Language, err error) *AnalysisError {
	return &AnalysisError{Kind: KindVerification, Status: http.StatusForbidden, Message: Message(lang, MsgVerificationFailed), Err: err}
}

func configurationError(lang scoring.Language, err error) *AnalysisError {
	msg := Message(lang, MsgConfiguration)
	var cfgErr *scoring.ConfigurationError
	if errors.As(err, &cfgErr) {
		msg = msg + " (" + cfgErr.Reason + ")"
	}
	return &AnalysisError{
		Kind:    KindConfiguration,
		Status:  http.StatusInternalServerError,
		Message: msg,
		Safe:    Message(lang, MsgGeneric),
		Err:     err,
	}
}

func malformedError(lang scoring.Language, err error) *AnalysisError {
	return &AnalysisError{
		Kind:    KindMalformed,
		Status:  http.StatusInternalServerError,
		Message: Message(lang, MsgAnalysisFailed),
		Safe:    Message(lang, MsgGeneric),
		Err:     err,
	}
}

// upstreamError maps a model failure to the status the API answers with:
// a rejected key is hidden behind 500, provider rate limits pass through as
// 429 and an exhausted credit balance becomes 402.
func upstreamError(lang scoring.Language, err error) *AnalysisError {
	ae := &AnalysisError{
		Kind:    KindUpstream,
		Status:  http.StatusInternalServerError,
		Message: Message(lang, MsgModelCall),
		Safe:    Message(lang, MsgGeneric),
		Err:     err,
	}

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		return ae
	}

	switch {
	case upErr.StatusCode == http.StatusUnauthorized || upErr.StatusCode == http.StatusForbidden:
		ae.Message = Message(lang, MsgUnavailable)
	case upErr.StatusCode == http.StatusTooManyRequests:
		ae.Status = http.StatusTooManyRequests
		ae.Message = Message(lang, MsgRateLimited)
		ae.Safe = ""
	case upErr.StatusCode == http.StatusBadRequest && strings.Contains(strings.ToLower(upErr.Message), "credit balance"):
		ae.Status = http.StatusPaymentRequired
		ae.Message = Message(lang, MsgCredits)
		ae.Safe = Message(lang, MsgUnavailable)
	}
	return ae
}

// ErrMalformedOutput marks model output that is not a valid analysis.
var ErrMalformedOutput = errors.New("malformed model output")

// UpstreamError is a failure reported by the LLM provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
