package services

import (
	"context"
	"errors"
	"fmt"
)

// MaxMalformedRetries bounds how many extra model calls a malformed
// answer may cost.
const MaxMalformedRetries = 1

type RetryOutcome int

const (
	// RetrySucceeded means one of the attempts returned a usable answer.
	RetrySucceeded RetryOutcome = iota
	// RetryExhausted means every attempt returned malformed output.
	RetryExhausted
	// RetryAborted means an attempt failed with an error that is not
	// worth retrying.
	RetryAborted
)

func (o RetryOutcome) String() string {
	switch o {
	case RetrySucceeded:
		return "succeeded"
	case RetryExhausted:
		return "exhausted"
	default:
		return "aborted"
	}
}

// RetryPolicy retries an operation only when it reports ErrMalformedOutput.
type RetryPolicy struct {
	MaxRetries int
}

func NewRetryPolicy(maxRetries int) RetryPolicy {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if maxRetries > MaxMalformedRetries {
		maxRetries = MaxMalformedRetries
	}
	return RetryPolicy{MaxRetries: maxRetries}
}

func (p RetryPolicy) Attempts() int {
	return NewRetryPolicy(p.MaxRetries).MaxRetries + 1
}

// Retry runs fn until it succeeds, fails with a non-retryable error or the
// policy runs out of attempts.
func Retry[T any](ctx context.Context, p RetryPolicy, fn func(ctx context.Context, attempt int) (T, error)) (T, RetryOutcome, error) {
	var zero T
	var lastErr error

	attempts := p.Attempts()
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return zero, RetryAborted, err
		}

		result, err := fn(ctx, i)
		if err == nil {
			return result, RetrySucceeded, nil
		}
		if !errors.Is(err, ErrMalformedOutput) {
			return zero, RetryAborted, err
		}
		lastErr = err
	}
	return zero, RetryExhausted, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
