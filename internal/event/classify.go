package event

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	"calendar-clipper/pkg/extractor"
)

// ErrorCode identifies an extraction-phase failure kind. It drives the
// user-facing message and the retry / manual-entry offer.
type ErrorCode string

const (
	CodeBackendError       ErrorCode = "BACKEND_ERROR"
	CodeBackendTimeout     ErrorCode = "BACKEND_TIMEOUT"
	CodeBackendUnreachable ErrorCode = "BACKEND_UNREACHABLE"
	CodeRateLimited        ErrorCode = "RATE_LIMITED"
)

// Outcome is a classified failure ready for user display.
type Outcome struct {
	Code    ErrorCode
	Message string
	// Recoverable marks the manual-entry path as available. Every
	// backend failure is recoverable; the user always gets a way to
	// fill the form by hand.
	Recoverable bool
	Err         error
}

func (o Outcome) Unwrap() error { return o.Err }

// Classify maps a raised extraction failure to an Outcome.
// Dispatch order: timeout, connectivity, rate limit, everything else.
func Classify(err error) Outcome {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return Outcome{
			Code:        CodeBackendTimeout,
			Message:     "Request timed out. Please try again.",
			Recoverable: true,
			Err:         err,
		}

	case isConnectivityError(err):
		return Outcome{
			Code:        CodeBackendUnreachable,
			Message:     "Unable to connect. Check your internet connection.",
			Recoverable: true,
			Err:         err,
		}

	case isRateLimitError(err):
		return Outcome{
			Code:        CodeRateLimited,
			Message:     "Too many requests. Please wait a moment.",
			Recoverable: true,
			Err:         err,
		}

	default:
		return Outcome{
			Code:        CodeBackendError,
			Message:     "AI backend unavailable. Please try again.",
			Recoverable: true,
			Err:         err,
		}
	}
}

// BackendOutcome builds an Outcome from an error code the backend
// itself reported inside an otherwise unusable response.
func BackendOutcome(code, message string) Outcome {
	if code == "" {
		code = string(CodeBackendError)
	}
	if message == "" {
		message = "Could not extract event details."
	}
	return Outcome{
		Code:        ErrorCode(code),
		Message:     message,
		Recoverable: true,
	}
}

// isConnectivityError reports a network-layer failure where no HTTP
// response was received at all.
func isConnectivityError(err error) bool {
	var statusErr *extractor.StatusError
	if errors.As(err, &statusErr) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func isRateLimitError(err error) bool {
	var statusErr *extractor.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == 429 {
		return true
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "rate limit")
}
