package credential

import (
	"context"
	"errors"
	"fmt"
)

// ErrAuthFailed is returned when no usable credential could be obtained.
var ErrAuthFailed = errors.New("authentication failed")

// Provider supplies bearer access tokens for the calendar write API.
// Implementations must attempt a silent (non-interactive) path when
// interactive is false; the interactive path is a fallback only.
type Provider interface {
	Token(ctx context.Context, interactive bool) (string, error)
	Invalidate()
}

// AuthorizationRequiredError signals that user interaction is needed.
// URL is the consent page the user must visit to mint a new credential.
type AuthorizationRequiredError struct {
	URL string
}

func (e *AuthorizationRequiredError) Error() string {
	return fmt.Sprintf("user authorization required: visit %s", e.URL)
}
