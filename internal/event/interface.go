package event

import "context"

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// Process runs the extraction flow for a selection: cache check,
	// backend call, normalization, cache store. The result is either
	// a ready event or a classified error offering manual entry.
	Process(ctx context.Context, input ProcessInput) (ProcessResult, error)

	// ManualEntry builds a blank event seeded with the raw selection
	// as description, for the manual fallback flow.
	ManualEntry(input ManualInput) NormalizedEvent

	// Submit validates the edited event, resolves its times, and
	// writes it to the calendar provider.
	Submit(ctx context.Context, input SubmitInput) (SubmitResult, error)

	// AuthStatus reports whether a calendar credential is silently
	// available.
	AuthStatus(ctx context.Context) AuthResult

	// Authenticate attempts the interactive credential flow.
	Authenticate(ctx context.Context) (AuthResult, error)
}
