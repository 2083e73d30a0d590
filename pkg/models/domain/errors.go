package domain

import "errors"

// Render error kinds. Handlers map these onto HTTP status codes; everything
// else that bubbles out of a render is treated as ErrRenderFailure.
//
// An unrecognized trade id is deliberately not an error: it resolves to the
// default trade theme instead.
var (
	// ErrInvalidInput marks a request whose top-level fields are missing or
	// malformed, e.g. an embedded JSON sub-collection that does not parse.
	ErrInvalidInput = errors.New("invalid report input")

	// ErrRenderFailure marks an internal fault during layout or emission.
	// No output bytes accompany it; a partial document is never returned.
	ErrRenderFailure = errors.New("report render failure")

	// ErrResourceExceeded marks an input too large for bounded layout;
	// renders fail fast instead of degrading into a hang.
	ErrResourceExceeded = errors.New("report input exceeds limits")
)
