package llm

import "errors"

var (
	// ErrUnavailable indicates the generation backend is unreachable.
	ErrUnavailable = errors.New("generation backend unavailable")

	// ErrTimeout indicates the generation request exceeded its timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrEmptyResponse indicates the backend answered with no usable text.
	ErrEmptyResponse = errors.New("generation backend returned empty response")

	// ErrGenerateFailed indicates the backend returned an error response.
	ErrGenerateFailed = errors.New("generation request failed")

	// ErrUnknownBackend indicates an unrecognized backend name in config.
	ErrUnknownBackend = errors.New("unknown generation backend")
)
