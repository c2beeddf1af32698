package analysis

import "errors"

var (
	// ErrProviderUnavailable covers any failure of the external model call
	// (network, auth, quota, empty candidate list).
	ErrProviderUnavailable = errors.New("analysis provider unavailable")
	// ErrMalformedOutput means the model response was not parseable JSON
	// after fence stripping.
	ErrMalformedOutput = errors.New("analysis output is not valid JSON")
	// ErrInvalidShape means the JSON parsed but a required field was missing
	// or of the wrong type. The whole record is rejected.
	ErrInvalidShape = errors.New("analysis output missing required fields")
)
