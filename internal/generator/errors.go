package generator

import (
	"fmt"
	"unicode/utf8"
)

// BackendError is a failed call to a text-generation provider.
type BackendError struct {
	Provider string
	Err      error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("generation backend %s: %v", e.Provider, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// ParseError means no JSON object could be recovered from the response. Raw
// holds the response text unchanged.
type ParseError struct {
	Raw string
}

const rawPreviewLen = 200

func (e *ParseError) Error() string {
	preview := e.Raw
	if utf8.RuneCountInString(preview) > rawPreviewLen {
		preview = string([]rune(preview)[:rawPreviewLen]) + "..."
	}
	return fmt.Sprintf("could not extract JSON from generation response: %q", preview)
}
