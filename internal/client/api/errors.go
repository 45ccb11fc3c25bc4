package api

import (
	"errors"
	"fmt"
)

// Error is a failure reported by the server: a non-2xx HTTP status or a
// 2xx body whose status field is not "success". Message carries the
// server-provided text, suitable for showing to the user as-is.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (HTTP %d)", e.Code)
}

// Message extracts the user-facing text from an error. Server-reported
// messages pass through verbatim; anything else (network failure, decode
// error) collapses to the fallback so raw transport errors never reach
// the user.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
