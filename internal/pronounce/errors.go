package pronounce

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// RequestError is a classified completion endpoint failure. Providers return
// it for errors they can already attribute (HTTP status, bad envelope);
// transport-level errors are classified by the client.
type RequestError struct {
	Kind       ErrorKind
	StatusCode int
	// Body holds the raw response body (or provider error message) so a
	// failure's details can be surfaced verbatim.
	Body string
	Err  error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case KindAPIError:
		return fmt.Sprintf("API request failed with status %d", e.StatusCode)
	case KindParseError:
		return "Failed to parse JSON from LLM output"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return string(e.Kind)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// isTimeout reports whether err represents an exceeded request deadline,
// either via context cancellation or the HTTP client's own timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
