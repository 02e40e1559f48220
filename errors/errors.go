// Package errors provides the SDK's typed errors. All error types
// support unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"
	"time"
)

// ErrClosed is returned for calls issued against, or still pending on, a
// bridge that has been shut down.
var ErrClosed = stdErrors.New("bridge closed")

// ErrNoTrustedAncestor is returned when a send is refused because no
// trusted embedding ancestor has been established.
var ErrNoTrustedAncestor = stdErrors.New("no trusted ancestor established")

// ErrNotEmbedded is returned when the mini-app is running as its own
// top-level context rather than inside a wallet host.
var ErrNotEmbedded = stdErrors.New("not embedded in a wallet host")

// TimeoutError indicates that no response arrived for a call within its
// deadline. The error text is fixed; hosts and callers match on it.
type TimeoutError struct {
	Method   string
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return "Request timeout"
}

// Timeout implements the net.Error-style timeout predicate.
func (e *TimeoutError) Timeout() bool {
	return true
}

// RemoteError carries the host-supplied error text for a call the host
// answered with an error-kind envelope. The text is reported verbatim.
type RemoteError struct {
	Method  string
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// SendError wraps a transport failure while sending an outbound envelope.
type SendError struct {
	Method string
	Err    error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send %s failed: %v", e.Method, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}
