package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind categorizes why a single download failed.
type ErrorKind int

const (
	ErrorHTTPStatus ErrorKind = iota
	ErrorTimeout
	ErrorNetwork
	ErrorFilesystem
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorHTTPStatus:
		return "http_status"
	case ErrorTimeout:
		return "timeout"
	case ErrorNetwork:
		return "network"
	case ErrorFilesystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// Error is the failure reported for one request. Status is set for
// ErrorHTTPStatus only.
type Error struct {
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Kind == ErrorHTTPStatus {
		return fmt.Sprintf("%s: server returned %d", e.Kind, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a fetch error, or ErrorNetwork for anything that
// is not a *Error.
func KindOf(err error) ErrorKind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ErrorNetwork
}

func httpStatusError(status int) *Error {
	return &Error{Kind: ErrorHTTPStatus, Status: status}
}

func filesystemError(err error) *Error {
	return &Error{Kind: ErrorFilesystem, Err: err}
}

// classifyTransport maps a transport failure to timeout or network. The
// client enforces the per-request timeout, so expiry surfaces here as a
// net.Error with Timeout set or as a deadline error mid-body.
func classifyTransport(err error) *Error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: ErrorTimeout, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: ErrorTimeout, Err: err}
	}
	return &Error{Kind: ErrorNetwork, Err: err}
}
