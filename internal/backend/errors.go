package backend

import (
	"errors"
	"fmt"
)

// Kind classifies how a backend call failed. Content loaders treat every kind
// the same way (show the widget fallback); the purchase flow maps kinds to
// distinct user-facing messages.
type Kind int

const (
	// KindTransport covers network failures and request timeouts.
	KindTransport Kind = iota + 1
	// KindStatus covers HTTP responses outside the 2xx range.
	KindStatus
	// KindDecode covers malformed or empty payloads.
	KindDecode
	// KindUnavailable covers the backend's declared outage (503 + DB code).
	KindUnavailable
)

// ErrUnavailable is matched by errors.Is when the backend reported a 503 with
// its database-connection error code.
var ErrUnavailable = errors.New("backend: service temporarily unavailable")

const dbConnectionErrorCode = "DB_CONNECTION_ERROR"

// Error carries the failed operation, its classification, and the HTTP detail
// when one exists.
type Error struct {
	Op     string
	Kind   Kind
	Status int
	Code   string
	err    error
}

func (e *Error) Error() string {
	switch {
	case e.err != nil:
		return fmt.Sprintf("backend: %s: %v", e.Op, e.err)
	case e.Status != 0 && e.Code != "":
		return fmt.Sprintf("backend: %s: status %d (%s)", e.Op, e.Status, e.Code)
	case e.Status != 0:
		return fmt.Sprintf("backend: %s: status %d", e.Op, e.Status)
	default:
		return fmt.Sprintf("backend: %s failed", e.Op)
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is reports ErrUnavailable for outage-classified errors so callers can use
// errors.Is without reaching into the struct.
func (e *Error) Is(target error) bool {
	return target == ErrUnavailable && e.Kind == KindUnavailable
}

// Classify returns the Kind of a backend error, or zero for foreign errors.
func Classify(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return 0
}

func transportError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindTransport, err: err}
}

func decodeError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindDecode, err: err}
}

func statusError(op string, status int, code string) *Error {
	kind := KindStatus
	if status == 503 && code == dbConnectionErrorCode {
		kind = KindUnavailable
	}
	return &Error{Op: op, Kind: kind, Status: status, Code: code}
}
