package stomp

import (
	"errors"
	"fmt"
)

// Hint is the restartability classification attached to every failure. The
// library never acts on hints itself; they are a contract for recovery
// loops built above it.
type Hint int

const (
	// HintAbort marks unrecoverable conditions: refused connection,
	// refused credentials.
	HintAbort Hint = iota
	// HintReconnect marks transport breakage or an unexpected protocol
	// shape mid-conversation: drop the connection and re-establish.
	HintReconnect
	// HintRetry marks transient per-message anomalies: skip and try again.
	HintRetry
)

// String returns a string representation of the hint
func (h Hint) String() string {
	switch h {
	case HintAbort:
		return "abort"
	case HintReconnect:
		return "reconnect"
	case HintRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// Kind identifies the failure class.
type Kind int

const (
	// KindClosed: the connection is already closed or became closed
	// mid-operation.
	KindClosed Kind = iota
	// KindConnectionRefused: the transport refused at open time.
	KindConnectionRefused
	// KindAccessRefused: the server rejected the supplied credentials
	// during the handshake.
	KindAccessRefused
	// KindProtocol: an unexpected frame shape.
	KindProtocol
	// KindNode is reserved and not emitted by the current engine.
	KindNode
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindClosed:
		return "closed"
	case KindConnectionRefused:
		return "connection refused"
	case KindAccessRefused:
		return "access refused"
	case KindProtocol:
		return "protocol error"
	case KindNode:
		return "node error"
	default:
		return "unknown"
	}
}

// Error is a STOMP client failure: a restartability hint, an error kind and
// a human context string. Protocol errors additionally carry the offending
// frame.
type Error struct {
	Hint   Hint
	Kind   Kind
	Reason string
	Frame  *Frame
	Err    error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("stomp: %s (%s, hint: %s)", e.Reason, e.Kind, e.Hint)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrClosed is returned by the protocol verbs (send, subscribe, ack,
// receive, transactions) on a closed connection. Disconnect on a closed
// connection succeeds instead.
var ErrClosed = &Error{
	Hint:   HintReconnect,
	Kind:   KindClosed,
	Reason: "connection closed",
}

// newConnectionError creates a transport-level failure
func newConnectionError(hint Hint, kind Kind, reason string, err error) *Error {
	return &Error{
		Hint:   hint,
		Kind:   kind,
		Reason: reason,
		Err:    err,
	}
}

// newProtocolError creates a failure carrying the unexpected frame
func newProtocolError(hint Hint, f *Frame, reason string) *Error {
	return &Error{
		Hint:   hint,
		Kind:   KindProtocol,
		Reason: reason,
		Frame:  f,
	}
}

// isConnectionKind reports whether a kind belongs to the connection-error
// family (closed / connection refused / access refused).
func isConnectionKind(k Kind) bool {
	switch k {
	case KindClosed, KindConnectionRefused, KindAccessRefused:
		return true
	default:
		return false
	}
}

// AsError unpacks a *stomp.Error from an error chain.
func AsError(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
