package srtconn

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure the facade can surface to a caller.
type Kind int

const (
	// KindConfigurationRejected covers a missing required callback, an
	// invalid MTU or PSK length, or an invalid local address.
	KindConfigurationRejected Kind = iota
	// KindAddressResolutionFailed covers a host or bind address that
	// cannot be resolved.
	KindAddressResolutionFailed
	// KindBindFailed covers a local endpoint that cannot be bound.
	KindBindFailed
	// KindListenFailed covers a bound socket that cannot be put into
	// listening state.
	KindListenFailed
	// KindConnectFailed covers an unreachable peer or a rejected
	// handshake (including a PSK mismatch).
	KindConnectFailed
	// KindMessageTooLarge covers a send request above the live-mode
	// payload maximum.
	KindMessageTooLarge
	// KindSendFailed covers a broken socket or an unknown send target.
	KindSendFailed
	// KindPeerGone is never returned; a peer going away is reported only
	// through clientDisconnected, which carries no error value.
	KindPeerGone
)

func (k Kind) String() string {
	switch k {
	case KindConfigurationRejected:
		return "ConfigurationRejected"
	case KindAddressResolutionFailed:
		return "AddressResolutionFailed"
	case KindBindFailed:
		return "BindFailed"
	case KindListenFailed:
		return "ListenFailed"
	case KindConnectFailed:
		return "ConnectFailed"
	case KindMessageTooLarge:
		return "MessageTooLarge"
	case KindSendFailed:
		return "SendFailed"
	case KindPeerGone:
		return "PeerGone"
	default:
		return "Unknown"
	}
}

// Error is the facade's error type. Err carries the wrapped cause, with a
// stack recorded at the point the failure crossed into this package.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func wrapErr(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: errors.Wrapf(err, format, args...)}
}

// IsKind reports whether err (or anything it wraps) is a *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == k
}
