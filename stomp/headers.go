package stomp

import (
	"github.com/israelio/stomp-go-client/internal/frame"
	"github.com/israelio/stomp-go-client/internal/protocol"
)

// Header is a single STOMP header; order is preserved on the wire.
type Header = protocol.Header

// Headers is an ordered header sequence.
type Headers = protocol.Headers

// Frame is a decoded STOMP frame.
type Frame = frame.Frame

// NewHeader creates a header
func NewHeader(name, value string) Header {
	return Header{Name: name, Value: value}
}
