package frame

import (
	"fmt"

	"github.com/israelio/stomp-go-client/internal/protocol"
)

// Frame represents a STOMP frame: an uppercase command word, an ordered
// header sequence and an arbitrary byte body.
type Frame struct {
	Command string
	Headers protocol.Headers
	Body    []byte
}

// New creates a new frame
func New(command string, headers protocol.Headers, body []byte) *Frame {
	return &Frame{
		Command: command,
		Headers: headers,
		Body:    body,
	}
}

// Header returns the value of the first header with the given name
func (f *Frame) Header(name string) (string, bool) {
	return f.Headers.Get(name)
}

// IsMessage reports whether the frame is an asynchronous MESSAGE frame
func (f *Frame) IsMessage() bool {
	return f.Command == protocol.CmdMessage
}

// String returns a string representation of the frame
func (f *Frame) String() string {
	return fmt.Sprintf("Frame{command=%s, headers=%d, body=%d bytes}", f.Command, len(f.Headers), len(f.Body))
}
