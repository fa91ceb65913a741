package stomp

import (
	"github.com/israelio/stomp-go-client/internal/protocol"
)

// Message is a delivered MESSAGE frame. Only frames carrying a message-id
// header become Messages.
type Message struct {
	ID      string
	Headers Headers
	Body    []byte

	// Connection reference for acknowledgement
	conn *Conn
}

// Ack acknowledges this message
func (m *Message) Ack(headers ...Header) error {
	if m.conn == nil {
		return ErrClosed
	}
	return m.conn.Ack(m.ID, headers...)
}

// messageFromFrame builds a Message from a MESSAGE frame; frames without a
// message-id header yield no Message.
func (c *Conn) messageFromFrame(f *Frame) (*Message, bool) {
	id, ok := f.Header(protocol.HdrMessageID)
	if !ok {
		return nil, false
	}
	return &Message{
		ID:      id,
		Headers: f.Headers,
		Body:    f.Body,
		conn:    c,
	}, true
}

// ReceiveMessage returns the next message: the head of the pending FIFO if
// any MESSAGE frames were buffered during receipt handshakes, otherwise the
// next MESSAGE frame off the wire. Non-MESSAGE frames encountered here are
// discarded. A MESSAGE frame without a message-id header fails with
// HintRetry: skip it and receive again.
func (c *Conn) ReceiveMessage() (*Message, error) {
	if c.closed {
		return nil, ErrClosed
	}

	if len(c.pending) > 0 {
		m := c.pending[0]
		c.pending = c.pending[1:]
		c.metrics.MessageDelivered()
		return m, nil
	}

	for {
		f, err := c.readFrame()
		if err != nil {
			return nil, err
		}
		if !f.IsMessage() {
			c.log.WithField("command", f.Command).Debug("discarding non-MESSAGE frame during receive")
			continue
		}
		m, ok := c.messageFromFrame(f)
		if !ok {
			return nil, newProtocolError(HintRetry, f, "MESSAGE frame without message-id")
		}
		c.metrics.MessageDelivered()
		return m, nil
	}
}

// Pending returns the number of buffered, undelivered messages.
func (c *Conn) Pending() int {
	return len(c.pending)
}
