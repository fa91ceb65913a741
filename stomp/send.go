package stomp

import (
	"strconv"

	"github.com/israelio/stomp-go-client/internal/frame"
	"github.com/israelio/stomp-go-client/internal/protocol"
)

// Send publishes body to a destination and awaits the server receipt.
//
// A persistent: true header is added unless the caller supplies one. When
// the caller headers carry a transaction header, the receipt is suppressed:
// the broker only durably commits at COMMIT, so per-SEND receipts inside a
// transaction carry no information.
func (c *Conn) Send(destination string, body []byte, headers ...Header) error {
	return c.send(destination, body, headers, true, "true")
}

// SendNoReceipt publishes body without awaiting a receipt. A
// persistent: false header is added unless the caller supplies one.
func (c *Conn) SendNoReceipt(destination string, body []byte, headers ...Header) error {
	return c.send(destination, body, headers, false, "false")
}

func (c *Conn) send(destination string, body []byte, extra Headers, withReceipt bool, defaultPersistent string) error {
	if c.closed {
		return ErrClosed
	}

	hs := Headers{}
	if len(body) > 0 {
		hs = hs.Add(protocol.HdrContentLength, strconv.Itoa(len(body)))
	}
	hs = hs.Add(protocol.HdrDestination, destination)
	if !extra.Contains(protocol.HdrPersistent) {
		hs = hs.Add(protocol.HdrPersistent, defaultPersistent)
	}
	hs = append(hs, extra...)

	if withReceipt && !extra.Contains(protocol.HdrTransaction) {
		_, err := c.Request(protocol.CmdSend, hs, body)
		return err
	}

	return c.writeFrame(frame.New(protocol.CmdSend, hs, body))
}
