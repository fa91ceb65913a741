package stomp

import (
	"github.com/israelio/stomp-go-client/internal/protocol"
)

// Subscribe registers for messages from a destination and awaits the
// server receipt. The destination string is passed through as given;
// dialect packages prepend /queue/ or /topic/ for their callers.
func (c *Conn) Subscribe(destination string, headers ...Header) error {
	hs := Headers{}.Add(protocol.HdrDestination, destination)
	hs = append(hs, headers...)
	_, err := c.Request(protocol.CmdSubscribe, hs, nil)
	return err
}

// Unsubscribe cancels a subscription and awaits the server receipt.
func (c *Conn) Unsubscribe(destination string, headers ...Header) error {
	hs := Headers{}.Add(protocol.HdrDestination, destination)
	hs = append(hs, headers...)
	_, err := c.Request(protocol.CmdUnsubscribe, hs, nil)
	return err
}

// Ack acknowledges a message by id and awaits the server receipt. Pass a
// transaction header to make the acknowledgement part of a transaction;
// ACK frames are receipt-correlated either way.
func (c *Conn) Ack(messageID string, headers ...Header) error {
	hs := Headers{}.Add(protocol.HdrMessageID, messageID)
	hs = append(hs, headers...)
	_, err := c.Request(protocol.CmdAck, hs, nil)
	return err
}
