// Package ocamlmq extends the baseline dialect for the ocamlmq broker:
// destinations are queue names (prefixed internally), sends may carry a
// per-message ack timeout, and the broker answers queue-size queries
// through a synthetic control destination.
package ocamlmq

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/israelio/stomp-go-client/internal/protocol"
	"github.com/israelio/stomp-go-client/stomp"
)

// controlCountPrefix is the synthetic destination answering queue-size
// queries via a RECEIPT carrying num-messages.
const controlCountPrefix = "/control/count-msgs/"

// AckTimeout renders a per-message acknowledgement timeout, in seconds, as
// an ack-timeout header.
func AckTimeout(seconds float64) stomp.Header {
	return stomp.NewHeader(protocol.HdrAckTimeout, strconv.FormatFloat(seconds, 'f', -1, 64))
}

// Client is a connection to an ocamlmq broker
type Client struct {
	conn *stomp.Conn
	log  *logrus.Entry
}

// Connect opens a connection to the broker
func Connect(address string, opts ...stomp.FactoryOption) (*Client, error) {
	log := logrus.WithField("dialect", "ocamlmq")

	cf := stomp.NewConnectionFactory(address, append([]stomp.FactoryOption{stomp.WithLogger(log)}, opts...)...)
	conn, err := cf.Connect()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to broker")
	}

	return &Client{
		conn: conn,
		log:  log,
	}, nil
}

// Conn returns the underlying generic connection
func (c *Client) Conn() *stomp.Conn {
	return c.conn
}

// Send publishes body to a queue and awaits the server receipt. Append
// AckTimeout(seconds) to bound the broker-side redelivery timer.
func (c *Client) Send(queue string, body []byte, headers ...stomp.Header) error {
	return c.conn.Send("/queue/"+queue, body, headers...)
}

// SendNoAck publishes body to a queue without a receipt
func (c *Client) SendNoAck(queue string, body []byte, headers ...stomp.Header) error {
	return c.conn.SendNoReceipt("/queue/"+queue, body, headers...)
}

// Subscribe registers for messages from a queue
func (c *Client) Subscribe(queue string, headers ...stomp.Header) error {
	return c.conn.Subscribe("/queue/"+queue, headers...)
}

// Unsubscribe cancels a queue subscription
func (c *Client) Unsubscribe(queue string, headers ...stomp.Header) error {
	return c.conn.Unsubscribe("/queue/"+queue, headers...)
}

// QueueSize asks the broker how many messages a queue holds. It issues a
// receipt-correlated zero-length SEND to the control destination and reads
// num-messages off the RECEIPT. ok is false when the header is absent or
// not numeric.
func (c *Client) QueueSize(queue string) (size int64, ok bool, err error) {
	headers := stomp.Headers{}.Add(protocol.HdrDestination, controlCountPrefix+queue)

	receipt, err := c.conn.Request(protocol.CmdSend, headers, nil)
	if err != nil {
		return 0, false, err
	}

	v, found := receipt.Header(protocol.HdrNumMessages)
	if !found {
		return 0, false, nil
	}
	n, perr := strconv.ParseInt(v, 10, 64)
	if perr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// ReceiveMessage returns the next message
func (c *Client) ReceiveMessage() (*stomp.Message, error) {
	return c.conn.ReceiveMessage()
}

// AckMessage acknowledges a delivered message
func (c *Client) AckMessage(m *stomp.Message, headers ...stomp.Header) error {
	return m.Ack(headers...)
}

// Begin starts a transaction
func (c *Client) Begin() (string, error) {
	return c.conn.Begin()
}

// Commit commits a transaction
func (c *Client) Commit(id string) error {
	return c.conn.Commit(id)
}

// Abort aborts a transaction
func (c *Client) Abort(id string) error {
	return c.conn.Abort(id)
}

// CommitAll commits every live transaction
func (c *Client) CommitAll() error {
	return c.conn.CommitAll()
}

// AbortAll aborts every live transaction
func (c *Client) AbortAll() error {
	return c.conn.AbortAll()
}

// Disconnect tears the connection down
func (c *Client) Disconnect() error {
	return c.conn.Disconnect()
}
