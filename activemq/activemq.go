// Package activemq is the baseline broker dialect: destinations are
// prefixed with /queue/ or /topic/ by the caller-facing helpers, frames use
// the NUL+newline terminator, and sends carry the persistent header.
package activemq

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/israelio/stomp-go-client/stomp"
)

// Queue returns the point-to-point destination for a queue name
func Queue(name string) string {
	return "/queue/" + name
}

// Topic returns the publish-subscribe destination for a topic name
func Topic(name string) string {
	return "/topic/" + name
}

// Client is a connection to an ActiveMQ-style broker
type Client struct {
	conn *stomp.Conn
	log  *logrus.Entry
}

// Connect opens a connection to the broker
func Connect(address string, opts ...stomp.FactoryOption) (*Client, error) {
	log := logrus.WithField("dialect", "activemq")

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

// Send publishes body to a destination and awaits the server receipt.
// Messages are persistent unless a persistent header says otherwise; pass a
// transaction header to make the send transactional (transactional sends
// are not receipt-correlated).
func (c *Client) Send(destination string, body []byte, headers ...stomp.Header) error {
	return c.conn.Send(destination, body, headers...)
}

// SendNoAck publishes body without a receipt; such messages are
// non-persistent by default.
func (c *Client) SendNoAck(destination string, body []byte, headers ...stomp.Header) error {
	return c.conn.SendNoReceipt(destination, body, headers...)
}

// Subscribe registers for messages from a destination
func (c *Client) Subscribe(destination string, headers ...stomp.Header) error {
	return c.conn.Subscribe(destination, headers...)
}

// Unsubscribe cancels a subscription
func (c *Client) Unsubscribe(destination string, headers ...stomp.Header) error {
	return c.conn.Unsubscribe(destination, headers...)
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
