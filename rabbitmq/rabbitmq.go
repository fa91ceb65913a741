// Package rabbitmq overlays the generic client for the RabbitMQ STOMP
// gateway. The gateway terminates frames with a bare NUL, takes a prefetch
// header on CONNECT, and routes topics through the amq.topic exchange;
// topic subscriptions are tracked per connection so they can be cancelled
// by their server-facing id.
package rabbitmq

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/israelio/stomp-go-client/internal/protocol"
	"github.com/israelio/stomp-go-client/internal/util"
	"github.com/israelio/stomp-go-client/stomp"
)

const (
	topicExchange    = "amq.topic"
	octetStreamType  = "application/octet-stream"
	sideConnPrefetch = 1
)

// Client is a connection to the RabbitMQ STOMP gateway
type Client struct {
	conn *stomp.Conn

	// Saved so ad-hoc side connections (queue creation) can reuse them.
	address  string
	login    string
	passcode string

	factoryOpts []stomp.FactoryOption

	// Topic name to server-facing subscription id.
	topicSubs map[string]string
	topicIDs  *util.Counter

	log *logrus.Entry
}

// Option configures a Client
type Option func(*settings)

type settings struct {
	prefetch    int
	hasPrefetch bool
	factoryOpts []stomp.FactoryOption
}

// WithPrefetch bounds the number of unacked in-flight messages the broker
// delivers to this connection
func WithPrefetch(n int) Option {
	return func(s *settings) {
		s.prefetch = n
		s.hasPrefetch = true
	}
}

// WithFactoryOptions passes options through to the underlying connection
// factory
func WithFactoryOptions(opts ...stomp.FactoryOption) Option {
	return func(s *settings) {
		s.factoryOpts = append(s.factoryOpts, opts...)
	}
}

// Connect opens a connection to the gateway with the given credentials
func Connect(address, login, passcode string, opts ...Option) (*Client, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return connect(address, login, passcode, s)
}

func connect(address, login, passcode string, s settings) (*Client, error) {
	log := logrus.WithField("dialect", "rabbitmq")

	factoryOpts := []stomp.FactoryOption{
		stomp.WithLogger(log),
		stomp.WithCredentials(login, passcode),
		stomp.WithEOFNewline(false),
	}
	if s.hasPrefetch {
		factoryOpts = append(factoryOpts, stomp.WithHeader(protocol.HdrPrefetch, strconv.Itoa(s.prefetch)))
	}
	factoryOpts = append(factoryOpts, s.factoryOpts...)

	conn, err := stomp.NewConnectionFactory(address, factoryOpts...).Connect()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to gateway")
	}

	return &Client{
		conn:        conn,
		address:     address,
		login:       login,
		passcode:    passcode,
		factoryOpts: s.factoryOpts,
		topicSubs:   make(map[string]string),
		topicIDs:    util.NewCounter(),
		log:         log,
	}, nil
}

// Conn returns the underlying generic connection
func (c *Client) Conn() *stomp.Conn {
	return c.conn
}

// Send publishes body to a queue and awaits the server receipt
func (c *Client) Send(queue string, body []byte, headers ...stomp.Header) error {
	hs := stomp.Headers{stomp.NewHeader(protocol.HdrContentType, octetStreamType)}
	hs = append(hs, headers...)
	return c.conn.Send("/queue/"+queue, body, hs...)
}

// SendNoAck publishes body to a queue without a receipt
func (c *Client) SendNoAck(queue string, body []byte, headers ...stomp.Header) error {
	hs := stomp.Headers{stomp.NewHeader(protocol.HdrContentType, octetStreamType)}
	hs = append(hs, headers...)
	return c.conn.SendNoReceipt("/queue/"+queue, body, hs...)
}

// TopicSend publishes body to a topic through the amq.topic exchange and
// awaits the server receipt
func (c *Client) TopicSend(topic string, body []byte, headers ...stomp.Header) error {
	hs := stomp.Headers{
		stomp.NewHeader(protocol.HdrContentType, octetStreamType),
		stomp.NewHeader(protocol.HdrExchange, topicExchange),
	}
	hs = append(hs, headers...)
	return c.conn.Send("/topic/"+topic, body, hs...)
}

// TopicSendNoAck publishes body to a topic without a receipt
func (c *Client) TopicSendNoAck(topic string, body []byte, headers ...stomp.Header) error {
	hs := stomp.Headers{
		stomp.NewHeader(protocol.HdrContentType, octetStreamType),
		stomp.NewHeader(protocol.HdrExchange, topicExchange),
	}
	hs = append(hs, headers...)
	return c.conn.SendNoReceipt("/topic/"+topic, body, hs...)
}

// SubscribeQueue subscribes to a queue, declaring it broker-side as
// durable, non-auto-delete, with client acknowledgement.
func (c *Client) SubscribeQueue(queue string) error {
	return c.conn.Subscribe("/queue/"+queue,
		stomp.NewHeader(protocol.HdrAutoDelete, "false"),
		stomp.NewHeader(protocol.HdrDurable, "true"),
		stomp.NewHeader(protocol.HdrAck, "client"),
	)
}

// UnsubscribeQueue cancels a queue subscription
func (c *Client) UnsubscribeQueue(queue string) error {
	return c.conn.Unsubscribe("/queue/" + queue)
}

// SubscribeTopic subscribes to a topic through the amq.topic exchange. The
// subscription gets a fresh server-facing id and a random token body the
// broker uses to seed its transient queue name. Subscribing to an already
// subscribed topic is a no-op.
func (c *Client) SubscribeTopic(topic string) error {
	if _, ok := c.topicSubs[topic]; ok {
		return nil
	}

	id := fmt.Sprintf("topic-%d", c.topicIDs.Next())
	headers := stomp.Headers{
		stomp.NewHeader(protocol.HdrExchange, topicExchange),
		stomp.NewHeader(protocol.HdrRoutingKey, "/topic/"+topic),
		stomp.NewHeader(protocol.HdrID, id),
	}

	if _, err := c.conn.Request(protocol.CmdSubscribe, headers, []byte(util.RandomToken())); err != nil {
		return err
	}

	c.topicSubs[topic] = id
	return nil
}

// UnsubscribeTopic cancels a topic subscription by its recorded id; a topic
// that was never subscribed is a no-op.
func (c *Client) UnsubscribeTopic(topic string) error {
	id, ok := c.topicSubs[topic]
	if !ok {
		return nil
	}

	if err := c.conn.Unsubscribe("/topic/"+topic, stomp.NewHeader(protocol.HdrID, id)); err != nil {
		return err
	}

	delete(c.topicSubs, topic)
	return nil
}

// CreateQueue declares a durable queue without consuming from it: a
// transient prefetch-1 side connection subscribes to the queue (declaring
// it durable and non-auto-delete broker-side) and disconnects without
// acking anything. The broker keeps the queue after the disconnect.
func (c *Client) CreateQueue(queue string) error {
	side, err := connect(c.address, c.login, c.passcode, settings{
		prefetch:    sideConnPrefetch,
		hasPrefetch: true,
		factoryOpts: c.factoryOpts,
	})
	if err != nil {
		return errors.Wrapf(err, "unable to open side connection for queue %s", queue)
	}

	if err := side.SubscribeQueue(queue); err != nil {
		side.Disconnect()
		return errors.Wrapf(err, "unable to declare queue %s", queue)
	}

	return side.Disconnect()
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
