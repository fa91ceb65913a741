package stomp

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/israelio/stomp-go-client/internal/frame"
	"github.com/israelio/stomp-go-client/internal/protocol"
)

// ConnectionFactory creates and configures STOMP connections
type ConnectionFactory struct {
	// Address in host:port form
	Address string

	// Credentials. Login and passcode headers are sent only when
	// HasCredentials is set (WithCredentials does this); either value may
	// be empty.
	Login          string
	Passcode       string
	HasCredentials bool

	// EOFNewline selects the frame-terminator convention consumed from
	// the peer: NUL+newline when true (ActiveMQ, ocamlmq), a bare NUL
	// when false (RabbitMQ STOMP gateway).
	EOFNewline bool

	// ExtraHeaders are appended to the CONNECT frame after any
	// credential headers.
	ExtraHeaders Headers

	// Dial opens the transport; DialTCP by default.
	Dial Dialer

	Logger  *logrus.Entry
	Metrics MetricsCollector
}

// NewConnectionFactory creates a factory with defaults: NUL+newline
// framing, TCP transport, no credentials.
func NewConnectionFactory(address string, opts ...FactoryOption) *ConnectionFactory {
	cf := &ConnectionFactory{
		Address:    address,
		EOFNewline: true,
		Dial:       DialTCP,
		Logger:     logrus.WithField("component", "stomp"),
		Metrics:    NewStandardMetricsCollector(),
	}

	for _, opt := range opts {
		opt(cf)
	}

	return cf
}

// Validate validates the factory configuration
func (cf *ConnectionFactory) Validate() error {
	if cf.Address == "" {
		return errors.New("address cannot be empty")
	}
	if cf.Dial == nil {
		return errors.New("dialer cannot be nil")
	}
	if cf.Metrics == nil {
		return errors.New("metrics collector cannot be nil")
	}
	return nil
}

// Connect opens a transport to the factory address and performs the STOMP
// handshake: a CONNECT frame, then frames read until a non-MESSAGE frame
// arrives (valid MESSAGE frames are buffered for later receives).
//
// A refused transport fails with HintAbort/KindConnectionRefused; an ERROR
// reply carrying message: access_refused fails with
// HintAbort/KindAccessRefused; any other reply frame fails with
// HintReconnect and a protocol error.
func (cf *ConnectionFactory) Connect() (*Conn, error) {
	if err := cf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid connection factory")
	}

	t, err := cf.Dial(cf.Address)
	if err != nil {
		if isConnectionRefused(err) {
			return nil, newConnectionError(HintAbort, KindConnectionRefused, "connection refused by "+cf.Address, err)
		}
		return nil, errors.Wrapf(err, "unable to dial %s", cf.Address)
	}

	conn := newConn(t, cf)

	headers := Headers{}
	if cf.HasCredentials {
		headers = headers.
			Add(protocol.HdrLogin, cf.Login).
			Add(protocol.HdrPasscode, cf.Passcode)
	}
	headers = append(headers, cf.ExtraHeaders...)

	if err := conn.writeFrame(frame.New(protocol.CmdConnect, headers, nil)); err != nil {
		t.Close()
		return nil, err
	}

	reply, err := conn.readNonMessage()
	if err != nil {
		t.Close()
		return nil, err
	}

	switch {
	case reply.Command == protocol.CmdConnected:
		cf.Metrics.ConnectionCreated()
		cf.Logger.WithField("address", cf.Address).Debug("connected")
		return conn, nil

	case reply.Command == protocol.CmdError && headerEquals(reply, protocol.HdrMessage, protocol.AccessRefusedMessage):
		t.Close()
		return nil, newConnectionError(HintAbort, KindAccessRefused, "access refused by "+cf.Address, nil)

	default:
		t.Close()
		return nil, newProtocolError(HintReconnect, reply, "unexpected reply to CONNECT")
	}
}

// headerEquals reports whether the frame carries the header with exactly
// the given value.
func headerEquals(f *Frame, name, value string) bool {
	v, ok := f.Header(name)
	return ok && v == value
}
