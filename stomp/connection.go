package stomp

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/israelio/stomp-go-client/internal/frame"
	"github.com/israelio/stomp-go-client/internal/protocol"
	"github.com/israelio/stomp-go-client/internal/util"
)

// Conn is a STOMP connection.
//
// A Conn is not internally synchronized: the caller must ensure at most one
// public operation is outstanding at a time. Overlapping calls have
// undefined interleaving on the wire and can corrupt receipt correlation.
// Frame writes happen in call order, frame reads yield frames in wire
// order, and the pending-message FIFO preserves MESSAGE arrival order
// across interleaved receipt handshakes.
type Conn struct {
	transport Transport
	reader    *frame.Reader
	writer    *frame.Writer

	eofNL  bool
	closed bool

	// Live transactions: ids whose BEGIN completed with a RECEIPT and
	// whose COMMIT/ABORT has not.
	transactions map[string]struct{}

	// Received-but-undelivered MESSAGE frames, in wire order.
	pending []*Message

	receiptIDs     *util.Counter
	transactionIDs *util.Counter

	log     *logrus.Entry
	metrics MetricsCollector
}

// newConn creates a connection over an established transport
func newConn(t Transport, cf *ConnectionFactory) *Conn {
	return &Conn{
		transport:      t,
		reader:         frame.NewReader(t, cf.EOFNewline),
		writer:         frame.NewWriter(t),
		eofNL:          cf.EOFNewline,
		transactions:   make(map[string]struct{}),
		receiptIDs:     util.NewCounter(),
		transactionIDs: util.NewCounter(),
		log:            cf.Logger,
		metrics:        cf.Metrics,
	}
}

// Closed reports whether the connection has been disconnected or has
// observed a transport failure.
func (c *Conn) Closed() bool {
	return c.closed
}

// nextReceiptID allocates a fresh receipt id
func (c *Conn) nextReceiptID() string {
	return fmt.Sprintf("receipt-%d", c.receiptIDs.Next())
}

// nextTransactionID allocates a fresh transaction id
func (c *Conn) nextTransactionID() string {
	return fmt.Sprintf("transaction-%d", c.transactionIDs.Next())
}

// writeFrame writes a frame, converting transport failures into
// connection errors and marking the connection closed.
func (c *Conn) writeFrame(f *frame.Frame) error {
	if err := c.writer.WriteFrame(f); err != nil {
		c.closed = true
		c.metrics.ConnectionError(err)
		c.log.WithError(err).Error("transport write failed")
		return newConnectionError(HintReconnect, KindClosed, "connection closed during write", err)
	}
	c.metrics.FrameWritten(f.Command)
	return nil
}

// readFrame reads a frame, converting transport failures into connection
// errors and marking the connection closed.
func (c *Conn) readFrame() (*Frame, error) {
	f, err := c.reader.ReadFrame()
	if err != nil {
		c.closed = true
		c.metrics.ConnectionError(err)
		c.log.WithError(err).Error("transport read failed")
		return nil, newConnectionError(HintReconnect, KindClosed, "connection closed during read", err)
	}
	c.metrics.FrameRead(f.Command)
	return f, nil
}

// readNonMessage reads frames until a non-MESSAGE frame arrives. Valid
// MESSAGE frames seen on the way are appended to the pending FIFO; MESSAGE
// frames without a message-id header are dropped.
func (c *Conn) readNonMessage() (*Frame, error) {
	for {
		f, err := c.readFrame()
		if err != nil {
			return nil, err
		}
		if !f.IsMessage() {
			return f, nil
		}
		if m, ok := c.messageFromFrame(f); ok {
			c.pending = append(c.pending, m)
			c.metrics.MessageBuffered()
		} else {
			c.metrics.MessageDropped()
			c.log.Debug("dropping MESSAGE frame without message-id")
		}
	}
}

// Request writes a receipt-correlated frame and awaits the matching
// RECEIPT, buffering MESSAGE frames that arrive in between. It returns the
// RECEIPT frame so callers can read reply headers off it.
//
// Receipt ids are fresh per call; a RECEIPT with any other receipt-id, or
// any other frame, fails with a protocol error.
func (c *Conn) Request(command string, headers Headers, body []byte) (*Frame, error) {
	if c.closed {
		return nil, ErrClosed
	}

	rid := c.nextReceiptID()
	hs := make(Headers, 0, len(headers)+1)
	hs = hs.Add(protocol.HdrReceipt, rid)
	hs = append(hs, headers...)

	if err := c.writeFrame(frame.New(command, hs, body)); err != nil {
		return nil, err
	}

	reply, err := c.readNonMessage()
	if err != nil {
		return nil, err
	}

	if reply.Command != protocol.CmdReceipt {
		return nil, newProtocolError(HintReconnect, reply, fmt.Sprintf("unexpected %s while awaiting receipt for %s", reply.Command, command))
	}
	if got, _ := reply.Header(protocol.HdrReceiptID); got != rid {
		return nil, newProtocolError(HintReconnect, reply, fmt.Sprintf("receipt-id mismatch: got %q, want %q", got, rid))
	}

	c.metrics.ReceiptMatched()
	return reply, nil
}

// Disconnect sends DISCONNECT and closes the transport. It is idempotent:
// calling it on a closed connection succeeds without touching the wire.
// Connection-kind errors during teardown are swallowed; the intent is
// already to close, and the peer may hang up first.
func (c *Conn) Disconnect() error {
	if c.closed {
		return nil
	}

	if err := c.writeFrame(frame.New(protocol.CmdDisconnect, nil, nil)); err != nil {
		if se, ok := AsError(err); !ok || !isConnectionKind(se.Kind) {
			return err
		}
	}

	c.transport.Close()
	c.closed = true
	c.metrics.ConnectionClosed()
	c.log.Debug("disconnected")
	return nil
}

// Transactions returns the live transaction ids in lexicographic order.
func (c *Conn) Transactions() []string {
	ids := make([]string, 0, len(c.transactions))
	for id := range c.transactions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
