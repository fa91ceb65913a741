package stomp

import (
	"sync/atomic"
)

// MetricsCollector collects metrics for STOMP client operations
type MetricsCollector interface {
	// Connection metrics
	ConnectionCreated()
	ConnectionClosed()
	ConnectionError(err error)

	// Frame metrics
	FrameWritten(command string)
	FrameRead(command string)

	// Message metrics
	MessageBuffered()
	MessageDelivered()
	MessageDropped()

	// Receipt metrics
	ReceiptMatched()

	// Transaction metrics
	TransactionBegun()
	TransactionCommitted()
	TransactionAborted()
}

// StandardMetricsCollector provides a thread-safe metrics collector
type StandardMetricsCollector struct {
	connectionsCreated atomic.Int64
	connectionsClosed  atomic.Int64
	connectionErrors   atomic.Int64

	framesWritten atomic.Int64
	framesRead    atomic.Int64

	messagesBuffered  atomic.Int64
	messagesDelivered atomic.Int64
	messagesDropped   atomic.Int64

	receiptsMatched atomic.Int64

	transactionsBegun     atomic.Int64
	transactionsCommitted atomic.Int64
	transactionsAborted   atomic.Int64
}

// NewStandardMetricsCollector creates a new standard metrics collector
func NewStandardMetricsCollector() *StandardMetricsCollector {
	return &StandardMetricsCollector{}
}

func (m *StandardMetricsCollector) ConnectionCreated() {
	m.connectionsCreated.Add(1)
}

func (m *StandardMetricsCollector) ConnectionClosed() {
	m.connectionsClosed.Add(1)
}

func (m *StandardMetricsCollector) ConnectionError(err error) {
	m.connectionErrors.Add(1)
}

func (m *StandardMetricsCollector) FrameWritten(command string) {
	m.framesWritten.Add(1)
}

func (m *StandardMetricsCollector) FrameRead(command string) {
	m.framesRead.Add(1)
}

func (m *StandardMetricsCollector) MessageBuffered() {
	m.messagesBuffered.Add(1)
}

func (m *StandardMetricsCollector) MessageDelivered() {
	m.messagesDelivered.Add(1)
}

func (m *StandardMetricsCollector) MessageDropped() {
	m.messagesDropped.Add(1)
}

func (m *StandardMetricsCollector) ReceiptMatched() {
	m.receiptsMatched.Add(1)
}

func (m *StandardMetricsCollector) TransactionBegun() {
	m.transactionsBegun.Add(1)
}

func (m *StandardMetricsCollector) TransactionCommitted() {
	m.transactionsCommitted.Add(1)
}

func (m *StandardMetricsCollector) TransactionAborted() {
	m.transactionsAborted.Add(1)
}

// MetricsSnapshot is a point-in-time view of collected counters
type MetricsSnapshot struct {
	ConnectionsCreated int64
	ConnectionsClosed  int64
	ConnectionErrors   int64

	FramesWritten int64
	FramesRead    int64

	MessagesBuffered  int64
	MessagesDelivered int64
	MessagesDropped   int64

	ReceiptsMatched int64

	TransactionsBegun     int64
	TransactionsCommitted int64
	TransactionsAborted   int64
}

// Snapshot returns the current counter values
func (m *StandardMetricsCollector) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ConnectionsCreated:    m.connectionsCreated.Load(),
		ConnectionsClosed:     m.connectionsClosed.Load(),
		ConnectionErrors:      m.connectionErrors.Load(),
		FramesWritten:         m.framesWritten.Load(),
		FramesRead:            m.framesRead.Load(),
		MessagesBuffered:      m.messagesBuffered.Load(),
		MessagesDelivered:     m.messagesDelivered.Load(),
		MessagesDropped:       m.messagesDropped.Load(),
		ReceiptsMatched:       m.receiptsMatched.Load(),
		TransactionsBegun:     m.transactionsBegun.Load(),
		TransactionsCommitted: m.transactionsCommitted.Load(),
		TransactionsAborted:   m.transactionsAborted.Load(),
	}
}
