package stomp

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetricsCollector exposes client counters through a prometheus
// registry. Frame counters are labelled by command.
type PrometheusMetricsCollector struct {
	connectionsCreated prometheus.Counter
	connectionsClosed  prometheus.Counter
	connectionErrors   prometheus.Counter

	framesWritten *prometheus.CounterVec
	framesRead    *prometheus.CounterVec

	messagesBuffered  prometheus.Counter
	messagesDelivered prometheus.Counter
	messagesDropped   prometheus.Counter

	receiptsMatched prometheus.Counter

	transactionsBegun     prometheus.Counter
	transactionsCommitted prometheus.Counter
	transactionsAborted   prometheus.Counter
}

// NewPrometheusMetricsCollector creates a collector and registers its
// metrics with the given registerer.
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	m := &PrometheusMetricsCollector{
		connectionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stomp_connections_created_total",
			Help: "Number of STOMP connections successfully established",
		}),
		connectionsClosed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stomp_connections_closed_total",
			Help: "Number of STOMP connections disconnected",
		}),
		connectionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stomp_connection_errors_total",
			Help: "Number of transport failures observed",
		}),
		framesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stomp_frames_written_total",
			Help: "Number of frames written, by command",
		}, []string{"command"}),
		framesRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stomp_frames_read_total",
			Help: "Number of frames read, by command",
		}, []string{"command"}),
		messagesBuffered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stomp_messages_buffered_total",
			Help: "Number of MESSAGE frames buffered during receipt waits",
		}),
		messagesDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stomp_messages_delivered_total",
			Help: "Number of messages handed to callers",
		}),
		messagesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stomp_messages_dropped_total",
			Help: "Number of MESSAGE frames dropped for lacking a message-id",
		}),
		receiptsMatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stomp_receipts_matched_total",
			Help: "Number of RECEIPT frames matched to requests",
		}),
		transactionsBegun: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stomp_transactions_begun_total",
			Help: "Number of transactions begun",
		}),
		transactionsCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stomp_transactions_committed_total",
			Help: "Number of transactions committed",
		}),
		transactionsAborted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stomp_transactions_aborted_total",
			Help: "Number of transactions aborted",
		}),
	}

	reg.MustRegister(
		m.connectionsCreated,
		m.connectionsClosed,
		m.connectionErrors,
		m.framesWritten,
		m.framesRead,
		m.messagesBuffered,
		m.messagesDelivered,
		m.messagesDropped,
		m.receiptsMatched,
		m.transactionsBegun,
		m.transactionsCommitted,
		m.transactionsAborted,
	)

	return m
}

func (m *PrometheusMetricsCollector) ConnectionCreated() {
	m.connectionsCreated.Inc()
}

func (m *PrometheusMetricsCollector) ConnectionClosed() {
	m.connectionsClosed.Inc()
}

func (m *PrometheusMetricsCollector) ConnectionError(err error) {
	m.connectionErrors.Inc()
}

func (m *PrometheusMetricsCollector) FrameWritten(command string) {
	m.framesWritten.WithLabelValues(command).Inc()
}

func (m *PrometheusMetricsCollector) FrameRead(command string) {
	m.framesRead.WithLabelValues(command).Inc()
}

func (m *PrometheusMetricsCollector) MessageBuffered() {
	m.messagesBuffered.Inc()
}

func (m *PrometheusMetricsCollector) MessageDelivered() {
	m.messagesDelivered.Inc()
}

func (m *PrometheusMetricsCollector) MessageDropped() {
	m.messagesDropped.Inc()
}

func (m *PrometheusMetricsCollector) ReceiptMatched() {
	m.receiptsMatched.Inc()
}

func (m *PrometheusMetricsCollector) TransactionBegun() {
	m.transactionsBegun.Inc()
}

func (m *PrometheusMetricsCollector) TransactionCommitted() {
	m.transactionsCommitted.Inc()
}

func (m *PrometheusMetricsCollector) TransactionAborted() {
	m.transactionsAborted.Inc()
}
