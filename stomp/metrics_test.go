package stomp

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// TestStandardMetricsThroughSession verifies counters over a scripted
// exchange
func TestStandardMetricsThroughSession(t *testing.T) {
	metrics := NewStandardMetricsCollector()

	st := NewScriptTransport(connectedFrame +
		"MESSAGE\nmessage-id: m1\n\nhello\x00\n" +
		receiptFrame(2))
	cf := NewConnectionFactory("localhost:61613",
		WithDialer(ScriptDialer(st)),
		WithMetrics(metrics),
	)

	conn, err := cf.Connect()
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if err := conn.Subscribe("/queue/a"); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if _, err := conn.ReceiveMessage(); err != nil {
		t.Fatalf("ReceiveMessage failed: %v", err)
	}
	if err := conn.Disconnect(); err != nil {
		t.Fatalf("Disconnect failed: %v", err)
	}

	snap := metrics.Snapshot()
	if snap.ConnectionsCreated != 1 || snap.ConnectionsClosed != 1 {
		t.Errorf("connections: created=%d closed=%d, want 1/1", snap.ConnectionsCreated, snap.ConnectionsClosed)
	}
	// CONNECT, SUBSCRIBE, DISCONNECT
	if snap.FramesWritten != 3 {
		t.Errorf("frames written: got %d, want 3", snap.FramesWritten)
	}
	// CONNECTED, MESSAGE, RECEIPT
	if snap.FramesRead != 3 {
		t.Errorf("frames read: got %d, want 3", snap.FramesRead)
	}
	if snap.MessagesBuffered != 1 || snap.MessagesDelivered != 1 {
		t.Errorf("messages: buffered=%d delivered=%d, want 1/1", snap.MessagesBuffered, snap.MessagesDelivered)
	}
	if snap.ReceiptsMatched != 1 {
		t.Errorf("receipts matched: got %d, want 1", snap.ReceiptsMatched)
	}
}

// TestPrometheusCollectorRegisters verifies registration and counting
func TestPrometheusCollectorRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetricsCollector(reg)

	m.ConnectionCreated()
	m.FrameWritten("SEND")
	m.FrameWritten("SEND")
	m.TransactionBegun()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}
	for _, want := range []string{
		"stomp_connections_created_total",
		"stomp_frames_written_total",
		"stomp_transactions_begun_total",
	} {
		if !found[want] {
			t.Errorf("metric family %s not gathered", want)
		}
	}
}
