package stomp

import (
	"io"
	"syscall"
	"testing"

	"github.com/israelio/stomp-go-client/internal/frame"
)

const connectedFrame = "CONNECTED\n\n\x00\n"

// newTestConn connects over a scripted transport that first serves a
// CONNECTED frame and then the given script. The CONNECT bytes are
// discarded from the capture so tests assert on the frames they drive.
func newTestConn(t *testing.T, script string, opts ...FactoryOption) (*Conn, *ScriptTransport) {
	t.Helper()

	st := NewScriptTransport(connectedFrame + script)
	cf := NewConnectionFactory("localhost:61613", append([]FactoryOption{WithDialer(ScriptDialer(st))}, opts...)...)

	conn, err := cf.Connect()
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	st.ResetWritten()

	return conn, st
}

// TestConnectHandshake tests the CONNECT exchange wire form
func TestConnectHandshake(t *testing.T) {
	t.Run("with credentials", func(t *testing.T) {
		st := NewScriptTransport(connectedFrame)
		cf := NewConnectionFactory("localhost:61613",
			WithDialer(ScriptDialer(st)),
			WithCredentials("u", "p"),
		)

		conn, err := cf.Connect()
		if err != nil {
			t.Fatalf("Connect failed: %v", err)
		}

		if got, want := st.Written(), "CONNECT\nlogin: u\npasscode: p\n\n\x00\n"; got != want {
			t.Errorf("wire bytes:\ngot  %q\nwant %q", got, want)
		}
		if conn.Closed() {
			t.Error("connection reported closed after successful handshake")
		}
	})

	t.Run("without credentials", func(t *testing.T) {
		st := NewScriptTransport(connectedFrame)
		cf := NewConnectionFactory("localhost:61613", WithDialer(ScriptDialer(st)))

		if _, err := cf.Connect(); err != nil {
			t.Fatalf("Connect failed: %v", err)
		}

		if got, want := st.Written(), "CONNECT\n\n\x00\n"; got != want {
			t.Errorf("wire bytes:\ngot  %q\nwant %q", got, want)
		}
	})

	t.Run("extra headers appended after credentials", func(t *testing.T) {
		st := NewScriptTransport(connectedFrame)
		cf := NewConnectionFactory("localhost:61613",
			WithDialer(ScriptDialer(st)),
			WithCredentials("u", "p"),
			WithHeader("prefetch", "10"),
		)

		if _, err := cf.Connect(); err != nil {
			t.Fatalf("Connect failed: %v", err)
		}

		if got, want := st.Written(), "CONNECT\nlogin: u\npasscode: p\nprefetch: 10\n\n\x00\n"; got != want {
			t.Errorf("wire bytes:\ngot  %q\nwant %q", got, want)
		}
	})

	t.Run("messages arriving before CONNECTED are buffered", func(t *testing.T) {
		st := NewScriptTransport("MESSAGE\nmessage-id: m0\n\nearly\x00\n" + connectedFrame)
		cf := NewConnectionFactory("localhost:61613", WithDialer(ScriptDialer(st)))

		conn, err := cf.Connect()
		if err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
		if conn.Pending() != 1 {
			t.Errorf("Pending: got %d, want 1", conn.Pending())
		}

		m, err := conn.ReceiveMessage()
		if err != nil {
			t.Fatalf("ReceiveMessage failed: %v", err)
		}
		if m.ID != "m0" || string(m.Body) != "early" {
			t.Errorf("message: got id=%q body=%q", m.ID, m.Body)
		}
	})

	t.Run("access refused", func(t *testing.T) {
		st := NewScriptTransport("ERROR\nmessage: access_refused\n\n\x00\n")
		cf := NewConnectionFactory("localhost:61613", WithDialer(ScriptDialer(st)))

		_, err := cf.Connect()
		se, ok := AsError(err)
		if !ok {
			t.Fatalf("expected *stomp.Error, got %v", err)
		}
		if se.Hint != HintAbort || se.Kind != KindAccessRefused {
			t.Errorf("error: got hint=%s kind=%s, want abort/access refused", se.Hint, se.Kind)
		}
		if !st.IsClosed() {
			t.Error("transport left open after refused handshake")
		}
	})

	t.Run("unexpected reply frame", func(t *testing.T) {
		st := NewScriptTransport("RECEIPT\nreceipt-id: receipt-99\n\n\x00\n")
		cf := NewConnectionFactory("localhost:61613", WithDialer(ScriptDialer(st)))

		_, err := cf.Connect()
		se, ok := AsError(err)
		if !ok {
			t.Fatalf("expected *stomp.Error, got %v", err)
		}
		if se.Hint != HintReconnect || se.Kind != KindProtocol {
			t.Errorf("error: got hint=%s kind=%s, want reconnect/protocol error", se.Hint, se.Kind)
		}
		if se.Frame == nil || se.Frame.Command != "RECEIPT" {
			t.Errorf("error frame: got %v, want the RECEIPT frame", se.Frame)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		cf := NewConnectionFactory("localhost:61613", WithDialer(func(string) (Transport, error) {
			return nil, syscall.ECONNREFUSED
		}))

		_, err := cf.Connect()
		se, ok := AsError(err)
		if !ok {
			t.Fatalf("expected *stomp.Error, got %v", err)
		}
		if se.Hint != HintAbort || se.Kind != KindConnectionRefused {
			t.Errorf("error: got hint=%s kind=%s, want abort/connection refused", se.Hint, se.Kind)
		}
	})

	t.Run("other dial errors propagate untyped", func(t *testing.T) {
		cf := NewConnectionFactory("localhost:61613", WithDialer(func(string) (Transport, error) {
			return nil, io.ErrUnexpectedEOF
		}))

		_, err := cf.Connect()
		if err == nil {
			t.Fatal("expected error")
		}
		if _, ok := AsError(err); ok {
			t.Errorf("dial error unexpectedly typed: %v", err)
		}
	})
}

// TestDisconnect tests teardown semantics
func TestDisconnect(t *testing.T) {
	t.Run("writes one DISCONNECT and closes", func(t *testing.T) {
		conn, st := newTestConn(t, "")

		if err := conn.Disconnect(); err != nil {
			t.Fatalf("Disconnect failed: %v", err)
		}
		if got, want := st.Written(), "DISCONNECT\n\n\x00\n"; got != want {
			t.Errorf("wire bytes:\ngot  %q\nwant %q", got, want)
		}
		if !conn.Closed() {
			t.Error("Closed() = false after disconnect")
		}
		if !st.IsClosed() {
			t.Error("transport left open after disconnect")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		conn, st := newTestConn(t, "")

		if err := conn.Disconnect(); err != nil {
			t.Fatalf("first Disconnect failed: %v", err)
		}
		if err := conn.Disconnect(); err != nil {
			t.Fatalf("second Disconnect failed: %v", err)
		}
		if got, want := st.Written(), "DISCONNECT\n\n\x00\n"; got != want {
			t.Errorf("second disconnect wrote additional bytes: %q", got)
		}
	})

	t.Run("swallows write failure during teardown", func(t *testing.T) {
		conn, st := newTestConn(t, "")
		ft := &failingTransport{st}
		conn.transport = ft
		conn.writer = frame.NewWriter(ft)

		if err := conn.Disconnect(); err != nil {
			t.Fatalf("Disconnect failed: %v", err)
		}
		if !conn.Closed() {
			t.Error("Closed() = false after failed teardown")
		}
	})

	t.Run("operations after disconnect fail fast", func(t *testing.T) {
		conn, st := newTestConn(t, "")
		if err := conn.Disconnect(); err != nil {
			t.Fatalf("Disconnect failed: %v", err)
		}
		st.ResetWritten()

		if err := conn.Send("q1", []byte("hi")); err != ErrClosed {
			t.Errorf("Send after disconnect: got %v, want ErrClosed", err)
		}
		if _, err := conn.ReceiveMessage(); err != ErrClosed {
			t.Errorf("ReceiveMessage after disconnect: got %v, want ErrClosed", err)
		}
		if _, err := conn.Begin(); err != ErrClosed {
			t.Errorf("Begin after disconnect: got %v, want ErrClosed", err)
		}
		if st.Written() != "" {
			t.Errorf("closed connection touched the wire: %q", st.Written())
		}
	})
}

// failingTransport fails every write
type failingTransport struct {
	*ScriptTransport
}

func (f *failingTransport) WriteString(string) error { return io.ErrClosedPipe }
func (f *failingTransport) WriteByte(byte) error     { return io.ErrClosedPipe }
