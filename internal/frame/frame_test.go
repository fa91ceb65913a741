package frame

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/israelio/stomp-go-client/internal/protocol"
)

// memSource is an in-memory ByteSource over a fixed byte script
type memSource struct {
	data []byte
	pos  int
}

func newMemSource(data string) *memSource {
	return &memSource{data: []byte(data)}
}

func (s *memSource) ReadLine() (string, error) {
	if s.pos >= len(s.data) {
		return "", io.EOF
	}
	i := bytes.IndexByte(s.data[s.pos:], '\n')
	if i < 0 {
		return "", io.ErrUnexpectedEOF
	}
	line := string(s.data[s.pos : s.pos+i])
	s.pos += i + 1
	return line, nil
}

func (s *memSource) ReadByte() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

func (s *memSource) ReadFull(p []byte) error {
	if s.pos+len(p) > len(s.data) {
		return io.ErrUnexpectedEOF
	}
	copy(p, s.data[s.pos:])
	s.pos += len(p)
	return nil
}

// memSink is an in-memory ByteSink capturing written bytes
type memSink struct {
	buf     bytes.Buffer
	flushes int
}

func (s *memSink) WriteString(str string) error { s.buf.WriteString(str); return nil }
func (s *memSink) WriteByte(b byte) error       { s.buf.WriteByte(b); return nil }
func (s *memSink) Flush() error                 { s.flushes++; return nil }

// TestFrameAccessors tests frame construction and header lookup
func TestFrameAccessors(t *testing.T) {
	f := New(protocol.CmdMessage, protocol.Headers{
		{Name: "message-id", Value: "m1"},
		{Name: "destination", Value: "/queue/a"},
	}, []byte("hello"))

	if !f.IsMessage() {
		t.Error("IsMessage() = false, want true")
	}

	v, ok := f.Header("message-id")
	if !ok || v != "m1" {
		t.Errorf("Header(message-id) = %q, %v", v, ok)
	}

	if _, ok := f.Header("receipt-id"); ok {
		t.Error("Header(receipt-id) found, want absent")
	}

	if !strings.Contains(f.String(), "MESSAGE") {
		t.Errorf("String() = %q, should contain command", f.String())
	}
}
