package frame

import (
	"fmt"

	"github.com/israelio/stomp-go-client/internal/protocol"
)

// ByteSink is the write half of the transport capability the writer
// consumes.
type ByteSink interface {
	WriteString(s string) error
	WriteByte(b byte) error
	Flush() error
}

// Writer writes STOMP frames to a connection. The NUL+newline terminator is
// written regardless of the peer's framing convention: both conventions
// accept it.
type Writer struct {
	dst ByteSink
}

// NewWriter creates a new frame writer
func NewWriter(dst ByteSink) *Writer {
	return &Writer{dst: dst}
}

// WriteFrame writes a single frame and flushes the stream. Header names and
// values are emitted as given, in order.
func (fw *Writer) WriteFrame(f *Frame) error {
	if err := fw.dst.WriteString(f.Command); err != nil {
		return fmt.Errorf("write frame command: %w", err)
	}
	if err := fw.dst.WriteByte(protocol.FrameNewline); err != nil {
		return fmt.Errorf("write frame command: %w", err)
	}

	for _, h := range f.Headers {
		if err := fw.dst.WriteString(h.Name + protocol.HeaderSeparator + h.Value); err != nil {
			return fmt.Errorf("write frame header %s: %w", h.Name, err)
		}
		if err := fw.dst.WriteByte(protocol.FrameNewline); err != nil {
			return fmt.Errorf("write frame header %s: %w", h.Name, err)
		}
	}

	if err := fw.dst.WriteByte(protocol.FrameNewline); err != nil {
		return fmt.Errorf("write frame separator: %w", err)
	}

	if len(f.Body) > 0 {
		if err := fw.dst.WriteString(string(f.Body)); err != nil {
			return fmt.Errorf("write frame body: %w", err)
		}
	}

	if err := fw.dst.WriteByte(protocol.FrameNull); err != nil {
		return fmt.Errorf("write frame terminator: %w", err)
	}
	if err := fw.dst.WriteByte(protocol.FrameNewline); err != nil {
		return fmt.Errorf("write frame terminator: %w", err)
	}

	if err := fw.dst.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}

	return nil
}
