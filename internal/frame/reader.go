package frame

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/israelio/stomp-go-client/internal/protocol"
)

// ByteSource is the read half of the transport capability the reader
// consumes: line, single-byte and exact-length reads over the peer stream.
type ByteSource interface {
	// ReadLine reads up to and including the next newline, returning the
	// line without its trailing newline.
	ReadLine() (string, error)
	// ReadByte reads a single byte.
	ReadByte() (byte, error)
	// ReadFull reads exactly len(p) bytes into p.
	ReadFull(p []byte) error
}

// Reader reads STOMP frames from a connection.
//
// The terminator convention is fixed per connection: when eofNL is true the
// peer terminates frames with NUL+newline (ActiveMQ, ocamlmq), otherwise
// with a bare NUL (the RabbitMQ STOMP gateway).
type Reader struct {
	src   ByteSource
	eofNL bool
}

// NewReader creates a new frame reader
func NewReader(src ByteSource, eofNL bool) *Reader {
	return &Reader{
		src:   src,
		eofNL: eofNL,
	}
}

// ReadFrame reads a single frame from the connection. Incoming header names
// are lowercased and values stripped of surrounding whitespace; duplicate
// headers are preserved in wire order.
func (fr *Reader) ReadFrame() (*Frame, error) {
	command, err := fr.readCommand()
	if err != nil {
		return nil, fmt.Errorf("read frame command: %w", err)
	}

	headers, err := fr.readHeaders()
	if err != nil {
		return nil, fmt.Errorf("read frame headers: %w", err)
	}

	body, err := fr.readBody(headers)
	if err != nil {
		return nil, fmt.Errorf("read frame body: %w", err)
	}

	return &Frame{
		Command: command,
		Headers: headers,
		Body:    body,
	}, nil
}

// readCommand reads the command line, skipping any blank lines left over
// from a previous frame's terminator.
func (fr *Reader) readCommand() (string, error) {
	for {
		line, err := fr.src.ReadLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// readHeaders reads header lines until the blank separator line.
func (fr *Reader) readHeaders() (protocol.Headers, error) {
	var headers protocol.Headers
	for {
		line, err := fr.src.ReadLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return headers, nil
		}
		headers = append(headers, protocol.ParseHeaderLine(line))
	}
}

// readBody reads the frame body and consumes the frame terminator.
//
// With a content-length header, exactly that many bytes are read and the
// terminator is discarded without inspection: one trailing line in eofNL
// mode, one byte otherwise. Without content-length the body runs to the
// first NUL: in eofNL mode it is rebuilt from newline-separated lines (a
// NUL ending a line ends the body at that position, and the line read has
// already consumed the trailing newline); in bare-NUL mode bytes are read
// up to the NUL.
func (fr *Reader) readBody(headers protocol.Headers) ([]byte, error) {
	if n, ok := contentLength(headers); ok {
		body := make([]byte, n)
		if n > 0 {
			if err := fr.src.ReadFull(body); err != nil {
				return nil, err
			}
		}
		if fr.eofNL {
			if _, err := fr.src.ReadLine(); err != nil {
				return nil, err
			}
		} else {
			if _, err := fr.src.ReadByte(); err != nil {
				return nil, err
			}
		}
		return body, nil
	}

	if fr.eofNL {
		var parts []string
		for {
			line, err := fr.src.ReadLine()
			if err != nil {
				return nil, err
			}
			if i := strings.IndexByte(line, protocol.FrameNull); i >= 0 {
				parts = append(parts, line[:i])
				return []byte(strings.Join(parts, "\n")), nil
			}
			parts = append(parts, line)
		}
	}

	var buf bytes.Buffer
	for {
		b, err := fr.src.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == protocol.FrameNull {
			return buf.Bytes(), nil
		}
		buf.WriteByte(b)
	}
}

// contentLength extracts a usable content-length header value. A missing,
// malformed or negative value means length-less framing.
func contentLength(headers protocol.Headers) (int, bool) {
	v, ok := headers.Get(protocol.HdrContentLength)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
