package protocol

import "strings"

// Header is a single STOMP header. Order matters on the wire, so headers
// are kept as a slice of pairs rather than a map; duplicates are legal and
// preserved.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered sequence of headers.
type Headers []Header

// Get returns the value of the first header with the given name.
func (hs Headers) Get(name string) (string, bool) {
	for _, h := range hs {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// Contains reports whether a header with the given name is present.
func (hs Headers) Contains(name string) bool {
	_, ok := hs.Get(name)
	return ok
}

// Add appends a header and returns the extended sequence.
func (hs Headers) Add(name, value string) Headers {
	return append(hs, Header{Name: name, Value: value})
}

// Clone returns a copy of the sequence that shares no backing storage with
// the original.
func (hs Headers) Clone() Headers {
	if hs == nil {
		return nil
	}
	out := make(Headers, len(hs))
	copy(out, hs)
	return out
}

// ParseHeaderLine splits a raw header line at the first colon. The name is
// lowercased and the value stripped of surrounding whitespace, matching the
// receive-side normalization rules. A line without a colon yields the whole
// line as the name with an empty value.
func ParseHeaderLine(line string) Header {
	name, value := line, ""
	if i := strings.IndexByte(line, ':'); i >= 0 {
		name, value = line[:i], line[i+1:]
	}
	return Header{
		Name:  strings.ToLower(strings.TrimSpace(name)),
		Value: strings.TrimSpace(value),
	}
}
