package stomp

import (
	"io"
	"strings"
	"testing"
)

// TestErrorFormatting tests the error string and cause chain
func TestErrorFormatting(t *testing.T) {
	e := newConnectionError(HintReconnect, KindClosed, "connection closed during write", io.ErrClosedPipe)

	msg := e.Error()
	for _, want := range []string{"closed", "reconnect", io.ErrClosedPipe.Error()} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, should contain %q", msg, want)
		}
	}

	if e.Unwrap() != io.ErrClosedPipe {
		t.Errorf("Unwrap() = %v, want %v", e.Unwrap(), io.ErrClosedPipe)
	}
}

// TestHintAndKindStrings tests enum rendering
func TestHintAndKindStrings(t *testing.T) {
	hints := map[Hint]string{
		HintAbort:     "abort",
		HintReconnect: "reconnect",
		HintRetry:     "retry",
	}
	for h, want := range hints {
		if h.String() != want {
			t.Errorf("Hint(%d).String() = %q, want %q", h, h.String(), want)
		}
	}

	kinds := map[Kind]string{
		KindClosed:            "closed",
		KindConnectionRefused: "connection refused",
		KindAccessRefused:     "access refused",
		KindProtocol:          "protocol error",
		KindNode:              "node error",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

// TestAsError tests unpacking through wrapped chains
func TestAsError(t *testing.T) {
	if _, ok := AsError(io.EOF); ok {
		t.Error("AsError matched a plain error")
	}

	se, ok := AsError(ErrClosed)
	if !ok || se != ErrClosed {
		t.Errorf("AsError(ErrClosed) = %v, %v", se, ok)
	}
}

// TestConnectionKindClassification tests the teardown swallow predicate
func TestConnectionKindClassification(t *testing.T) {
	for _, k := range []Kind{KindClosed, KindConnectionRefused, KindAccessRefused} {
		if !isConnectionKind(k) {
			t.Errorf("isConnectionKind(%s) = false, want true", k)
		}
	}
	for _, k := range []Kind{KindProtocol, KindNode} {
		if isConnectionKind(k) {
			t.Errorf("isConnectionKind(%s) = true, want false", k)
		}
	}
}
