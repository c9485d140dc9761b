package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

// capturingHandler records everything reported to it.
type capturingHandler struct {
	errs   []*Error
	panics []*PanicError
}

func (h *capturingHandler) HandleError(err *Error)      { h.errs = append(h.errs, err) }
func (h *capturingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

// TestError_Format verifies the rendered message carries op, kind and cause.
func TestError_Format(t *testing.T) {
	cause := stderrors.New("bad value")
	err := E("timeline.Load", KindConfig, cause)

	msg := err.Error()
	if !strings.Contains(msg, "timeline.Load") || !strings.Contains(msg, "config") || !strings.Contains(msg, "bad value") {
		t.Errorf("message %q missing op, kind or cause", msg)
	}
	if !stderrors.Is(err, cause) {
		t.Error("Unwrap chain broken")
	}
	if err.Timestamp.IsZero() {
		t.Error("E left timestamp zero")
	}
}

// TestKind_String verifies the kind names.
func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KindUnknown: "unknown",
		KindConfig:  "config",
		KindParsing: "parsing",
		KindInit:    "init",
		KindPanic:   "panic",
		Kind(99):    "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

// TestReport_UsesConfiguredHandler verifies reports reach the handler set
// with SetHandler, and that nil restores the default.
func TestReport_UsesConfiguredHandler(t *testing.T) {
	h := &capturingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(E("op", KindInit, stderrors.New("x")))
	Report(nil) // ignored
	if len(h.errs) != 1 {
		t.Fatalf("handler saw %d errors, want 1", len(h.errs))
	}

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) left %T, want *LogHandler", DefaultHandler)
	}
}

// TestRecover verifies the deferred helper reports the panic value with a
// stack trace and swallows the panic.
func TestRecover(t *testing.T) {
	h := &capturingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("handler saw %d panics, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "test.op" || p.Value != "boom" {
		t.Errorf("panic = %q/%v, want test.op/boom", p.Op, p.Value)
	}
	if p.StackTrace == "" {
		t.Error("panic reported without stack trace")
	}
	if !strings.Contains(p.Error(), "test.op") {
		t.Errorf("message %q missing op", p.Error())
	}
}
