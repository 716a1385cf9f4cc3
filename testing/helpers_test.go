package testing

import (
	"testing"

	"github.com/zoobzio/xform"
)

func TestRequest(t *testing.T) {
	req := Request("baz.qux", `"x"`)
	if string(req.Data) != Document {
		t.Error("Request() should carry the fixture document")
	}
	if req.Path != "baz.qux" || req.Value != `"x"` {
		t.Errorf("Request() = %+v", req)
	}
}

func TestAssertRaw(t *testing.T) {
	AssertRaw(t, Document, "baz.qux", `"quux"`)
	AssertRaw(t, Document, "bool", "true")
}

func TestAssertValid(t *testing.T) {
	AssertValid(t, Document)
}

func TestCountingHasher(t *testing.T) {
	h := NewCountingHasher(xform.SHA256Hasher())

	want, _ := xform.SHA256Hasher().Hash([]byte("quux"))
	got, err := h.Hash([]byte("quux"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	if got != want {
		t.Errorf("Hash() = %q, want %q", got, want)
	}

	_, _ = h.Hash([]byte("quux"))
	if h.Calls() != 2 {
		t.Errorf("Calls() = %d, want 2", h.Calls())
	}
}
