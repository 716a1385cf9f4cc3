// Package testing provides test utilities for xform.
package testing

import (
	"sync/atomic"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/zoobzio/xform"
)

// Document is the canonical fixture document.
const Document = `{
    "foo": "bar",
    "baz": {
        "qux": "quux"
    },
    "recipient": "tledwichb9@wsj.com",
    "bool": true
}`

// Request returns a Request against Document.
func Request(path, value string) *xform.Request {
	return xform.NewRequest([]byte(Document), path, value)
}

// AssertRaw fails tb unless the value at path in doc is exactly raw.
func AssertRaw(tb testing.TB, doc, path, raw string) {
	tb.Helper()
	res := gjson.Get(doc, path)
	if !res.Exists() {
		tb.Fatalf("path %q not found in %s", path, doc)
	}
	if res.Raw != raw {
		tb.Errorf("%s = %s, want %s", path, res.Raw, raw)
	}
}

// AssertValid fails tb unless doc is valid JSON.
func AssertValid(tb testing.TB, doc string) {
	tb.Helper()
	if !gjson.Valid(doc) {
		tb.Errorf("document is not valid JSON: %s", doc)
	}
}

// CountingHasher wraps a Hasher and counts calls.
type CountingHasher struct {
	xform.Hasher
	calls atomic.Int64
}

// NewCountingHasher wraps h.
func NewCountingHasher(h xform.Hasher) *CountingHasher {
	return &CountingHasher{Hasher: h}
}

// Hash delegates to the wrapped hasher.
func (c *CountingHasher) Hash(plaintext []byte) (string, error) {
	c.calls.Add(1)
	return c.Hasher.Hash(plaintext)
}

// Calls returns how many times Hash was called.
func (c *CountingHasher) Calls() int64 {
	return c.calls.Load()
}
