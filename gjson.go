package xform

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// jsonAccessor implements Accessor with gjson path queries.
type jsonAccessor struct{}

// JSONAccessor returns the gjson backed Accessor.
// Paths use gjson syntax: dot-separated keys, array indexes, escaped dots.
func JSONAccessor() Accessor {
	return &jsonAccessor{}
}

// Valid reports whether doc is valid JSON.
func (a *jsonAccessor) Valid(doc string) bool {
	return gjson.Valid(doc)
}

// Exists reports whether path resolves to a value in doc.
func (a *jsonAccessor) Exists(doc, path string) bool {
	return gjson.Get(doc, path).Exists()
}

// Get returns the value at path.
func (a *jsonAccessor) Get(doc, path string) Value {
	res := gjson.Get(doc, path)
	if !res.Exists() {
		return Value{}
	}

	v := Value{Kind: kindOf(res), Raw: res.Raw, Text: res.Raw}
	if v.Kind == KindString {
		v.Text = res.Str
	}
	return v
}

// SetRaw splices raw over the bytes of the value at path.
//
// Only paths that gjson resolves to one span of doc can be written. Computed
// results (counts such as "a.#", modifiers, pipes, multipaths) and multi-match
// queries such as "a.#.b" are rejected. A wildcard that matches a single key
// is written like the key itself.
func (a *jsonAccessor) SetRaw(doc, path, raw string) (string, error) {
	res := gjson.Get(doc, path)
	if !res.Exists() {
		return "", fmt.Errorf("set %q: path not found", path)
	}
	if len(res.Indexes) > 0 {
		return "", fmt.Errorf("set %q: path matches %d values", path, len(res.Indexes))
	}
	if res.Index <= 0 || !strings.HasPrefix(doc[res.Index:], res.Raw) {
		return "", fmt.Errorf("set %q: path does not address a value in the document", path)
	}

	return doc[:res.Index] + raw + doc[res.Index+len(res.Raw):], nil
}

// kindOf maps a gjson result type to a Kind.
func kindOf(res gjson.Result) Kind {
	switch res.Type {
	case gjson.String:
		return KindString
	case gjson.Number:
		return KindNumber
	case gjson.True, gjson.False:
		return KindBool
	case gjson.JSON:
		if res.IsArray() {
			return KindArray
		}
		return KindObject
	default:
		return KindNull
	}
}
