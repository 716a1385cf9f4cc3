// Package xform provides path-addressed transformations over JSON documents.
//
// Three operations rewrite exactly one value in a document and return the
// whole new document. The rest of the document is left byte-for-byte as it
// was; the input is never modified.
//
//   - Overwrite: replace the value at a path with a JSON literal
//   - Obfuscate: replace a string with a deterministic digest
//   - Mask: replace the trailing 80% of a string or number
//
// # Paths
//
// Paths use gjson syntax: dot-separated keys and array indexes.
//
//	baz.qux        {"baz":{"qux":"quux"}}
//	items.0.id     {"items":[{"id":1}]}
//	a\.b           {"a.b":true}
//
// # Basic Usage
//
//	doc := []byte(`{"recipient":"tledwichb9@wsj.com","card":4111111111}`)
//
//	out, _ := xform.Mask(xform.NewRequest(doc, "recipient", ""))
//	// {"recipient":"tled**************","card":4111111111}
//
//	out, _ = xform.Mask(xform.NewRequest(doc, "card", ""))
//	// {"recipient":"tledwichb9@wsj.com","card":4100000000}
//
//	out, _ = xform.Obfuscate(xform.NewRequest(doc, "recipient", ""))
//	// {"recipient":"sha256:…","card":4111111111}
//
//	out, _ = xform.Overwrite(xform.NewRequest(doc, "card", `"redacted"`))
//	// {"recipient":"tledwichb9@wsj.com","card":"redacted"}
//
// # Validation
//
// Every operation checks its request in this order and stops at the first
// failure: empty path, empty document, empty value (Overwrite only),
// invalid UTF-8, invalid JSON, path not found. All failures are
// *TransformError values wrapping a sentinel such as ErrPathNotFound.
//
// # Masking
//
// For content of L characters, round(0.8*L) trailing characters are
// replaced. Strings use '*' and remain quoted; numbers use '0' and remain
// bare.
//
//	"quux"                 → "q***"
//	"tledwichb9@wsj.com"   → "tled**************"
//	12345                  → 10000
//
// # Obfuscation
//
// Only strings can be obfuscated. The replacement is "<algo>:<hex digest>"
// of the unquoted content. Digests are unsalted and deterministic:
//
//   - sha256 (default)
//   - sha512
//   - blake2b (BLAKE2b-256)
//   - sha3 (SHA3-256)
//
// Select an algorithm with Use(algo) or Transformer.SetDigest.
//
// # Signals
//
// Operations emit capitan signals on start and completion. Values never
// appear in signal fields.
package xform

import "context"

// Overwrite replaces the value at req.Path with the literal req.Value using
// the default transformer.
func Overwrite(req *Request) (string, error) {
	t, err := Use(HashSHA256)
	if err != nil {
		return "", err
	}
	return t.Overwrite(context.Background(), req)
}

// Obfuscate replaces the string at req.Path with its SHA-256 digest using
// the default transformer.
func Obfuscate(req *Request) (string, error) {
	t, err := Use(HashSHA256)
	if err != nil {
		return "", err
	}
	return t.Obfuscate(context.Background(), req)
}

// Mask masks the string or number at req.Path using the default transformer.
func Mask(req *Request) (string, error) {
	t, err := Use(HashSHA256)
	if err != nil {
		return "", err
	}
	return t.Mask(context.Background(), req)
}
