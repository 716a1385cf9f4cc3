package xform

// Kind is the structural type of a value addressed by a path.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindObject Kind = "object"
	KindArray  Kind = "array"
	KindNull   Kind = "null"
)

// Value is a value read from a document at a path.
type Value struct {
	// Kind is the structural type of the value.
	Kind Kind

	// Raw is the value exactly as it appears in the document.
	// String values include their surrounding quotes and escapes.
	Raw string

	// Text is the unquoted, unescaped content for strings and Raw for
	// every other kind. Masking and hashing operate on Text.
	Text string
}

// Accessor reads and patches JSON documents by path.
type Accessor interface {
	// Valid reports whether doc is syntactically valid JSON.
	Valid(doc string) bool

	// Exists reports whether path resolves to a value in doc.
	Exists(doc, path string) bool

	// Get returns the value at path. The zero Value is returned when the
	// path does not exist.
	Get(doc, path string) Value

	// SetRaw replaces the bytes of the value at path with raw, leaving the
	// rest of doc byte-for-byte unchanged. It fails when path does not
	// resolve to a single settable location.
	SetRaw(doc, path, raw string) (string, error)
}
