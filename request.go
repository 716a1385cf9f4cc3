package xform

import "unicode/utf8"

// Request is the input to every transformation.
// Transformations never modify a Request; they return a new document.
type Request struct {
	Data  []byte // JSON document
	Path  string // gjson path, e.g. "baz.qux"
	Value string // replacement literal, used by Overwrite only
}

// NewRequest builds a Request holding its own copy of data.
func NewRequest(data []byte, path, value string) *Request {
	return &Request{
		Data:  append([]byte(nil), data...),
		Path:  path,
		Value: value,
	}
}

// validateRequest runs the shared precondition checks.
// Cheap shape checks run before the document is decoded or parsed.
func validateRequest(a Accessor, op Operation, req *Request, requireValue bool) error {
	if req.Path == "" {
		return newTransformError(ErrEmptyPath, op, "", nil)
	}

	if len(req.Data) == 0 {
		return newTransformError(ErrEmptyDocument, op, req.Path, nil)
	}

	if requireValue && req.Value == "" {
		return newTransformError(ErrEmptyValue, op, req.Path, nil)
	}

	if !utf8.Valid(req.Data) {
		return newTransformError(ErrInvalidEncoding, op, req.Path, nil)
	}

	doc := string(req.Data)
	if !a.Valid(doc) {
		return newTransformError(ErrInvalidDocument, op, req.Path, nil)
	}

	if !a.Exists(doc, req.Path) {
		return newTransformError(ErrPathNotFound, op, req.Path, nil)
	}

	return nil
}
