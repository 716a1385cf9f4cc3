package xform

import (
	"context"
	"sync"
	"time"
)

// Transformer applies path-addressed transformations to JSON documents.
//
// Transformers are safe for concurrent use. Configuration methods (SetAccessor,
// SetHasher, SetDigest) may be called at any time; each operation sees a
// consistent configuration for its whole duration.
type Transformer struct {
	mu       sync.RWMutex
	accessor Accessor
	hashers  map[HashAlgo]Hasher
	digest   HashAlgo
}

// NewTransformer creates a Transformer with the JSON accessor, the builtin
// hashers, and SHA-256 selected for obfuscation.
func NewTransformer() *Transformer {
	t := &Transformer{
		accessor: JSONAccessor(),
		hashers:  builtinHashers(),
		digest:   HashSHA256,
	}

	emitTransformerCreated(context.Background(), t.digest)
	return t
}

// SetAccessor replaces the document accessor.
// Returns the transformer for chaining. Safe for concurrent use.
func (t *Transformer) SetAccessor(a Accessor) *Transformer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.accessor = a
	return t
}

// SetHasher registers a hasher for the given algorithm.
// Returns the transformer for chaining. Safe for concurrent use.
func (t *Transformer) SetHasher(algo HashAlgo, h Hasher) *Transformer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hashers[algo] = h
	return t
}

// SetDigest selects the algorithm Obfuscate uses.
// Returns the transformer for chaining. Safe for concurrent use.
func (t *Transformer) SetDigest(algo HashAlgo) *Transformer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.digest = algo
	return t
}

// Digest returns the algorithm Obfuscate uses.
func (t *Transformer) Digest() HashAlgo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.digest
}

// Overwrite replaces the value at req.Path with the literal req.Value,
// whatever the existing value's kind. The literal is inserted as given:
// pass `"text"` for a string, `true` or `42` for bare literals.
func (t *Transformer) Overwrite(ctx context.Context, req *Request) (string, error) {
	return t.run(ctx, OpOverwrite, req, func(a Accessor, _ Value) (string, error) {
		if !a.Valid(req.Value) {
			return "", newTransformError(ErrInvalidValue, OpOverwrite, req.Path, nil)
		}
		return req.Value, nil
	})
}

// Obfuscate replaces the string at req.Path with "<algo>:<hex digest>" of
// its unquoted content. Only strings can be obfuscated.
func (t *Transformer) Obfuscate(ctx context.Context, req *Request) (string, error) {
	return t.run(ctx, OpObfuscate, req, func(_ Accessor, v Value) (string, error) {
		if v.Kind != KindString {
			return "", kindError(OpObfuscate, req.Path, v.Kind, "string")
		}

		h, ok := t.hashers[t.digest]
		if !ok {
			return "", newTransformError(ErrMissingHasher, OpObfuscate, req.Path, nil)
		}

		sum, err := h.Hash([]byte(v.Text))
		if err != nil {
			return "", newTransformError(ErrHash, OpObfuscate, req.Path, err)
		}

		return `"` + string(t.digest) + ":" + sum + `"`, nil
	})
}

// Mask replaces the trailing 80% of the characters of the value at req.Path.
// Strings are masked with '*' and stay strings; numbers are masked with '0'
// and are written back bare. Any other kind fails.
func (t *Transformer) Mask(ctx context.Context, req *Request) (string, error) {
	return t.run(ctx, OpMask, req, func(_ Accessor, v Value) (string, error) {
		masked, ok := maskLiteral(v)
		if !ok {
			return "", kindError(OpMask, req.Path, v.Kind, "string or number")
		}
		return masked, nil
	})
}

// replaceFunc computes the replacement literal for the current value.
type replaceFunc func(a Accessor, v Value) (string, error)

// run validates req, reads the current value, computes its replacement and
// writes it back. The input document is never modified.
func (t *Transformer) run(ctx context.Context, op Operation, req *Request, replace replaceFunc) (string, error) {
	if req == nil {
		req = &Request{}
	}

	start := time.Now()
	emitStart(ctx, op, req.Path)

	var kind Kind
	var retDoc string
	var retErr error
	defer func() {
		emitComplete(ctx, op, req.Path, kind, len(retDoc), time.Since(start), retErr)
	}()

	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := validateRequest(t.accessor, op, req, op == OpOverwrite); err != nil {
		retErr = err
		return "", retErr
	}

	doc := string(req.Data)
	v := t.accessor.Get(doc, req.Path)
	kind = v.Kind

	raw, err := replace(t.accessor, v)
	if err != nil {
		retErr = err
		return "", retErr
	}

	retDoc, err = t.accessor.SetRaw(doc, req.Path, raw)
	if err != nil {
		retDoc = ""
		retErr = newTransformError(ErrWrite, op, req.Path, err)
		return "", retErr
	}

	return retDoc, nil
}
