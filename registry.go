package xform

import (
	"fmt"
	"sync"
)

var (
	registry   = make(map[HashAlgo]*Transformer)
	registryMu sync.RWMutex
)

// Use returns a cached transformer that obfuscates with algo, or builds one.
// Unknown algorithms fail with ErrMissingHasher.
func Use(algo HashAlgo) (*Transformer, error) {
	if !IsValidHashAlgo(algo) {
		return nil, fmt.Errorf("%w for algorithm %q", ErrMissingHasher, algo)
	}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[algo]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[algo]; ok {
		return cached, nil
	}

	t := NewTransformer().SetDigest(algo)
	registry[algo] = t
	return t, nil
}

// Reset clears the transformer registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[HashAlgo]*Transformer)
}
