package xform_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/xform"
)

func TestUse_Caching(t *testing.T) {
	xform.Reset()

	t1, err := xform.Use(xform.HashSHA256)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	t2, err := xform.Use(xform.HashSHA256)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if t1 != t2 {
		t.Error("Use() should return cached transformer")
	}
}

func TestUse_DifferentAlgorithms(t *testing.T) {
	xform.Reset()

	t1, _ := xform.Use(xform.HashSHA256)
	t2, _ := xform.Use(xform.HashBLAKE2b)

	if t1 == t2 {
		t.Error("different algorithms should return different transformers")
	}
	if t2.Digest() != xform.HashBLAKE2b {
		t.Errorf("Digest() = %q, want %q", t2.Digest(), xform.HashBLAKE2b)
	}
}

func TestUse_UnknownAlgorithm(t *testing.T) {
	_, err := xform.Use("md5")
	if !errors.Is(err, xform.ErrMissingHasher) {
		t.Errorf("Use(md5) error = %v, want ErrMissingHasher", err)
	}
}

func TestReset(t *testing.T) {
	t1, _ := xform.Use(xform.HashSHA256)

	xform.Reset()

	t2, _ := xform.Use(xform.HashSHA256)

	if t1 == t2 {
		t.Error("Reset() should clear cache, new transformer expected")
	}
}
