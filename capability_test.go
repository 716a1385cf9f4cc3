package xform

import "testing"

func TestIsValidHashAlgo(t *testing.T) {
	tests := []struct {
		algo HashAlgo
		want bool
	}{
		{HashSHA256, true},
		{HashSHA512, true},
		{HashBLAKE2b, true},
		{HashSHA3, true},
		{"argon2", false},
		{"md5", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			if got := IsValidHashAlgo(tt.algo); got != tt.want {
				t.Errorf("IsValidHashAlgo(%q) = %v, want %v", tt.algo, got, tt.want)
			}
		})
	}
}

func TestHashAlgos(t *testing.T) {
	algos := HashAlgos()
	if len(algos) != len(validHashAlgos) {
		t.Fatalf("HashAlgos() returned %d algorithms, want %d", len(algos), len(validHashAlgos))
	}
	if algos[0] != HashSHA256 {
		t.Errorf("HashAlgos()[0] = %q, want %q", algos[0], HashSHA256)
	}
	for _, algo := range algos {
		if !IsValidHashAlgo(algo) {
			t.Errorf("HashAlgos() contains unknown algorithm %q", algo)
		}
	}
}
