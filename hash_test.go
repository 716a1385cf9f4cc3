package xform

import "testing"

func TestHashers_KnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		h     Hasher
		input string
		want  string
	}{
		{"sha256 abc", SHA256Hasher(), "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha256 quux", SHA256Hasher(), "quux", "053057fda9a935f2d4fa8c7bc62a411a26926e00b491c07c1b2ec1909078a0a2"},
		{"sha256 empty", SHA256Hasher(), "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha512 abc", SHA512Hasher(), "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{"blake2b abc", BLAKE2bHasher(), "abc", "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
		{"blake2b quux", BLAKE2bHasher(), "quux", "bf530ca52bc4221a77cc0e6d7d3b29ba2016a678080240df201fe600608d8375"},
		{"sha3 abc", SHA3Hasher(), "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"sha3 quux", SHA3Hasher(), "quux", "40859a3e3751bf6e60cf17645d6c15947c294d6b457208673c4f28bb019c23d2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.h.Hash([]byte(tt.input))
			if err != nil {
				t.Fatalf("Hash() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Hash(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHashers_Deterministic(t *testing.T) {
	for algo, h := range builtinHashers() {
		t.Run(string(algo), func(t *testing.T) {
			hash1, _ := h.Hash([]byte("tledwichb9@wsj.com"))
			hash2, _ := h.Hash([]byte("tledwichb9@wsj.com"))
			if hash1 != hash2 {
				t.Error("same input should produce same hash")
			}
		})
	}
}

func TestHashers_Length(t *testing.T) {
	tests := []struct {
		algo HashAlgo
		want int
	}{
		{HashSHA256, 64},
		{HashSHA512, 128},
		{HashBLAKE2b, 64},
		{HashSHA3, 64},
	}

	hashers := builtinHashers()
	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			for _, input := range []string{"", "a", "a much longer input value than the digest itself"} {
				got, err := hashers[tt.algo].Hash([]byte(input))
				if err != nil {
					t.Fatalf("Hash() error: %v", err)
				}
				if len(got) != tt.want {
					t.Errorf("len(Hash(%q)) = %d, want %d", input, len(got), tt.want)
				}
			}
		})
	}
}

func TestBuiltinHashers(t *testing.T) {
	hashers := builtinHashers()

	for _, algo := range HashAlgos() {
		if _, ok := hashers[algo]; !ok {
			t.Errorf("builtinHashers missing %q", algo)
		}
	}
}
