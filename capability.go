package xform

// HashAlgo represents a supported digest algorithm for obfuscation.
// The algorithm name prefixes every obfuscated value: "sha256:<hex>".
type HashAlgo string

const (
	// HashSHA256 uses SHA-256. This is the default.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 uses SHA-512.
	HashSHA512 HashAlgo = "sha512"

	// HashBLAKE2b uses BLAKE2b with a 256-bit digest.
	HashBLAKE2b HashAlgo = "blake2b"

	// HashSHA3 uses SHA3-256.
	HashSHA3 HashAlgo = "sha3"
)

// Operation names a transformation.
type Operation string

const (
	OpOverwrite Operation = "overwrite"
	OpObfuscate Operation = "obfuscate"
	OpMask      Operation = "mask"
)

// validHashAlgos contains all builtin digest algorithms.
var validHashAlgos = map[HashAlgo]bool{
	HashSHA256:  true,
	HashSHA512:  true,
	HashBLAKE2b: true,
	HashSHA3:    true,
}

// IsValidHashAlgo returns true if the algorithm is a known digest algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}

// HashAlgos returns the builtin digest algorithms in a stable order.
func HashAlgos() []HashAlgo {
	return []HashAlgo{HashSHA256, HashSHA512, HashBLAKE2b, HashSHA3}
}
