// Package xxhash provides incremental, keyed xxHash engines: XXH32, XXH64,
// XXH3 (64-bit) and XXH128 (XXH3 128-bit).
//
// Each engine takes one optional key at construction. A nil key, an unsigned
// integer, or a 4- or 8-byte canonical encoding selects a seed; a byte slice of
// at least SecretSizeMin bytes selects a secret (XXH3 and XXH128 only):
//
//	e, err := xxhash.New3(secret)
//	e.Update(chunk1)
//	e.Update(chunk2)
//	sum, _ := e.Canonical() // 8 big-endian bytes
//	e.Reset()               // back to the post-construction state
//	e.Close()
//
// Digests are bit-compatible with the reference xxHash 0.8 algorithms and are
// encoded big-endian regardless of host byte order. The one-shot Sum* functions
// hash a whole buffer without allocating.
//
// These are fast fingerprinting functions, not MACs.
package xxhash
