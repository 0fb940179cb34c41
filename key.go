package xxhash

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Variant selects one of the four hash algorithms.
type Variant uint8

const (
	XXH32 Variant = iota
	XXH64
	XXH3
	XXH128
)

const (
	// Byte-slice keys of these lengths are canonical seed encodings.
	seedLen32 = 4
	seedLen64 = 8

	// SecretSizeMin is the smallest secret accepted by XXH3 and XXH128.
	SecretSizeMin = 136
)

var variantNames = [...]string{
	XXH32:  "XXH32",
	XXH64:  "XXH64",
	XXH3:   "XXH3",
	XXH128: "XXH128",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "Variant(" + strconv.Itoa(int(v)) + ")"
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool { return v <= XXH128 }

// Size returns the digest width in bytes.
func (v Variant) Size() int {
	switch v {
	case XXH32:
		return 4
	case XXH64, XXH3:
		return 8
	case XXH128:
		return 16
	}
	return 0
}

// MinSecretLen returns the smallest secret the variant accepts, or 0 if it
// only takes seeds.
func (v Variant) MinSecretLen() int {
	if v == XXH3 || v == XXH128 {
		return SecretSizeMin
	}
	return 0
}

// ParseVariant accepts a variant name ("xxh64", "XXH3", ...), a bit width
// ("32", "64", "128") or an xxhsum algorithm number ("0".."3").
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xxh32", "32", "0":
		return XXH32, nil
	case "xxh64", "64", "1":
		return XXH64, nil
	case "xxh128", "128", "2":
		return XXH128, nil
	case "xxh3", "xxh3_64", "3":
		return XXH3, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// KeyMaterial is either a seed or a secret, never both.
// The zero value is Seed(0).
type KeyMaterial struct {
	seed   uint64
	secret []byte
}

// SeedKey returns seed key material.
func SeedKey(seed uint64) KeyMaterial { return KeyMaterial{seed: seed} }

// SecretKey returns secret key material holding a private copy of secret.
// Length is validated when the key is bound to a variant.
func SecretKey(secret []byte) KeyMaterial {
	return KeyMaterial{secret: bytes.Clone(secret)}
}

// IsSecret reports whether k holds a secret.
func (k KeyMaterial) IsSecret() bool { return k.secret != nil }

// Seed returns the seed; it is 0 for secret key material.
func (k KeyMaterial) Seed() uint64 { return k.seed }

// Secret returns a copy of the secret, or nil for seed key material.
func (k KeyMaterial) Secret() []byte { return bytes.Clone(k.secret) }

func (k KeyMaterial) String() string {
	if k.IsSecret() {
		return fmt.Sprintf("Secret(%d bytes)", len(k.secret))
	}
	return fmt.Sprintf("Seed(%d)", k.seed)
}

// check validates k against the length rules of v.
func (k KeyMaterial) check(v Variant) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(v))
	}
	if !k.IsSecret() {
		return nil
	}
	if minLen := v.MinSecretLen(); minLen == 0 || len(k.secret) < minLen {
		return keyLengthError(v, len(k.secret))
	}
	return nil
}

// ResolveKey classifies a construction argument for variant v.
//
// nil yields Seed(0), a non-negative integer yields Seed(value), a 4- or 8-byte
// slice is decoded as a canonical seed and a slice of at least v.MinSecretLen()
// bytes becomes a secret (copied). A KeyMaterial is validated and passed through.
func ResolveKey(v Variant, arg any) (KeyMaterial, error) {
	if !v.Valid() {
		return KeyMaterial{}, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(v))
	}

	switch x := arg.(type) {
	case nil:
		return KeyMaterial{}, nil
	case KeyMaterial:
		if err := x.check(v); err != nil {
			return KeyMaterial{}, err
		}
		return x, nil
	case []byte:
		return resolveBytes(v, x)
	case uint8:
		return SeedKey(uint64(x)), nil
	case uint16:
		return SeedKey(uint64(x)), nil
	case uint32:
		return SeedKey(uint64(x)), nil
	case uint64:
		return SeedKey(x), nil
	case uint:
		return SeedKey(uint64(x)), nil
	case int:
		if x >= 0 {
			return SeedKey(uint64(x)), nil
		}
	case int64:
		if x >= 0 {
			return SeedKey(uint64(x)), nil
		}
	case int32:
		if x >= 0 {
			return SeedKey(uint64(x)), nil
		}
	}
	return KeyMaterial{}, fmt.Errorf("%w (got %T)", ErrInvalidKeyType, arg)
}

func resolveBytes(v Variant, b []byte) (KeyMaterial, error) {
	switch n := len(b); {
	case n == seedLen32:
		return SeedKey(uint64(DecodeCanonical32([4]byte(b)))), nil
	case n == seedLen64 && v != XXH32:
		return SeedKey(DecodeCanonical64([8]byte(b))), nil
	case v.MinSecretLen() > 0 && n >= v.MinSecretLen():
		return SecretKey(b), nil
	}
	return KeyMaterial{}, keyLengthError(v, len(b))
}

func keyLengthError(v Variant, got int) error {
	minLen := v.MinSecretLen()
	if minLen == 0 {
		minLen = seedLen32
	}
	return &KeyLengthError{Variant: v, Got: got, Min: minLen}
}
