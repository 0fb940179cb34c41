package xxhash

import (
	"fmt"
	"io"
)

// Hasher is the variant-independent view of an Engine, for hosts that pick
// the algorithm at run time.
type Hasher interface {
	io.Writer
	io.Closer

	Variant() Variant
	Size() int
	Len() uint64
	Update(p []byte) error
	UpdateValue(v any) error
	Canonical() ([]byte, error)
	AppendCanonical(b []byte) ([]byte, error)
	Reset() error
}

var (
	_ Hasher = (*Engine[uint32])(nil)
	_ Hasher = (*Engine[uint64])(nil)
	_ Hasher = (*Engine[Uint128])(nil)
)

// Open constructs an engine of variant v from a dynamically typed key
// (see ResolveKey).
func Open(v Variant, key any) (Hasher, error) {
	switch v {
	case XXH32:
		e, err := New32(key)
		return asHasher(e, err)
	case XXH64:
		e, err := New64(key)
		return asHasher(e, err)
	case XXH3:
		e, err := New3(key)
		return asHasher(e, err)
	case XXH128:
		e, err := New128(key)
		return asHasher(e, err)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(v))
}

// asHasher keeps a failed construction from yielding a non-nil interface.
func asHasher[D Digest](e *Engine[D], err error) (Hasher, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateValue is Update for dynamically typed input. Anything but a byte
// slice fails with ErrMissingInput and leaves the state untouched.
func (e *Engine[D]) UpdateValue(v any) error {
	p, err := inputBytes(v)
	if err != nil {
		return err
	}
	return e.Update(p)
}

// Hash computes the one-shot digest of data under key and returns its
// canonical encoding. No state is retained.
func Hash(v Variant, data []byte, key KeyMaterial) ([]byte, error) {
	if err := key.check(v); err != nil {
		return nil, err
	}

	switch v {
	case XXH32:
		return AppendCanonical32(nil, Sum32Seed(data, uint32(key.seed))), nil
	case XXH64:
		return AppendCanonical64(nil, Sum64Seed(data, key.seed)), nil
	case XXH3:
		if key.IsSecret() {
			return AppendCanonical64(nil, sum3(data, key.secret, 0)), nil
		}
		return AppendCanonical64(nil, Sum3Seed(data, key.seed)), nil
	case XXH128:
		if key.IsSecret() {
			return AppendCanonical128(nil, sum128(data, key.secret, 0)), nil
		}
		return AppendCanonical128(nil, Sum128Seed(data, key.seed)), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(v))
}

// HashValue is Hash for dynamically typed arguments: data must be a byte
// slice and key is resolved with ResolveKey.
func HashValue(v Variant, data, key any) ([]byte, error) {
	p, err := inputBytes(data)
	if err != nil {
		return nil, err
	}
	km, err := ResolveKey(v, key)
	if err != nil {
		return nil, err
	}
	return Hash(v, p, km)
}

func inputBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case nil:
		return nil, ErrMissingInput
	}
	return nil, fmt.Errorf("%w (got %T)", ErrMissingInput, v)
}
