package xxhash

import (
	"bytes"
	"fmt"
	"sync/atomic"
)

// Digest is the set of digest value types.
type Digest interface {
	uint32 | uint64 | Uint128
}

// algorithm is the streaming contract each hash variant implements.
type algorithm[D Digest] interface {
	resetSeed(seed uint64) error
	resetSecret(secret []byte) error
	write(p []byte) error
	sum() D
	length() uint64
}

// Engine is an incremental, keyed hash of one Variant.
//
// The key material is resolved once at construction and reused by Reset.
// An Engine is not safe for concurrent use; distinct Engines share nothing.
type Engine[D Digest] struct {
	variant Variant
	seed    uint64
	secret  []byte // private copy, nil when seeded
	state   algorithm[D]
	encode  func([]byte, D) []byte
	closed  atomic.Bool
}

// New32 returns an XXH32 engine. key may be nil, an unsigned integer or a
// 4-byte canonical seed.
func New32(key any) (*Engine[uint32], error) {
	return newEngine(XXH32, key, &xxh32State{}, AppendCanonical32)
}

// New64 returns an XXH64 engine. key may be nil, an unsigned integer or a
// 4- or 8-byte canonical seed.
func New64(key any) (*Engine[uint64], error) {
	return newEngine(XXH64, key, &xxh64State{}, AppendCanonical64)
}

// New3 returns an XXH3 64-bit engine. key may be nil, an unsigned integer,
// a 4- or 8-byte canonical seed or a secret of at least SecretSizeMin bytes.
func New3(key any) (*Engine[uint64], error) {
	return newEngine(XXH3, key, &xxh3Engine{}, AppendCanonical64)
}

// New128 returns an XXH3 128-bit engine. It accepts the same keys as New3.
func New128(key any) (*Engine[Uint128], error) {
	return newEngine(XXH128, key, &xxh128Engine{}, AppendCanonical128)
}

func newEngine[D Digest](v Variant, key any, state algorithm[D], encode func([]byte, D) []byte) (*Engine[D], error) {
	km, err := ResolveKey(v, key)
	if err != nil {
		return nil, err
	}

	e := &Engine[D]{
		variant: v,
		seed:    km.seed,
		state:   state,
		encode:  encode,
	}
	if km.IsSecret() {
		e.secret = bytes.Clone(km.secret)
	}
	if err := e.init(); err != nil {
		e.release()
		return nil, fmt.Errorf("%w: %s: %w", ErrResetFailed, v, err)
	}
	return e, nil
}

func (e *Engine[D]) init() error {
	if e.secret != nil {
		return e.state.resetSecret(e.secret)
	}
	return e.state.resetSeed(e.seed)
}

// Variant reports which algorithm e runs.
func (e *Engine[D]) Variant() Variant { return e.variant }

// Size returns the length of the canonical digest in bytes.
func (e *Engine[D]) Size() int { return e.variant.Size() }

// Key returns the key material e was constructed with. The secret is a
// copy. A closed engine has no key left and reports ErrClosed.
func (e *Engine[D]) Key() (KeyMaterial, error) {
	if e.closed.Load() {
		return KeyMaterial{}, ErrClosed
	}
	if e.secret != nil {
		return SecretKey(e.secret), nil
	}
	return SeedKey(e.seed), nil
}

// Update appends p to the stream. An empty p is a no-op.
func (e *Engine[D]) Update(p []byte) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if err := e.state.write(p); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUpdateFailed, e.variant, err)
	}
	return nil
}

// Write implements io.Writer on top of Update.
func (e *Engine[D]) Write(p []byte) (int, error) {
	if err := e.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Digest returns the hash of the bytes written since construction or the
// last Reset. It does not change the state.
func (e *Engine[D]) Digest() (D, error) {
	if e.closed.Load() {
		var zero D
		return zero, ErrClosed
	}
	return e.state.sum(), nil
}

// AppendCanonical appends the canonical encoding of the current digest to b.
func (e *Engine[D]) AppendCanonical(b []byte) ([]byte, error) {
	d, err := e.Digest()
	if err != nil {
		return b, err
	}
	return e.encode(b, d), nil
}

// Canonical returns the current digest as Size() big-endian bytes.
func (e *Engine[D]) Canonical() ([]byte, error) {
	return e.AppendCanonical(make([]byte, 0, e.Size()))
}

// Len returns the number of bytes consumed since construction or the last Reset.
func (e *Engine[D]) Len() uint64 {
	if e.closed.Load() {
		return 0
	}
	return e.state.length()
}

// Reset discards all written bytes, restoring the post-construction state.
func (e *Engine[D]) Reset() error {
	if e.closed.Load() {
		return ErrClosed
	}
	if err := e.init(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrResetFailed, e.variant, err)
	}
	return nil
}

// Close releases the secret copy and the state. Only the first call has an
// effect; later calls return nil. Close must not run concurrently with other
// methods.
func (e *Engine[D]) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	e.release()
	return nil
}

// release wipes the secret before dropping the state.
func (e *Engine[D]) release() {
	if e.secret != nil {
		clear(e.secret)
		e.secret = nil
	}
	e.state = nil
}
