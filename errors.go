package xxhash

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeyType is returned when a key argument is neither absent,
	// a non-negative integer nor a byte slice.
	ErrInvalidKeyType = errors.New("xxhash: key must be a byte slice or an unsigned integer")

	// ErrInvalidKeyLength is returned when a byte-slice key has a length the
	// variant does not recognize. The concrete error is a *KeyLengthError.
	ErrInvalidKeyLength = errors.New("xxhash: invalid key length")

	// ErrMissingInput is returned when a byte slice is required but absent.
	ErrMissingInput = errors.New("xxhash: input must be a byte slice")

	// ErrUpdateFailed indicates a broken internal invariant during Update.
	ErrUpdateFailed = errors.New("xxhash: update failed")

	// ErrResetFailed indicates a broken internal invariant during Reset.
	ErrResetFailed = errors.New("xxhash: reset failed")

	// ErrClosed is returned by every operation on a closed engine.
	ErrClosed = errors.New("xxhash: engine is closed")

	// ErrUnknownVariant is returned for a Variant outside the known set.
	ErrUnknownVariant = errors.New("xxhash: unknown variant")
)

// Internal invariant violations, wrapped by ErrUpdateFailed or ErrResetFailed.
var (
	errBufferOverrun = errors.New("buffered length exceeds buffer")
	errNoState       = errors.New("state not initialized")
	errNoSecret      = errors.New("variant does not take a secret")
	errShortSecret   = errors.New("secret shorter than minimum")
)

// KeyLengthError reports a byte-slice key of unsupported length.
//
// It matches ErrInvalidKeyLength under errors.Is.
type KeyLengthError struct {
	Variant Variant
	Got     int
	// Min is the smallest accepted length.
	Min int
}

func (e *KeyLengthError) Error() string {
	switch {
	case e.Variant == XXH32:
		return fmt.Sprintf("xxhash: %s seed must be %d bytes, got %d", e.Variant, seedLen32, e.Got)
	case e.Variant.MinSecretLen() == 0:
		return fmt.Sprintf("xxhash: %s seed must be %d or %d bytes, got %d", e.Variant, seedLen32, seedLen64, e.Got)
	default:
		return fmt.Sprintf("xxhash: %s secret too small, must be at least %d bytes, got %d", e.Variant, e.Min, e.Got)
	}
}

func (e *KeyLengthError) Is(target error) bool { return target == ErrInvalidKeyLength }
