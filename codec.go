package xxhash

import (
	"encoding/binary"
	"encoding/hex"
)

// Uint128 is a 128-bit digest value.
type Uint128 struct {
	Hi, Lo uint64
}

// Bytes returns the canonical (big-endian, Hi first) encoding of u.
func (u Uint128) Bytes() [16]byte { return Canonical128(u) }

// String formats u as 32 lowercase hex digits in canonical order.
func (u Uint128) String() string {
	b := Canonical128(u)
	return hex.EncodeToString(b[:])
}

// Canonical32 encodes h as 4 big-endian bytes.
func Canonical32(h uint32) (b [4]byte) {
	binary.BigEndian.PutUint32(b[:], h)
	return b
}

// Canonical64 encodes h as 8 big-endian bytes.
func Canonical64(h uint64) (b [8]byte) {
	binary.BigEndian.PutUint64(b[:], h)
	return b
}

// Canonical128 encodes h as 16 bytes: the high half first, each half big-endian.
func Canonical128(h Uint128) (b [16]byte) {
	binary.BigEndian.PutUint64(b[:8], h.Hi)
	binary.BigEndian.PutUint64(b[8:], h.Lo)
	return b
}

// DecodeCanonical32 is the inverse of Canonical32.
func DecodeCanonical32(b [4]byte) uint32 { return binary.BigEndian.Uint32(b[:]) }

// DecodeCanonical64 is the inverse of Canonical64.
func DecodeCanonical64(b [8]byte) uint64 { return binary.BigEndian.Uint64(b[:]) }

// DecodeCanonical128 is the inverse of Canonical128.
func DecodeCanonical128(b [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// AppendCanonical32 appends the canonical encoding of h to dst.
func AppendCanonical32(dst []byte, h uint32) []byte { return binary.BigEndian.AppendUint32(dst, h) }

// AppendCanonical64 appends the canonical encoding of h to dst.
func AppendCanonical64(dst []byte, h uint64) []byte { return binary.BigEndian.AppendUint64(dst, h) }

// AppendCanonical128 appends the canonical encoding of h to dst.
func AppendCanonical128(dst []byte, h Uint128) []byte {
	dst = binary.BigEndian.AppendUint64(dst, h.Hi)
	return binary.BigEndian.AppendUint64(dst, h.Lo)
}

// le32 reads a little-endian uint32 from at least 4 bytes.
func le32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func putLE64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
