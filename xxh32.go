package xxhash

import "math/bits"

const (
	prime32_1 = 0x9E3779B1
	prime32_2 = 0x85EBCA77
	prime32_3 = 0xC2B2AE3D
	prime32_4 = 0x27D4EB2F
	prime32_5 = 0x165667B1

	// stripe32 is the XXH32 stripe: four lanes of 4 bytes.
	stripe32 = 16
)

// Sum32 computes the XXH32 hash of data with seed 0.
func Sum32(data []byte) uint32 { return Sum32Seed(data, 0) }

// Sum32Seed computes the XXH32 hash of data with the given seed.
func Sum32Seed(data []byte, seed uint32) uint32 {
	n := len(data)
	var h uint32

	if n >= stripe32 {
		v1 := seed + prime32_1 + prime32_2
		v2 := seed + prime32_2
		v3 := seed
		v4 := seed - prime32_1
		for len(data) >= stripe32 {
			v1 = round32(v1, le32(data[0:]))
			v2 = round32(v2, le32(data[4:]))
			v3 = round32(v3, le32(data[8:]))
			v4 = round32(v4, le32(data[12:]))
			data = data[stripe32:]
		}
		h = bits.RotateLeft32(v1, 1) + bits.RotateLeft32(v2, 7) +
			bits.RotateLeft32(v3, 12) + bits.RotateLeft32(v4, 18)
	} else {
		h = seed + prime32_5
	}

	h += uint32(n)
	return finalize32(h, data)
}

func round32(acc, input uint32) uint32 {
	acc += input * prime32_2
	acc = bits.RotateLeft32(acc, 13)
	return acc * prime32_1
}

// finalize32 consumes the trailing (< 16) bytes and avalanches.
func finalize32(h uint32, tail []byte) uint32 {
	for len(tail) >= 4 {
		h += le32(tail) * prime32_3
		h = bits.RotateLeft32(h, 17) * prime32_4
		tail = tail[4:]
	}
	for _, b := range tail {
		h += uint32(b) * prime32_5
		h = bits.RotateLeft32(h, 11) * prime32_1
	}

	h ^= h >> 15
	h *= prime32_2
	h ^= h >> 13
	h *= prime32_3
	h ^= h >> 16
	return h
}

// xxh32State is the streaming XXH32 state.
type xxh32State struct {
	v        [4]uint32
	seed     uint32
	total    uint64
	buf      [stripe32]byte
	buffered int
}

func (s *xxh32State) resetSeed(seed uint64) error {
	sd := uint32(seed)
	*s = xxh32State{seed: sd}
	s.v = [4]uint32{sd + prime32_1 + prime32_2, sd + prime32_2, sd, sd - prime32_1}
	return nil
}

func (s *xxh32State) resetSecret([]byte) error {
	return errNoSecret
}

func (s *xxh32State) write(p []byte) error {
	if s.buffered >= stripe32 {
		return errBufferOverrun
	}
	s.total += uint64(len(p))

	if s.buffered > 0 {
		n := copy(s.buf[s.buffered:], p)
		s.buffered += n
		p = p[n:]
		if s.buffered < stripe32 {
			return nil
		}
		s.stripe(s.buf[:])
		s.buffered = 0
	}

	for len(p) >= stripe32 {
		s.stripe(p)
		p = p[stripe32:]
	}

	s.buffered = copy(s.buf[:], p)
	return nil
}

func (s *xxh32State) stripe(p []byte) {
	s.v[0] = round32(s.v[0], le32(p[0:]))
	s.v[1] = round32(s.v[1], le32(p[4:]))
	s.v[2] = round32(s.v[2], le32(p[8:]))
	s.v[3] = round32(s.v[3], le32(p[12:]))
}

func (s *xxh32State) sum() uint32 {
	var h uint32
	if s.total >= stripe32 {
		h = bits.RotateLeft32(s.v[0], 1) + bits.RotateLeft32(s.v[1], 7) +
			bits.RotateLeft32(s.v[2], 12) + bits.RotateLeft32(s.v[3], 18)
	} else {
		h = s.seed + prime32_5
	}
	// The reference folds the length modulo 2^32.
	h += uint32(s.total)
	return finalize32(h, s.buf[:s.buffered])
}

func (s *xxh32State) length() uint64 { return s.total }
