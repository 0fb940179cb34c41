package xxhash

import "math/bits"

const (
	prime64_1 = 0x9E3779B185EBCA87
	prime64_2 = 0xC2B2AE3D27D4EB4F
	prime64_3 = 0x165667B19E3779F9
	prime64_4 = 0x85EBCA77C2B2AE63
	prime64_5 = 0x27D4EB2F165667C5

	primeMX1 = 0x165667919E3779F9
	primeMX2 = 0x9FB21C651E98DF25

	stripeLen      = 64
	secretConsume  = 8 // secret bytes advanced per stripe
	accLanes       = 8
	midSizeMax     = 240
	midStartOffset = 3
	midLastOffset  = 17
	lastAccStart   = 7
	mergeAccsStart = 11

	// defaultSecretSize is the size of defaultSecret and of seed-derived secrets.
	defaultSecretSize = 192
)

// defaultSecret is the XXH3 default key table.
var defaultSecret = [defaultSecretSize]byte{
	0xb8, 0xfe, 0x6c, 0x39, 0x23, 0xa4, 0x4b, 0xbe, 0x7c, 0x01, 0x81, 0x2c, 0xf7, 0x21, 0xad, 0x1c,
	0xde, 0xd4, 0x6d, 0xe9, 0x83, 0x90, 0x97, 0xdb, 0x72, 0x40, 0xa4, 0xa4, 0xb7, 0xb3, 0x67, 0x1f,
	0xcb, 0x79, 0xe6, 0x4e, 0xcc, 0xc0, 0xe5, 0x78, 0x82, 0x5a, 0xd0, 0x7d, 0xcc, 0xff, 0x72, 0x21,
	0xb8, 0x08, 0x46, 0x74, 0xf7, 0x43, 0x24, 0x8e, 0xe0, 0x35, 0x90, 0xe6, 0x81, 0x3a, 0x26, 0x4c,
	0x3c, 0x28, 0x52, 0xbb, 0x91, 0xc3, 0x00, 0xcb, 0x88, 0xd0, 0x65, 0x8b, 0x1b, 0x53, 0x2e, 0xa3,
	0x71, 0x64, 0x48, 0x97, 0xa2, 0x0d, 0xf9, 0x4e, 0x38, 0x19, 0xef, 0x46, 0xa9, 0xde, 0xac, 0xd8,
	0xa8, 0xfa, 0x76, 0x3f, 0xe3, 0x9c, 0x34, 0x3f, 0xf9, 0xdc, 0xbb, 0xc7, 0xc7, 0x0b, 0x4f, 0x1d,
	0x8a, 0x51, 0xe0, 0x4b, 0xcd, 0xb4, 0x59, 0x31, 0xc8, 0x9f, 0x7e, 0xc9, 0xd9, 0x78, 0x73, 0x64,
	0xea, 0xc5, 0xac, 0x83, 0x34, 0xd3, 0xeb, 0xc3, 0xc5, 0x81, 0xa0, 0xff, 0xfa, 0x13, 0x63, 0xeb,
	0x17, 0x0d, 0xdd, 0x51, 0xb7, 0xf0, 0xda, 0x49, 0xd3, 0x16, 0x55, 0x26, 0x29, 0xd4, 0x68, 0x9e,
	0x2b, 0x16, 0xbe, 0x58, 0x7d, 0x47, 0xa1, 0xfc, 0x8f, 0xf8, 0xb8, 0xd1, 0x7a, 0xd0, 0x31, 0xce,
	0x45, 0xcb, 0x3a, 0x8f, 0x95, 0x16, 0x04, 0x28, 0xaf, 0xd7, 0xfb, 0xca, 0xbb, 0x4b, 0x40, 0x7e,
}

// avalanche64 is the XXH64 final mix, used by XXH3 for short inputs.
func avalanche64(h uint64) uint64 {
	h ^= h >> 33
	h *= prime64_2
	h ^= h >> 29
	h *= prime64_3
	h ^= h >> 32
	return h
}

// Sum3 computes the XXH3 64-bit hash of data with seed 0.
func Sum3(data []byte) uint64 { return sum3(data, defaultSecret[:], 0) }

// Sum3Seed computes the XXH3 64-bit hash of data with the given seed.
func Sum3Seed(data []byte, seed uint64) uint64 {
	if len(data) > midSizeMax && seed != 0 {
		secret := deriveSecret(seed)
		return sum3(data, secret[:], 0)
	}
	return sum3(data, defaultSecret[:], seed)
}

// Sum3Secret computes the XXH3 64-bit hash of data keyed with secret,
// which must be at least SecretSizeMin bytes long.
func Sum3Secret(data, secret []byte) (uint64, error) {
	if len(secret) < SecretSizeMin {
		return 0, keyLengthError(XXH3, len(secret))
	}
	return sum3(data, secret, 0), nil
}

// sum3 dispatches on input length. Long inputs ignore seed: seeded callers
// pass a derived secret instead.
func sum3(data, secret []byte, seed uint64) uint64 {
	n := len(data)
	switch {
	case n == 0:
		return avalanche64(seed ^ le64(secret[56:]) ^ le64(secret[64:]))
	case n <= 3:
		return sum3Len1to3(data, secret, seed)
	case n <= 8:
		return sum3Len4to8(data, secret, seed)
	case n <= 16:
		return sum3Len9to16(data, secret, seed)
	case n <= 128:
		return sum3Len17to128(data, secret, seed)
	case n <= midSizeMax:
		return sum3Len129to240(data, secret, seed)
	}
	var acc [accLanes]uint64
	hashLong(&acc, data, secret)
	return mergeAccs(&acc, secret[mergeAccsStart:], uint64(n)*prime64_1)
}

func sum3Len1to3(data, secret []byte, seed uint64) uint64 {
	n := len(data)
	c1, c2, c3 := uint32(data[0]), uint32(data[n>>1]), uint32(data[n-1])
	combined := c1<<16 | c2<<24 | c3 | uint32(n)<<8
	bitflip := uint64(le32(secret)^le32(secret[4:])) + seed
	return avalanche64(uint64(combined) ^ bitflip)
}

func sum3Len4to8(data, secret []byte, seed uint64) uint64 {
	n := len(data)
	seed ^= uint64(bits.ReverseBytes32(uint32(seed))) << 32
	in1 := le32(data)
	in2 := le32(data[n-4:])
	bitflip := (le64(secret[8:]) ^ le64(secret[16:])) - seed
	in64 := uint64(in2) + uint64(in1)<<32
	return rrmxmx(in64^bitflip, uint64(n))
}

func sum3Len9to16(data, secret []byte, seed uint64) uint64 {
	n := len(data)
	bitflip1 := (le64(secret[24:]) ^ le64(secret[32:])) + seed
	bitflip2 := (le64(secret[40:]) ^ le64(secret[48:])) - seed
	lo := le64(data) ^ bitflip1
	hi := le64(data[n-8:]) ^ bitflip2
	acc := uint64(n) + bits.ReverseBytes64(lo) + hi + mulFold64(lo, hi)
	return avalanche3(acc)
}

func sum3Len17to128(data, secret []byte, seed uint64) uint64 {
	n := len(data)
	acc := uint64(n) * prime64_1
	if n > 32 {
		if n > 64 {
			if n > 96 {
				acc += mix16(data[48:], secret[96:], seed)
				acc += mix16(data[n-64:], secret[112:], seed)
			}
			acc += mix16(data[32:], secret[64:], seed)
			acc += mix16(data[n-48:], secret[80:], seed)
		}
		acc += mix16(data[16:], secret[32:], seed)
		acc += mix16(data[n-32:], secret[48:], seed)
	}
	acc += mix16(data, secret, seed)
	acc += mix16(data[n-16:], secret[16:], seed)
	return avalanche3(acc)
}

func sum3Len129to240(data, secret []byte, seed uint64) uint64 {
	n := len(data)
	rounds := n / 16
	acc := uint64(n) * prime64_1
	for i := 0; i < 8; i++ {
		acc += mix16(data[16*i:], secret[16*i:], seed)
	}
	acc = avalanche3(acc)
	for i := 8; i < rounds; i++ {
		acc += mix16(data[16*i:], secret[16*(i-8)+midStartOffset:], seed)
	}
	acc += mix16(data[n-16:], secret[SecretSizeMin-midLastOffset:], seed)
	return avalanche3(acc)
}

func mulFold64(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func mix16(data, secret []byte, seed uint64) uint64 {
	lo := le64(data) ^ (le64(secret) + seed)
	hi := le64(data[8:]) ^ (le64(secret[8:]) - seed)
	return mulFold64(lo, hi)
}

func avalanche3(h uint64) uint64 {
	h ^= h >> 37
	h *= primeMX1
	h ^= h >> 32
	return h
}

func rrmxmx(h, n uint64) uint64 {
	h ^= bits.RotateLeft64(h, 49) ^ bits.RotateLeft64(h, 24)
	h *= primeMX2
	h ^= (h >> 35) + n
	h *= primeMX2
	h ^= h >> 28
	return h
}

// deriveSecret builds the seed-specific secret used for inputs over midSizeMax.
func deriveSecret(seed uint64) (secret [defaultSecretSize]byte) {
	for i := 0; i < defaultSecretSize; i += 16 {
		lo := le64(defaultSecret[i:]) + seed
		hi := le64(defaultSecret[i+8:]) - seed
		putLE64(secret[i:], lo)
		putLE64(secret[i+8:], hi)
	}
	return secret
}

func initAcc(acc *[accLanes]uint64) {
	*acc = [accLanes]uint64{
		prime32_3, prime64_1, prime64_2, prime64_3,
		prime64_4, prime32_2, prime64_5, prime32_1,
	}
}

// hashLong runs the block loop over data (len > midSizeMax) into a fresh acc.
func hashLong(acc *[accLanes]uint64, data, secret []byte) {
	initAcc(acc)
	stripesPerBlock := (len(secret) - stripeLen) / secretConsume
	blockLen := stripeLen * stripesPerBlock
	blocks := (len(data) - 1) / blockLen

	for b := 0; b < blocks; b++ {
		accumulate(acc, data[b*blockLen:], secret, stripesPerBlock)
		scramble(acc, secret[len(secret)-stripeLen:])
	}

	stripes := ((len(data) - 1) - blockLen*blocks) / stripeLen
	accumulate(acc, data[blocks*blockLen:], secret, stripes)
	accumulate512(acc, data[len(data)-stripeLen:], secret[len(secret)-stripeLen-lastAccStart:])
}

func accumulate(acc *[accLanes]uint64, data, secret []byte, stripes int) {
	for n := 0; n < stripes; n++ {
		accumulate512(acc, data[n*stripeLen:], secret[n*secretConsume:])
	}
}

func accumulate512(acc *[accLanes]uint64, data, secret []byte) {
	_ = data[stripeLen-1]
	_ = secret[stripeLen-1]
	for i := 0; i < accLanes; i++ {
		v := le64(data[8*i:])
		k := v ^ le64(secret[8*i:])
		acc[i^1] += v
		acc[i] += uint64(uint32(k)) * (k >> 32)
	}
}

func scramble(acc *[accLanes]uint64, secret []byte) {
	for i := 0; i < accLanes; i++ {
		a := acc[i]
		a ^= a >> 47
		a ^= le64(secret[8*i:])
		a *= prime32_1
		acc[i] = a
	}
}

func mergeAccs(acc *[accLanes]uint64, secret []byte, start uint64) uint64 {
	r := start
	for i := 0; i < 4; i++ {
		r += mulFold64(acc[2*i]^le64(secret[16*i:]), acc[2*i+1]^le64(secret[16*i+8:]))
	}
	return avalanche3(r)
}
