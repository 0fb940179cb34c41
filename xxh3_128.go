package xxhash

import "math/bits"

// Sum128 computes the XXH3 128-bit hash of data with seed 0.
func Sum128(data []byte) Uint128 { return sum128(data, defaultSecret[:], 0) }

// Sum128Seed computes the XXH3 128-bit hash of data with the given seed.
func Sum128Seed(data []byte, seed uint64) Uint128 {
	if len(data) > midSizeMax && seed != 0 {
		secret := deriveSecret(seed)
		return sum128(data, secret[:], 0)
	}
	return sum128(data, defaultSecret[:], seed)
}

// Sum128Secret computes the XXH3 128-bit hash of data keyed with secret,
// which must be at least SecretSizeMin bytes long.
func Sum128Secret(data, secret []byte) (Uint128, error) {
	if len(secret) < SecretSizeMin {
		return Uint128{}, keyLengthError(XXH128, len(secret))
	}
	return sum128(data, secret, 0), nil
}

func sum128(data, secret []byte, seed uint64) Uint128 {
	n := len(data)
	switch {
	case n == 0:
		return Uint128{
			Lo: avalanche64(seed ^ le64(secret[64:]) ^ le64(secret[72:])),
			Hi: avalanche64(seed ^ le64(secret[80:]) ^ le64(secret[88:])),
		}
	case n <= 3:
		return sum128Len1to3(data, secret, seed)
	case n <= 8:
		return sum128Len4to8(data, secret, seed)
	case n <= 16:
		return sum128Len9to16(data, secret, seed)
	case n <= 128:
		return sum128Len17to128(data, secret, seed)
	case n <= midSizeMax:
		return sum128Len129to240(data, secret, seed)
	}
	var acc [accLanes]uint64
	hashLong(&acc, data, secret)
	return merge128(&acc, secret, uint64(n))
}

// merge128 folds the long-input accumulators into the two output halves.
func merge128(acc *[accLanes]uint64, secret []byte, n uint64) Uint128 {
	return Uint128{
		Lo: mergeAccs(acc, secret[mergeAccsStart:], n*prime64_1),
		Hi: mergeAccs(acc, secret[len(secret)-stripeLen-mergeAccsStart:], ^(n * prime64_2)),
	}
}

func sum128Len1to3(data, secret []byte, seed uint64) Uint128 {
	n := len(data)
	c1, c2, c3 := uint32(data[0]), uint32(data[n>>1]), uint32(data[n-1])
	lo := c1<<16 | c2<<24 | c3 | uint32(n)<<8
	hi := bits.RotateLeft32(bits.ReverseBytes32(lo), 13)
	flipLo := uint64(le32(secret)^le32(secret[4:])) + seed
	flipHi := uint64(le32(secret[8:])^le32(secret[12:])) - seed
	return Uint128{
		Lo: avalanche64(uint64(lo) ^ flipLo),
		Hi: avalanche64(uint64(hi) ^ flipHi),
	}
}

func sum128Len4to8(data, secret []byte, seed uint64) Uint128 {
	n := len(data)
	seed ^= uint64(bits.ReverseBytes32(uint32(seed))) << 32
	inLo := le32(data)
	inHi := le32(data[n-4:])
	in64 := uint64(inLo) + uint64(inHi)<<32
	bitflip := (le64(secret[16:]) ^ le64(secret[24:])) + seed
	keyed := in64 ^ bitflip

	hi, lo := bits.Mul64(keyed, prime64_1+uint64(n)<<2)
	hi += lo << 1
	lo ^= hi >> 3
	lo ^= lo >> 35
	lo *= primeMX2
	lo ^= lo >> 28
	return Uint128{Lo: lo, Hi: avalanche3(hi)}
}

func sum128Len9to16(data, secret []byte, seed uint64) Uint128 {
	n := len(data)
	flipLo := (le64(secret[32:]) ^ le64(secret[40:])) - seed
	flipHi := (le64(secret[48:]) ^ le64(secret[56:])) + seed
	inLo := le64(data)
	inHi := le64(data[n-8:])

	mHi, mLo := bits.Mul64(inLo^inHi^flipLo, prime64_1)
	mLo += uint64(n-1) << 54
	inHi ^= flipHi
	mHi += inHi + uint64(uint32(inHi))*(prime32_2-1)
	mLo ^= bits.ReverseBytes64(mHi)

	hHi, hLo := bits.Mul64(mLo, prime64_2)
	hHi += mHi * prime64_2
	return Uint128{Lo: avalanche3(hLo), Hi: avalanche3(hHi)}
}

// mix32 is the 128-bit pairwise mixing step.
func mix32(acc Uint128, in1, in2, secret []byte, seed uint64) Uint128 {
	acc.Lo += mix16(in1, secret, seed)
	acc.Lo ^= le64(in2) + le64(in2[8:])
	acc.Hi += mix16(in2, secret[16:], seed)
	acc.Hi ^= le64(in1) + le64(in1[8:])
	return acc
}

func finish128(acc Uint128, n, seed uint64) Uint128 {
	lo := acc.Lo + acc.Hi
	hi := acc.Lo*prime64_1 + acc.Hi*prime64_4 + (n-seed)*prime64_2
	return Uint128{Lo: avalanche3(lo), Hi: -avalanche3(hi)}
}

func sum128Len17to128(data, secret []byte, seed uint64) Uint128 {
	n := len(data)
	acc := Uint128{Lo: uint64(n) * prime64_1}
	if n > 32 {
		if n > 64 {
			if n > 96 {
				acc = mix32(acc, data[48:], data[n-64:], secret[96:], seed)
			}
			acc = mix32(acc, data[32:], data[n-48:], secret[64:], seed)
		}
		acc = mix32(acc, data[16:], data[n-32:], secret[32:], seed)
	}
	acc = mix32(acc, data, data[n-16:], secret, seed)
	return finish128(acc, uint64(n), seed)
}

func sum128Len129to240(data, secret []byte, seed uint64) Uint128 {
	n := len(data)
	rounds := n / 32
	acc := Uint128{Lo: uint64(n) * prime64_1}
	for i := 0; i < 4; i++ {
		acc = mix32(acc, data[32*i:], data[32*i+16:], secret[32*i:], seed)
	}
	acc.Lo = avalanche3(acc.Lo)
	acc.Hi = avalanche3(acc.Hi)
	for i := 4; i < rounds; i++ {
		acc = mix32(acc, data[32*i:], data[32*i+16:], secret[midStartOffset+32*(i-4):], seed)
	}
	acc = mix32(acc, data[n-16:], data[n-32:], secret[SecretSizeMin-midLastOffset-16:], -seed)
	return finish128(acc, uint64(n), seed)
}
