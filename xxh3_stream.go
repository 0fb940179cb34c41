package xxhash

const (
	// internalBufferSize is the XXH3 streaming buffer: four stripes.
	internalBufferSize    = 256
	internalBufferStripes = internalBufferSize / stripeLen
)

// xxh3State is the streaming state shared by XXH3 and XXH128.
// Both widths read the same accumulators; only the final merge differs.
type xxh3State struct {
	acc             [accLanes]uint64
	buf             [internalBufferSize]byte
	buffered        int
	stripesSoFar    int
	stripesPerBlock int
	total           uint64
	seed            uint64
	useSeed         bool

	// secret is either defaultSecret, derived, or a caller secret owned by
	// the engine.
	secret  []byte
	derived [defaultSecretSize]byte
}

func (s *xxh3State) resetSeed(seed uint64) error {
	if seed == 0 {
		return s.resetInternal(0, defaultSecret[:])
	}
	if seed != s.seed || !s.useSeed {
		s.derived = deriveSecret(seed)
	}
	if err := s.resetInternal(seed, s.derived[:]); err != nil {
		return err
	}
	s.useSeed = true
	return nil
}

func (s *xxh3State) resetSecret(secret []byte) error {
	return s.resetInternal(0, secret)
}

func (s *xxh3State) resetInternal(seed uint64, secret []byte) error {
	if len(secret) < SecretSizeMin {
		return errShortSecret
	}
	initAcc(&s.acc)
	s.buffered = 0
	s.stripesSoFar = 0
	s.total = 0
	s.seed = seed
	s.useSeed = false
	s.secret = secret
	s.stripesPerBlock = (len(secret) - stripeLen) / secretConsume
	return nil
}

func (s *xxh3State) write(p []byte) error {
	if s.secret == nil {
		return errNoState
	}
	if s.buffered > internalBufferSize {
		return errBufferOverrun
	}
	s.total += uint64(len(p))

	// Small writes only fill the buffer. It is consumed once more input
	// arrives, so the last stripe is always available to sum.
	if len(p) <= internalBufferSize-s.buffered {
		s.buffered += copy(s.buf[s.buffered:], p)
		return nil
	}

	if s.buffered > 0 {
		n := copy(s.buf[s.buffered:], p)
		p = p[n:]
		s.consumeStripes(&s.acc, &s.stripesSoFar, s.buf[:], internalBufferStripes)
		s.buffered = 0
	}

	if len(p) > internalBufferSize {
		var last []byte
		for len(p) > internalBufferSize {
			s.consumeStripes(&s.acc, &s.stripesSoFar, p, internalBufferStripes)
			last = p[internalBufferSize-stripeLen : internalBufferSize]
			p = p[internalBufferSize:]
		}
		// Keep the last consumed stripe at the end of the buffer for sum.
		copy(s.buf[internalBufferSize-stripeLen:], last)
	}

	s.buffered = copy(s.buf[:], p)
	return nil
}

// consumeStripes accumulates stripes from data, scrambling at block ends.
func (s *xxh3State) consumeStripes(acc *[accLanes]uint64, soFar *int, data []byte, stripes int) {
	secret := s.secret
	limit := len(secret) - stripeLen
	if toEnd := s.stripesPerBlock - *soFar; toEnd <= stripes {
		accumulate(acc, data, secret[*soFar*secretConsume:], toEnd)
		scramble(acc, secret[limit:])
		accumulate(acc, data[toEnd*stripeLen:], secret, stripes-toEnd)
		*soFar = stripes - toEnd
		return
	}
	accumulate(acc, data, secret[*soFar*secretConsume:], stripes)
	*soFar += stripes
}

// digestLong finishes a copy of the accumulators for inputs over midSizeMax.
func (s *xxh3State) digestLong(acc *[accLanes]uint64) {
	*acc = s.acc
	secret := s.secret
	limit := len(secret) - stripeLen

	var lastStripe []byte
	if s.buffered >= stripeLen {
		stripes := (s.buffered - 1) / stripeLen
		soFar := s.stripesSoFar
		s.consumeStripes(acc, &soFar, s.buf[:], stripes)
		lastStripe = s.buf[s.buffered-stripeLen : s.buffered]
	} else {
		var tmp [stripeLen]byte
		catchup := stripeLen - s.buffered
		copy(tmp[:], s.buf[internalBufferSize-catchup:])
		copy(tmp[catchup:], s.buf[:s.buffered])
		lastStripe = tmp[:]
	}
	accumulate512(acc, lastStripe, secret[limit-lastAccStart:])
}

func (s *xxh3State) sum64() uint64 {
	if s.total > midSizeMax {
		var acc [accLanes]uint64
		s.digestLong(&acc)
		return mergeAccs(&acc, s.secret[mergeAccsStart:], s.total*prime64_1)
	}
	if s.useSeed {
		return Sum3Seed(s.buf[:s.total], s.seed)
	}
	return sum3(s.buf[:s.total], s.secret, 0)
}

func (s *xxh3State) sum128() Uint128 {
	if s.total > midSizeMax {
		var acc [accLanes]uint64
		s.digestLong(&acc)
		return merge128(&acc, s.secret, s.total)
	}
	if s.useSeed {
		return Sum128Seed(s.buf[:s.total], s.seed)
	}
	return sum128(s.buf[:s.total], s.secret, 0)
}

func (s *xxh3State) length() uint64 { return s.total }

// xxh3Engine and xxh128Engine select the output width over a shared state.
type (
	xxh3Engine   struct{ xxh3State }
	xxh128Engine struct{ xxh3State }
)

func (e *xxh3Engine) sum() uint64    { return e.sum64() }
func (e *xxh128Engine) sum() Uint128 { return e.sum128() }
