package xxhash

import cespare "github.com/cespare/xxhash/v2"

// Sum64 computes the XXH64 hash of data with seed 0.
func Sum64(data []byte) uint64 { return cespare.Sum64(data) }

// Sum64Seed computes the XXH64 hash of data with the given seed.
func Sum64Seed(data []byte, seed uint64) uint64 {
	if seed == 0 {
		return cespare.Sum64(data)
	}
	d := cespare.NewWithSeed(seed)
	_, _ = d.Write(data)
	return d.Sum64()
}

// xxh64State is the streaming XXH64 state. The digest itself does not
// expose its length, so total is kept alongside.
type xxh64State struct {
	d     *cespare.Digest
	total uint64
}

func (s *xxh64State) resetSeed(seed uint64) error {
	if s.d == nil {
		s.d = cespare.NewWithSeed(seed)
	} else {
		s.d.ResetWithSeed(seed)
	}
	s.total = 0
	return nil
}

func (s *xxh64State) resetSecret([]byte) error {
	return errNoSecret
}

func (s *xxh64State) write(p []byte) error {
	if s.d == nil {
		return errNoState
	}
	if _, err := s.d.Write(p); err != nil {
		return err
	}
	s.total += uint64(len(p))
	return nil
}

func (s *xxh64State) sum() uint64 { return s.d.Sum64() }

func (s *xxh64State) length() uint64 { return s.total }
