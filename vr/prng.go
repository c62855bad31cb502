package vr

// PRNG is the per-call-site random source used by the stochastic rounding
// modes (spec.md §4.3). original_source/interflop_verrou.cxx reseeds a
// tinymt64 generator per thread and per deterministic-hash call; tinymt64's
// own sources were not part of the retrieved reference set, so PRNG here is
// a splitmix64-seeded xorshift128+ (same "small, fast, reseed-per-call"
// shape as tinymt64 — a 128-bit state stepped with a handful of shifts and
// xors, one uint64 draw per Next call, reseedable from a single uint64 key).
type PRNG struct {
	s0, s1 uint64
}

// NewPRNG builds a PRNG directly from a 64-bit seed by running it twice
// through splitmix64 to fill the 128-bit state, avoiding the all-zero state
// that xorshift128+ cannot escape.
func NewPRNG(seed uint64) *PRNG {
	p := &PRNG{}
	p.Reseed(seed)
	return p
}

// Reseed reinitializes the generator's state from seed.
func (p *PRNG) Reseed(seed uint64) {
	p.s0 = splitmix64(&seed)
	p.s1 = splitmix64(&seed)
	if p.s0 == 0 && p.s1 == 0 {
		p.s1 = 1
	}
}

func splitmix64(x *uint64) uint64 {
	*x += 0x9E3779B97F4A7C15
	z := *x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// NextUint64 returns the next pseudo-random 64-bit draw and advances state.
func (p *PRNG) NextUint64() uint64 {
	s1 := p.s0
	s0 := p.s1
	result := s0 + s1
	p.s0 = s0
	s1 ^= s1 << 23
	p.s1 = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)
	return result
}

// NextDouble returns a uniform draw in [0,1), matching tinymt64_generate_double's
// role in verrou_updatep_prandom: the 53 high bits of a 64-bit draw scaled
// into the unit interval.
func (p *PRNG) NextDouble() float64 {
	return float64(p.NextUint64()>>11) / (1 << 53)
}

// NextBool returns an unbiased single random bit, used by the *_DET/_COMDET
// and plain random modes to choose between nextAfter/nextPrev (spec.md §4.2).
func (p *PRNG) NextBool() bool {
	return p.NextUint64()&1 == 1
}
