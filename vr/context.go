package vr

import "sync/atomic"

// Context is the per-call configuration record threaded through every
// rounding decision, matching original_source/interflop_verrou.h's
// verrou_context_t: a default mode restored at the start of each
// instrumented instruction, the live mode that instruction may temporarily
// override, and the seed/choose_seed/static_backend fields CLI parsing
// fills in (spec.md §3 Context).
type Context struct {
	DefaultRoundingMode RoundingMode
	RoundingMode        RoundingMode
	Seed                uint64
	ChooseSeed          bool
	StaticBackend       bool
	// P is the fixed Bernoulli probability used by the PRANDOM family,
	// updated by UpdatePPrandom (verrou_updatep_prandom/_double).
	P float64

	numOp      uint64
	numExactOp uint64
}

// UpdatePPrandom draws a fresh uniform double from the calling thread's
// PRNG and stores it as P, matching verrou_updatep_prandom.
func (c *Context) UpdatePPrandom() {
	c.P = rngForCurrentThread(c.Seed).NextDouble()
}

// SetPPrandom sets P directly, matching verrou_updatep_prandom_double.
func (c *Context) SetPPrandom(p float64) {
	c.P = p
}

// NewContext returns a Context configured with the package defaults:
// DOWNWARD rounding, seed 0, ChooseSeed false, StaticBackend false —
// exactly VERROU_ROUDING_MODE_DEFAULT/VERROU_SEED_DEFAULT/
// VERROU_STATIC_BACKEND_DEFAULT.
func NewContext() *Context {
	return &Context{
		DefaultRoundingMode: DefaultRoundingMode,
		RoundingMode:        DefaultRoundingMode,
	}
}

// BeginInstr restores RoundingMode to DefaultRoundingMode, matching
// verrou_begin_instr. A host calls this once per instrumented instruction
// before issuing any of its constituent operation callbacks.
func (c *Context) BeginInstr() {
	c.RoundingMode = c.DefaultRoundingMode
}

// EndInstr is the symmetric bracket, matching verrou_end_instr. It changes
// nothing: RoundingMode keeps its value until the next BeginInstr, and the
// profiling counters reported by ProfilingExact are updated per operation,
// not here. It exists so host call sites can bracket an instruction
// uniformly regardless of what, if anything, the backend does between
// begin and end.
func (c *Context) EndInstr() {}

// SetSeed reseeds deterministically: it first advances the current
// thread-local PRNG once (matching verrou_set_seed's "eat one draw" step,
// which original Verrou uses so that repeated SetSeed(sameValue) calls in
// a single run do not silently become no-ops) and then resets per-thread
// state so every thread starts fresh from seed on its next draw.
func (c *Context) SetSeed(seed uint64) {
	rngForCurrentThread(c.Seed).NextUint64()
	c.Seed = seed
	resetThreadLocalState()
}

// SetRandomSeed reseeds from the Context's own current Seed field, matching
// verrou_set_random_seed, which simply reapplies the stored seed.
func (c *Context) SetRandomSeed() {
	resetThreadLocalState()
}

// RandomBitForUserCall draws one uniformly random bit from ctx's
// thread-local PRNG, independent of ctx.RoundingMode. It exists for
// user_call(INEXACT_ID), which spec.md §9 requires to perturb by one ulp
// with a 50/50 direction regardless of the selected rounding mode.
func RandomBitForUserCall(ctx *Context) bool {
	return rngForCurrentThread(ctx.Seed).NextBool()
}

// ModeName returns the human-readable rounding mode name printed by
// Configure's startup banner, matching verrou_rounding_mode_name.
func (c *Context) ModeName() string {
	return c.RoundingMode.String()
}

// recordOp updates the PROFILING_EXACT-style counters: every instrumented
// call increments numOp, and exact results (no rounding decision needed)
// increment numExactOp. Counters are atomics rather than guarded by a
// mutex since original Verrou increments them from every instrumented
// thread without synchronization; spec.md §5 only requires the counts be
// usable after the run, not linearizable mid-run.
func (c *Context) recordOp(exact bool) {
	atomic.AddUint64(&c.numOp, 1)
	if exact {
		atomic.AddUint64(&c.numExactOp, 1)
	}
}

// ProfilingExact returns (numOp, numExactOp), matching
// verrou_get_profiling_exact.
func (c *Context) ProfilingExact() (numOp, numExactOp uint64) {
	return atomic.LoadUint64(&c.numOp), atomic.LoadUint64(&c.numExactOp)
}

// ResetProfilingExact zeroes the counters, matching
// verrou_init_profiling_exact.
func (c *Context) ResetProfilingExact() {
	atomic.StoreUint64(&c.numOp, 0)
	atomic.StoreUint64(&c.numExactOp, 0)
}
