package vr

import (
	"sync"
)

// threadLocalState is the pluggable per-thread accessor referenced in
// spec.md §9: real thread-local storage in most targets, an explicit
// keyed map where the runtime offers no TLS primitive. Go exposes neither
// goroutine-local storage (goroutines are not OS threads and migrate
// between them) nor a portable thread-id call in the standard library, so
// this package keys state by the OS thread id reported by the
// gettidFunc hook (golang.org/x/sys/unix.Gettid on linux, see
// threadlocal_linux.go; a monotonic per-call fallback elsewhere, see
// threadlocal_other.go).
type threadLocalState struct {
	mu    sync.Mutex
	rngs  map[int]*PRNG
	boot  uint64
	bootM sync.Mutex
}

var tls = &threadLocalState{
	rngs: make(map[int]*PRNG),
}

// gettidFunc is overridden per-platform; see threadlocal_linux.go and
// threadlocal_other.go.
var gettidFunc func() int

// rngForCurrentThread returns the PRNG owned by the calling OS thread,
// creating one seeded from the boot seed on first use. Go code that calls
// this must not park the goroutine on a different OS thread between draws
// within a single rounding decision (true in practice: one decision is a
// handful of arithmetic ops with no blocking call in between).
func rngForCurrentThread(bootSeed uint64) *PRNG {
	id := gettidFunc()
	tls.mu.Lock()
	defer tls.mu.Unlock()
	r, ok := tls.rngs[id]
	if !ok {
		r = NewPRNG(bootSeed ^ uint64(uint32(id)))
		tls.rngs[id] = r
	}
	return r
}

// Gettid exposes the platform thread-id hook (gettid on linux, a
// monotonic counter elsewhere) for callers deriving a seed the way
// interflop_verrou.cxx's init() does: tv_sec XOR tv_usec XOR gettid().
func Gettid() int {
	return gettidFunc()
}

// resetThreadLocalState discards all per-thread PRNG state; used by
// Context.SetSeed and Context.SetRandomSeed so that a seed takes effect immediately
// instead of only after a thread's state naturally falls out of use.
func resetThreadLocalState() {
	tls.mu.Lock()
	defer tls.mu.Unlock()
	tls.rngs = make(map[int]*PRNG)
}
