//go:build !linux

package vr

import "sync/atomic"

// Non-Linux targets have no portable gettid equivalent exposed by
// golang.org/x/sys/unix. Falling back to a monotonically increasing
// per-call counter means every call gets its own PRNG rather than sharing
// one per OS thread; slightly more state churn than the Linux path but
// preserves the invariant that matters here (no data race on shared PRNG
// state), matching spec.md §9's "explicit map in environments that lack TLS".
var fallbackTidCounter int64

func init() {
	gettidFunc = func() int {
		return int(atomic.AddInt64(&fallbackTidCounter, 1))
	}
}
