//go:build amd64

package vr

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd there is no portable way to issue real AVX2/
// AVX-512 instructions from Go source, matching the teacher's own
// dispatch_amd64.go fallback comment; CPU feature detection still picks the
// widest lane count the CPU supports, which LaneWidthF32 reports. No vector
// instruction is issued, and simd.go's batching does not depend on it.
func init() {
	if noSimdEnv() {
		setScalarMode()
		return
	}
	switch {
	case cpu.X86.HasAVX512F:
		currentLevel = DispatchAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
	default:
		currentLevel = DispatchSSE2
		currentWidth = 16
	}
}
