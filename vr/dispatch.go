package vr

import (
	"os"
	"strconv"
)

// DispatchLevel is the detected SIMD width class for this runtime, reused
// from the teacher library's CPU-dispatch idiom (hwy.DispatchLevel) to pick
// the binary32 lane count (4/8/16) that LaneWidthF32 reports, per spec.md §4.4.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel/currentWidth are set by init() in dispatch_<arch>.go.
var currentLevel DispatchLevel
var currentWidth int

// CurrentLevel returns the SIMD width class detected for this process.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the register width in bytes backing CurrentLevel.
func CurrentWidth() int { return currentWidth }

// LaneWidthF32 returns the binary32 lane count of the detected register
// width: currentWidth/4, clamped to the {4,8,16} family spec.md §4.4
// specifies. The Simd* functions in simd.go do not consult it.
func LaneWidthF32() int {
	lanes := currentWidth / 4
	switch {
	case lanes >= 16:
		return 16
	case lanes >= 8:
		return 8
	default:
		return 4
	}
}

// noSimdEnv checks VR_NO_SIMD, mirroring the teacher's HWY_NO_SIMD escape
// hatch for forcing scalar fallback (useful in tests and on unknown hosts).
func noSimdEnv() bool {
	val := os.Getenv("VR_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
