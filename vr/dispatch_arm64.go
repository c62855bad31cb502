//go:build arm64

package vr

func init() {
	if noSimdEnv() {
		setScalarMode()
		return
	}
	// NEON is mandatory on arm64; 128-bit registers give 4 binary32 lanes.
	currentLevel = DispatchNEON
	currentWidth = 16
}
