//go:build !amd64 && !arm64

package vr

func init() {
	setScalarMode()
}
