//go:build linux

package vr

import "golang.org/x/sys/unix"

func init() {
	gettidFunc = unix.Gettid
}
