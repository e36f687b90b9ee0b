//go:build !linux && !darwin && !freebsd

package sysutil

import "syscall"

// SetReuseAddr is a no-op on platforms without golang.org/x/sys/unix socket
// option support wired here.
func SetReuseAddr(fd uintptr) error { return nil }

// Control is a no-op net.ListenConfig.Control on unsupported platforms.
func Control(_, _ string, c syscall.RawConn) error {
	return c.Control(func(uintptr) {})
}
