//go:build linux || darwin || freebsd

// Package sysutil carries the POSIX-only socket tuning the accept loop
// applies before binding, so a restart doesn't wait out TIME_WAIT.
package sysutil

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// SetReuseAddr sets SO_REUSEADDR on the socket referenced by fd.
func SetReuseAddr(fd uintptr) error {
	return unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
}

// Control is passed to net.ListenConfig.Control to apply SetReuseAddr
// before bind.
func Control(_, _ string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = SetReuseAddr(fd)
	})
	if err != nil {
		return err
	}
	return sockErr
}
