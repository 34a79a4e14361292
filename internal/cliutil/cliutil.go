//go:build !windows

// Package cliutil holds small helpers shared by the command line tools.
package cliutil

import "golang.org/x/sys/unix"

// IsTty reports whether fd refers to a terminal.
func IsTty(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), ioctlReadTermios)
	return err == nil
}
