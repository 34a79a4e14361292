//go:build darwin || freebsd || netbsd || openbsd

package cliutil

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TIOCGETA
