//go:build unix

package base

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// describeError resolves err as an errno. Codes without a known errno name
// are reported as undescribable so the caller formats its own fallback;
// syscall.Errno would otherwise invent an "errno N" string for them.
func describeError(err int) (string, bool) {
	e := syscall.Errno(err)
	if unix.ErrnoName(e) == "" {
		return "", false
	}
	return e.Error(), true
}
