//go:build windows

package base

import "golang.org/x/sys/windows"

// describeError resolves err as a Windows error code. Errno.Error goes
// through FormatMessage and falls back to a "winapi error" string itself,
// so every code is describable here.
func describeError(err int) (string, bool) {
	return windows.Errno(err).Error(), true
}
