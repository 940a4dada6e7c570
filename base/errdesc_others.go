//go:build !unix && !windows

package base

// describeError has no platform error table to consult here; ErrorText
// formats its "unknown error <code>" fallback for every input.
func describeError(err int) (string, bool) {
	return "", false
}
