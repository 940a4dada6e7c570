package base

// unknownError is the static fallback returned when no description can be
// produced at all, not even into the caller's buffer.
const unknownError = "unknown error"

// ErrorText returns a human-readable description of the platform error code
// err. The description is written into buf with PrintToString, so it is
// bounded by len(buf) and NUL-terminated there; the returned string holds
// the same text.
//
// Every integer input yields non-empty text. Codes the platform cannot
// describe produce "unknown error <code>"; if even that does not fit buf,
// the static fallback "unknown error" is returned and buf is left empty.
func ErrorText(err int, buf []byte) string {
	if desc, ok := describeError(err); ok {
		if n := PrintToString(buf, "%s", desc); n >= 0 {
			return string(buf[:n])
		}
	}
	if n := PrintToString(buf, "%s %d", unknownError, err); n >= 0 {
		return string(buf[:n])
	}
	return unknownError
}
