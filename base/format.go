// Package base provides small stateless helpers around caller-owned byte
// buffers: a bounded formatted writer with all-or-nothing truncation
// semantics, a platform-normalized error-code description helper, and a
// humanized timestamp helper.
//
// Every helper writes only within the supplied buffer and reserves its last
// usable byte for a NUL terminator, so a buffer populated here can be handed
// to C-style consumers unchanged. None of the helpers allocate on the
// success path beyond what the formatting itself requires, none retain a
// reference to the buffer after returning, and concurrent callers with
// distinct buffers never interfere.
package base

import "fmt"

// PrintToString formats args according to format and writes the result into
// buf followed by a NUL byte. len(buf) is the capacity, NUL included.
//
// On success the return value is the number of text bytes written, always
// strictly less than len(buf), and buf[n] == 0.
//
// If the formatted text (plus terminator) does not fit, the partial result
// is discarded: buf[0] is set to 0 and the return value is -1. Callers can
// therefore treat any non-negative return as "fully written". This is
// deliberately stricter than the usual snprintf convention of reporting the
// would-be length on truncation.
//
// A nil or zero-length buf performs no write and returns -1. The formatting
// itself cannot fail: a verb/operand mismatch renders fmt's annotated text
// (such as "%!d(string=x)") and is written like any other output.
func PrintToString(buf []byte, format string, args ...any) int {
	if len(buf) == 0 {
		return -1
	}
	out := fmt.Appendf(nil, format, args...)
	if len(out) >= len(buf) {
		// Cancels partially printed data.
		buf[0] = 0
		return -1
	}
	n := copy(buf, out)
	buf[n] = 0
	return n
}
