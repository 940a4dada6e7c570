package base

import "time"

// TimestampError is the static fallback returned when the current time
// cannot be formatted into the caller's buffer.
const TimestampError = "error"

// Clock supplies the current time to HumanizedTimestamp and TimestampText.
// Tests swap it for a fixed time source.
var Clock = time.Now

// HumanizedTimestamp writes the current local time into buf formatted like
//
//	Mon Feb 17 13:22:05 2020
//
// and returns it. On failure (buf too small for any output) it returns the
// static string "error" and leaves buf holding an empty string.
func HumanizedTimestamp(buf []byte) string {
	return TimestampText(buf, time.ANSIC)
}

// TimestampText is HumanizedTimestamp with a caller-chosen layout in
// time.Format reference notation. The bounded-write contract is the same.
func TimestampText(buf []byte, layout string) string {
	n := PrintToString(buf, "%s", Clock().Local().Format(layout))
	if n < 0 {
		return TimestampError
	}
	return string(buf[:n])
}
