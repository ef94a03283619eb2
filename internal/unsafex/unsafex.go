// Package unsafex provides zero-copy conversions between strings and byte
// slices. Both directions alias the input memory: the result must be treated
// as read-only and must not outlive the input.
package unsafex

import "unsafe"

// String converts a byte slice to a string without copying.
// The string shares memory with b; b must not be modified while the
// string is reachable.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Bytes converts a string to a byte slice without copying.
// The slice shares memory with s and must be used for read-only
// operations only.
func Bytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
