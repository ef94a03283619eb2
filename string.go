package german

import (
	"bytes"
	"encoding/binary"
	"math"
	"unsafe"

	// Long values store their buffer address outside any pointer-typed
	// field, which is only sound while the Go heap does not move objects.
	_ "go4.org/unsafe/assume-no-moving-gc"

	"github.com/skiffdb/german-strings/errors"
	"github.com/skiffdb/german-strings/internal/unsafex"
)

const (
	// Size is the exact footprint of a String value in bytes.
	Size = 16
	// MaxInline is the largest content length stored entirely inside the value.
	MaxInline = 12
	// PrefixLen is the number of content bytes a long value keeps inline.
	PrefixLen = 4
	// MaxLen is the largest content length a value can describe.
	MaxLen = math.MaxUint32
)

// ErrTooLong reports content longer than MaxLen bytes. Errors returned by
// the constructors match it via errors.Is.
var ErrTooLong = &errors.Error{
	Op:     errors.OpNew,
	Kind:   errors.KindOverflow,
	Detail: "content too long",
}

// String is a compact string value occupying exactly 16 bytes.
//
// Content up to MaxInline bytes is stored inside the value. Longer content
// is represented by its length, a PrefixLen-byte prefix, and a reference to
// an external buffer holding the full content. The value never owns that
// buffer: whoever constructed the value must keep the buffer alive and
// unchanged for as long as the value or any view returned by Bytes is in
// use. Freeing or mutating the buffer under a live value is a caller error
// that no method detects.
//
// Values are immutable after construction and safe for concurrent reads.
// Copying a value copies the reference, not the content.
type String struct {
	length uint32
	data   [MaxInline]byte
}

// New constructs a value describing b. Content up to MaxInline bytes is
// copied into the value; longer content is borrowed, and the caller must
// keep b alive and unchanged for the lifetime of the value. New fails
// only when len(b) exceeds MaxLen, in which case no value is produced.
func New(b []byte) (String, error) {
	if len(b) == 0 {
		return String{}, nil
	}
	return fromPtr(unsafe.Pointer(&b[0]), uint64(len(b)))
}

// NewFromString constructs a value describing s without copying long
// content. The caller must keep s reachable for the lifetime of the value;
// the value alone does not prevent collection of s's bytes.
func NewFromString(s string) (String, error) {
	return New(unsafex.Bytes(s))
}

// Must returns s or panics if err is non-nil. It simplifies construction
// from content known to be in range:
//
//	v := german.Must(german.New(b))
func Must(s String, err error) String {
	if err != nil {
		panic(err)
	}
	return s
}

// fromPtr builds a value over n content bytes starting at p. The length
// check runs before any memory is read.
func fromPtr(p unsafe.Pointer, n uint64) (String, error) {
	if n > MaxLen {
		return String{}, errors.Overflow(errors.OpNew, n, MaxLen)
	}
	s := String{length: uint32(n)}
	if n == 0 {
		return s, nil
	}
	if n <= MaxInline {
		copy(s.data[:], unsafe.Slice((*byte)(p), n))
		return s, nil
	}
	copy(s.data[:PrefixLen], unsafe.Slice((*byte)(p), PrefixLen))
	s.setRef(p)
	return s, nil
}

// setRef stores the content address of a long value in data[4:12],
// native endian.
func (s *String) setRef(p unsafe.Pointer) {
	binary.NativeEndian.PutUint64(s.data[PrefixLen:], uint64(uintptr(p)))
}

// ref reconstructs the content pointer of a long value. The pointed-to
// buffer must still be alive; the value itself never keeps it alive.
func (s *String) ref() unsafe.Pointer {
	up := uintptr(binary.NativeEndian.Uint64(s.data[PrefixLen:]))
	return *(*unsafe.Pointer)(unsafe.Pointer(&up))
}

// suffix returns the referenced content past the stored prefix of a long
// value.
func (s *String) suffix() []byte {
	return unsafe.Slice((*byte)(unsafe.Add(s.ref(), PrefixLen)), int(s.length)-PrefixLen)
}

// Len returns the content length in bytes.
func (s *String) Len() int {
	return int(s.length)
}

// Empty reports whether the value holds no content.
func (s *String) Empty() bool {
	return s.length == 0
}

// IsShort reports whether the content is stored entirely inside the value.
func (s *String) IsShort() bool {
	return s.length <= MaxInline
}

// IsLong reports whether the content lives in an external buffer. Exactly
// one of IsShort and IsLong holds for every value.
func (s *String) IsLong() bool {
	return s.length > MaxInline
}

// Bytes returns a view of exactly Len content bytes without copying.
// For long values the view aliases the external buffer, which must still
// be alive. The view is read-only; mutating it corrupts the value.
func (s *String) Bytes() []byte {
	n := int(s.length)
	if n <= MaxInline {
		return s.data[:n:n]
	}
	return unsafe.Slice((*byte)(s.ref()), n)
}

// Prefix returns the first PrefixLen content bytes, zero-padded when the
// content is shorter. It never reads referenced content.
func (s *String) Prefix() [PrefixLen]byte {
	var p [PrefixLen]byte
	copy(p[:], s.data[:PrefixLen])
	return p
}

// Equal reports whether s and o hold identical content. Differing lengths
// resolve immediately. Short values compare only their content bytes,
// never the padding. Long values compare the stored prefixes first and
// read referenced content only when the prefixes match.
func (s *String) Equal(o *String) bool {
	if s.length != o.length {
		return false
	}
	n := int(s.length)
	if n <= MaxInline {
		return bytes.Equal(s.data[:n], o.data[:n])
	}
	if !bytes.Equal(s.data[:PrefixLen], o.data[:PrefixLen]) {
		return false
	}
	return bytes.Equal(s.suffix(), o.suffix())
}

// HasPrefix reports whether the content begins with p. The empty candidate
// always matches; a candidate longer than the content never does. For long
// values, candidates up to PrefixLen bytes are decided against the stored
// prefix without reading referenced content.
func (s *String) HasPrefix(p []byte) bool {
	n := int(s.length)
	if len(p) > n {
		return false
	}
	if n <= MaxInline {
		return bytes.HasPrefix(s.data[:n], p)
	}
	k := min(len(p), PrefixLen)
	if !bytes.Equal(s.data[:k], p[:k]) {
		return false
	}
	if len(p) <= PrefixLen {
		return true
	}
	return bytes.Equal(s.suffix()[:len(p)-PrefixLen], p[PrefixLen:])
}

// HasPrefixString is HasPrefix for a string candidate.
func (s *String) HasPrefixString(p string) bool {
	return s.HasPrefix(unsafex.Bytes(p))
}

// String implements fmt.Stringer by copying the content into a new Go
// string. Unlike Bytes, the result does not alias any buffer.
func (s *String) String() string {
	return string(s.Bytes())
}
