package german

import (
	"github.com/skiffdb/german-strings/errors"
)

// Allocator provides stable storage for long string content.
// Implementations must return buffers that never move or shrink for the
// allocator's lifetime; the arena package provides the canonical one.
type Allocator interface {
	Alloc(n int) ([]byte, error)
}

// NewIn copies b into storage obtained from a and returns a value backed
// by that copy. Content that fits inline is stored in the value itself
// and a is never called. The returned value stays valid for as long as a
// retains its storage, independent of b.
func NewIn(a Allocator, b []byte) (String, error) {
	if uint64(len(b)) > MaxLen {
		return String{}, errors.Overflow(errors.OpNew, uint64(len(b)), MaxLen)
	}
	if len(b) <= MaxInline {
		return New(b)
	}
	buf, err := a.Alloc(len(b))
	if err != nil {
		return String{}, err
	}
	copy(buf, b)
	return New(buf)
}
