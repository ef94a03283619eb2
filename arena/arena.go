package arena

import (
	"math/bits"

	german "github.com/skiffdb/german-strings"
	"github.com/skiffdb/german-strings/errors"
	"github.com/skiffdb/german-strings/internal/unsafex"
)

const (
	// DefaultChunkSize is the reservation unit when none is configured.
	DefaultChunkSize = 64 << 10
	// MaxAlloc caps a single allocation.
	MaxAlloc = 1 << 30
)

// Arena is a chunked, append-only byte allocator. Returned slices never
// move and stay valid until Reset, which makes the arena the canonical
// owner of long string content: values built through NewString remain
// valid while the arena is reachable and not reset.
//
// An Arena is not safe for concurrent mutation. Reading previously
// returned slices is safe from any goroutine.
type Arena struct {
	chunks    [][]byte // every reservation, kept reachable for the arena's lifetime
	active    []byte   // chunk currently accepting small allocations
	off       int      // write offset into active
	used      int
	reserved  int
	chunkSize int
}

// New returns an arena with the default chunk size.
func New() *Arena {
	return NewSize(DefaultChunkSize)
}

// NewSize returns an arena that reserves memory in chunks of the given
// size, rounded up to a power of two. Sizes outside (0, MaxAlloc] fall
// back to the default.
func NewSize(chunkSize int) *Arena {
	if chunkSize <= 0 || chunkSize > MaxAlloc {
		chunkSize = DefaultChunkSize
	}
	if chunkSize&(chunkSize-1) != 0 {
		chunkSize = 1 << bits.Len(uint(chunkSize))
	}
	return &Arena{chunkSize: chunkSize}
}

// Alloc returns n uninitialized bytes of stable storage. Requests at or
// above the chunk size get a dedicated chunk; the active chunk keeps
// serving small requests. Alloc fails for negative sizes and for sizes
// above MaxAlloc.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 || n > MaxAlloc {
		return nil, errors.Allocation(errors.OpAlloc, n)
	}
	if n == 0 {
		return nil, nil
	}
	if n >= a.chunkSize {
		c := make([]byte, n)
		a.chunks = append(a.chunks, c)
		a.reserved += n
		a.used += n
		return c, nil
	}
	if len(a.active)-a.off < n {
		a.active = make([]byte, a.chunkSize)
		a.chunks = append(a.chunks, a.active)
		a.reserved += a.chunkSize
		a.off = 0
	}
	b := a.active[a.off : a.off+n : a.off+n]
	a.off += n
	a.used += n
	return b, nil
}

// Append copies b into the arena and returns the stable copy.
func (a *Arena) Append(b []byte) ([]byte, error) {
	buf, err := a.Alloc(len(b))
	if err != nil {
		return nil, err
	}
	copy(buf, b)
	return buf, nil
}

// AppendString copies s into the arena and returns the stable copy.
func (a *Arena) AppendString(s string) ([]byte, error) {
	return a.Append(unsafex.Bytes(s))
}

// NewString copies b into the arena and returns a value backed by the
// copy. Content that fits inline never touches the arena. The value
// stays valid until Reset.
func (a *Arena) NewString(b []byte) (german.String, error) {
	return german.NewIn(a, b)
}

// Len returns the content bytes handed out so far.
func (a *Arena) Len() int {
	return a.used
}

// Cap returns the bytes reserved across all chunks.
func (a *Arena) Cap() int {
	return a.reserved
}

// Chunks returns the number of reservations backing the arena.
func (a *Arena) Chunks() int {
	return len(a.chunks)
}

// Reset discards all storage. Every slice and every long value handed
// out before the call references released memory and must not be used
// again; nothing detects such use.
func (a *Arena) Reset() {
	a.chunks = nil
	a.active = nil
	a.off = 0
	a.used = 0
	a.reserved = 0
}
