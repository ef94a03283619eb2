package column

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	german "github.com/skiffdb/german-strings"
	"github.com/skiffdb/german-strings/arena"
	"github.com/skiffdb/german-strings/errors"
	"github.com/skiffdb/german-strings/internal/unsafex"
)

const (
	// scanShardRows is the minimum rows per scan shard; smaller columns
	// scan on the calling goroutine.
	scanShardRows = 2048
	// cancelCheckRows bounds how many rows a shard processes between
	// context checks. Must be a power of two.
	cancelCheckRows = 1024
)

// Column is a dense vector of string values. Rows occupy exactly 16
// bytes each in one contiguous slab; long content lives in an arena the
// column owns. Appends are single-writer, scans read-only: once writes
// stop, any number of goroutines may scan concurrently.
type Column struct {
	arena *arena.Arena
	vals  []german.String
}

// New returns an empty column with default arena sizing.
func New() *Column {
	return NewSize(arena.DefaultChunkSize)
}

// NewSize returns an empty column whose arena reserves memory in chunks
// of the given size.
func NewSize(chunkSize int) *Column {
	return &Column{arena: arena.NewSize(chunkSize)}
}

// Append adds a row holding b's content and returns its row index.
// The content is copied; b may be reused afterwards.
func (c *Column) Append(b []byte) (int, error) {
	s, err := c.arena.NewString(b)
	if err != nil {
		return 0, err
	}
	c.vals = append(c.vals, s)
	return len(c.vals) - 1, nil
}

// AppendString adds a row holding s's content and returns its row index.
func (c *Column) AppendString(s string) (int, error) {
	return c.Append(unsafex.Bytes(s))
}

// Len returns the number of rows.
func (c *Column) Len() int {
	return len(c.vals)
}

// Value returns the value at row i. Like slice indexing, it panics when
// i is out of range; use At for a checked lookup.
func (c *Column) Value(i int) *german.String {
	return &c.vals[i]
}

// At returns the value at row i, or an out-of-range error.
func (c *Column) At(i int) (*german.String, error) {
	if i < 0 || i >= len(c.vals) {
		return nil, errors.OutOfRange(errors.OpAt, i, len(c.vals))
	}
	return &c.vals[i], nil
}

// ScanEqual returns the indexes of all rows whose content equals needle,
// in ascending row order. Large columns scan in parallel shards.
func (c *Column) ScanEqual(ctx context.Context, needle *german.String) ([]int, error) {
	return c.scan(ctx, func(v *german.String) bool { return v.Equal(needle) })
}

// ScanPrefix returns the indexes of all rows whose content begins with
// p, in ascending row order. Rows whose stored prefix disproves p are
// rejected without reading arena content.
func (c *Column) ScanPrefix(ctx context.Context, p []byte) ([]int, error) {
	return c.scan(ctx, func(v *german.String) bool { return v.HasPrefix(p) })
}

func (c *Column) scan(ctx context.Context, match func(*german.String) bool) ([]int, error) {
	n := len(c.vals)
	if n == 0 {
		return nil, nil
	}

	shards := (n + scanShardRows - 1) / scanShardRows
	if p := runtime.GOMAXPROCS(0); shards > p {
		shards = p
	}
	if shards <= 1 {
		return c.scanRange(ctx, 0, n, match)
	}

	parts := make([][]int, shards)
	step := (n + shards - 1) / shards
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < shards; i++ {
		lo := i * step
		hi := min(lo+step, n)
		if lo >= hi {
			break
		}
		i := i
		g.Go(func() error {
			part, err := c.scanRange(gctx, lo, hi, match)
			if err != nil {
				return err
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []int
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}

// scanRange scans rows [lo, hi) on the calling goroutine, checking for
// cancellation between blocks of rows.
func (c *Column) scanRange(ctx context.Context, lo, hi int, match func(*german.String) bool) ([]int, error) {
	buf := getMatchBuf()
	local := (*buf)[:0]
	for j := lo; j < hi; j++ {
		if j&(cancelCheckRows-1) == 0 {
			if err := ctx.Err(); err != nil {
				putMatchBuf(buf)
				return nil, err
			}
		}
		if match(&c.vals[j]) {
			local = append(local, j)
		}
	}

	var out []int
	if len(local) > 0 {
		out = make([]int, len(local))
		copy(out, local)
	}
	*buf = local
	putMatchBuf(buf)
	return out, nil
}

// Footprint describes the memory a column occupies.
type Footprint struct {
	Rows       int
	SlabBytes  int // dense value storage, 16 bytes per row
	ArenaBytes int // long content owned by the arena
	ArenaCap   int // bytes reserved by the arena
}

// Footprint returns the column's storage accounting.
func (c *Column) Footprint() Footprint {
	return Footprint{
		Rows:       len(c.vals),
		SlabBytes:  len(c.vals) * german.Size,
		ArenaBytes: c.arena.Len(),
		ArenaCap:   c.arena.Cap(),
	}
}
