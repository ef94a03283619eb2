package dict

import (
	"math"

	"github.com/cockroachdb/swiss"
	"go.uber.org/zap"

	german "github.com/skiffdb/german-strings"
	"github.com/skiffdb/german-strings/arena"
	"github.com/skiffdb/german-strings/errors"
	"github.com/skiffdb/german-strings/internal/unsafex"
)

// Handle identifies a value stored in a Dict. Handles are dense, start at
// zero, and stay valid until Reset.
type Handle uint32

const defaultIndexSize = 16

// Dict is a deduplicating dictionary of string values. Each distinct
// content is stored once: the bytes live in an arena the Dict owns, the
// values in a dense table addressed by Handle, and a hash index maps
// content back to its handle.
//
// Index keys alias the arena copy of the content, so deduplication costs
// no extra string allocations. A Dict is not safe for concurrent
// mutation; lookups and reads of returned values are safe concurrently
// once writes stop.
type Dict struct {
	arena *arena.Arena
	index *swiss.Map[string, Handle]
	vals  []german.String
	hits  uint64
	long  int
}

// New returns an empty dictionary with default sizing.
func New() *Dict {
	return NewSize(arena.DefaultChunkSize)
}

// NewSize returns an empty dictionary whose arena reserves memory in
// chunks of the given size.
func NewSize(chunkSize int) *Dict {
	return &Dict{
		arena: arena.NewSize(chunkSize),
		index: swiss.New[string, Handle](defaultIndexSize),
	}
}

// Put stores b's content and returns its handle. Content already present
// is not stored again: the existing handle is returned.
func (d *Dict) Put(b []byte) (Handle, error) {
	if h, ok := d.index.Get(unsafex.String(b)); ok {
		d.hits++
		return h, nil
	}
	if uint64(len(d.vals)) > math.MaxUint32 {
		return 0, errors.New(errors.OpPut, errors.KindOverflow).
			Value(len(d.vals)).
			Detail("dictionary full: handle space exhausted").
			Build()
	}

	// Content is copied into the arena even when it would fit inline:
	// the index key must alias storage that never moves.
	stable, err := d.arena.Append(b)
	if err != nil {
		return 0, errors.Wrap(errors.OpPut, errors.KindAllocation, err, "arena append")
	}
	s, err := german.New(stable)
	if err != nil {
		return 0, err
	}

	h := Handle(len(d.vals))
	d.vals = append(d.vals, s)
	d.index.Put(unsafex.String(stable), h)
	if s.IsLong() {
		d.long++
	}

	if n := len(d.vals); n >= 1024 && n&(n-1) == 0 {
		Logger().Debug("dictionary grew",
			zap.Int("entries", n),
			zap.Int("arena_bytes", d.arena.Len()),
			zap.Int("arena_cap", d.arena.Cap()))
	}
	return h, nil
}

// PutString stores s's content and returns its handle.
func (d *Dict) PutString(s string) (Handle, error) {
	return d.Put(unsafex.Bytes(s))
}

// Get returns the value for h. The pointer stays valid until Reset.
func (d *Dict) Get(h Handle) (*german.String, bool) {
	if int(h) >= len(d.vals) {
		return nil, false
	}
	return &d.vals[h], true
}

// Lookup returns the handle for content b without storing anything.
func (d *Dict) Lookup(b []byte) (Handle, bool) {
	return d.index.Get(unsafex.String(b))
}

// LookupString returns the handle for content s without storing anything.
func (d *Dict) LookupString(s string) (Handle, bool) {
	return d.index.Get(s)
}

// Len returns the number of distinct contents stored.
func (d *Dict) Len() int {
	return len(d.vals)
}

// PrefixScan calls fn for every value whose content begins with p, in
// handle order, until fn returns false. Values whose stored prefix
// already disproves p are skipped without reading arena content.
func (d *Dict) PrefixScan(p []byte, fn func(Handle, *german.String) bool) {
	for i := range d.vals {
		if d.vals[i].HasPrefix(p) {
			if !fn(Handle(i), &d.vals[i]) {
				return
			}
		}
	}
}

// Stats describes the dictionary's contents and storage.
type Stats struct {
	Entries    int
	Short      int
	Long       int
	DedupHits  uint64
	ArenaBytes int
	ArenaCap   int
}

// Stats returns a snapshot of the dictionary's storage accounting.
func (d *Dict) Stats() Stats {
	return Stats{
		Entries:    len(d.vals),
		Short:      len(d.vals) - d.long,
		Long:       d.long,
		DedupHits:  d.hits,
		ArenaBytes: d.arena.Len(),
		ArenaCap:   d.arena.Cap(),
	}
}

// Reset discards every entry and the storage behind them. Handles,
// values, and views handed out earlier become invalid.
func (d *Dict) Reset() {
	d.arena.Reset()
	d.index = swiss.New[string, Handle](defaultIndexSize)
	d.vals = d.vals[:0]
	d.hits = 0
	d.long = 0

	Logger().Debug("dictionary reset")
}
