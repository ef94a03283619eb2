// Package german implements a compact 16-byte string value for data-intensive
// engines.
//
// A String packs the content length and either the full content (up to 12
// bytes) or a 4-byte prefix plus a reference to external storage into a
// single 16-byte value. Engines that keep millions of strings in dense
// arrays get predictable memory use, and most comparisons resolve against
// the inline bytes without touching referenced storage.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	german-strings/      Root package with the String value and Allocator interface
//	├── arena/           Chunked append-only allocator that owns long content
//	├── dict/            Deduplicating dictionary of values over an arena
//	├── column/          Dense value vector with parallel scans
//	└── errors/          Structured error types for debugging
//
// # Value Layout
//
// Every String occupies exactly 16 bytes. The length field selects between
// two overlapping layouts; there is no separate discriminant:
//
//	offset  size  length <= 12 (short)     length > 12 (long)
//	0       4     length, native uint32    length, native uint32
//	4       12    content + padding        4-byte prefix, 8-byte reference
//
// Padding past the content of a short value is unspecified and never
// participates in comparisons.
//
// # Quick Start
//
// Construct values directly from borrowed bytes, or let an arena own the
// content:
//
//	a := arena.New()
//
//	name, err := a.NewString([]byte("This sentence does not fit in a short string"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(name.Len(), name.IsLong())       // 44 true
//	fmt.Println(name.HasPrefix([]byte("This")))  // true
//
// # Thread Safety
//
// Values are immutable after construction and safe for concurrent reads.
// The arena, dictionary, and column containers are NOT safe for concurrent
// mutation; either confine writes to one goroutine or synchronize them.
//
// # Memory Model
//
// A long value borrows its content. The reference is stored outside any
// pointer-typed field, so the garbage collector does not keep the buffer
// alive through the value: whoever constructed the value must keep the
// buffer reachable and unchanged for as long as the value or any view
// returned by Bytes is in use. The arena package is the intended owner;
// using a value after its arena is reset or unreachable is undefined
// behavior that no method detects.
package german
