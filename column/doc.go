// Package column provides a dense, scannable vector of string values.
//
// Every row occupies exactly 16 bytes in one contiguous slab, so scans
// walk memory linearly regardless of content length. Long content lives
// in an arena owned by the column; short content is inlined in the slab
// itself. Equality and prefix scans reject most non-matching rows from
// the slab alone, without touching arena memory.
package column
