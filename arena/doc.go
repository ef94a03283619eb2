// Package arena provides the chunked storage that long string values
// borrow their content from.
//
// Values never own external content, so something must: an Arena hands
// out stable byte ranges from large reservations and releases them all
// at once on Reset. Typical use builds values straight into the arena:
//
//	a := arena.New()
//	v, err := a.NewString(content)
//
// The lifetime contract is one-directional. The arena does not know
// which values reference it; dropping the arena or calling Reset while
// values are still in use leaves them dangling.
package arena
