package column

import "sync"

// Match buffer pool for the scan hot path.

const (
	// Pool limits to prevent memory bloat
	poolMaxMatches  = 4096
	poolInitMatches = 64
)

var matchBufPool = sync.Pool{
	New: func() any {
		buf := make([]int, 0, poolInitMatches)
		return &buf
	},
}

func getMatchBuf() *[]int {
	return matchBufPool.Get().(*[]int)
}

func putMatchBuf(buf *[]int) {
	if buf == nil || cap(*buf) > poolMaxMatches {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	matchBufPool.Put(buf)
}
