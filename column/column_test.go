package column

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	german "github.com/skiffdb/german-strings"
	xerrors "github.com/skiffdb/german-strings/errors"
)

const (
	shortHit = "status/ok"
	longHit  = "status/deferred until the next maintenance window opens"
)

// fillColumn appends n rows of mixed short and long content and returns
// the raw contents in row order.
func fillColumn(t *testing.T, c *Column, n int) [][]byte {
	t.Helper()
	contents := make([][]byte, n)
	for i := 0; i < n; i++ {
		var s string
		switch {
		case i%7 == 0:
			s = shortHit
		case i%5 == 0:
			s = longHit
		default:
			s = fmt.Sprintf("row %d", i)
		}
		contents[i] = []byte(s)
		idx, err := c.Append(contents[i])
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
	return contents
}

func TestAppend(t *testing.T) {
	c := New()
	contents := fillColumn(t, c, 100)

	require.Equal(t, 100, c.Len())
	for i, want := range contents {
		assert.Equal(t, string(want), c.Value(i).String(), "row %d", i)
	}
}

func TestAppend_SourceReuse(t *testing.T) {
	c := New()
	buf := []byte(longHit)
	_, err := c.Append(buf)
	require.NoError(t, err)

	for i := range buf {
		buf[i] = '#'
	}
	assert.Equal(t, longHit, c.Value(0).String())
}

func TestAppendString(t *testing.T) {
	c := New()
	idx, err := c.AppendString(longHit)
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	v := c.Value(0)
	assert.True(t, v.IsLong())
	assert.Equal(t, longHit, v.String())
}

func TestAt(t *testing.T) {
	c := New()
	_, err := c.AppendString(shortHit)
	require.NoError(t, err)

	v, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, shortHit, v.String())

	for _, i := range []int{-1, 1, 100} {
		_, err := c.At(i)
		require.Error(t, err, "index %d", i)

		var e *xerrors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, xerrors.OpAt, e.Op)
		assert.Equal(t, xerrors.KindOutOfRange, e.Kind)
	}
}

func TestValue_PanicsOutOfRange(t *testing.T) {
	c := New()
	assert.Panics(t, func() { c.Value(0) })
}

func TestScanEqual(t *testing.T) {
	c := New()
	contents := fillColumn(t, c, 5000)

	for _, needle := range []string{shortHit, longHit} {
		nv := german.Must(german.NewFromString(needle))

		var want []int
		for i, b := range contents {
			if string(b) == needle {
				want = append(want, i)
			}
		}

		got, err := c.ScanEqual(context.Background(), &nv)
		require.NoError(t, err)
		assert.Equal(t, want, got, "needle %q", needle)
	}
}

func TestScanEqual_NoMatches(t *testing.T) {
	c := New()
	fillColumn(t, c, 5000)

	nv := german.Must(german.NewFromString("status/missing"))
	got, err := c.ScanEqual(context.Background(), &nv)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanPrefix(t *testing.T) {
	c := New()
	contents := fillColumn(t, c, 5000)

	// "stat" is decided by stored prefixes alone; the longer prefixes
	// force suffix walks on long rows.
	for _, prefix := range []string{"", "stat", "status/", "status/def", "row 4"} {
		var want []int
		for i, b := range contents {
			if bytes.HasPrefix(b, []byte(prefix)) {
				want = append(want, i)
			}
		}

		got, err := c.ScanPrefix(context.Background(), []byte(prefix))
		require.NoError(t, err)
		assert.Equal(t, want, got, "prefix %q", prefix)
	}
}

func TestScan_Cancelled(t *testing.T) {
	c := New()
	fillColumn(t, c, 5000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := c.ScanPrefix(ctx, []byte("status/"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestScan_EmptyColumn(t *testing.T) {
	c := New()
	got, err := c.ScanPrefix(context.Background(), []byte("anything"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFootprint(t *testing.T) {
	c := New()
	for i := 0; i < 3; i++ {
		_, err := c.AppendString(shortHit)
		require.NoError(t, err)
	}

	fp := c.Footprint()
	assert.Equal(t, 3, fp.Rows)
	assert.Equal(t, 3*german.Size, fp.SlabBytes)
	assert.Equal(t, 0, fp.ArenaBytes, "short rows stay inline")

	_, err := c.AppendString(longHit)
	require.NoError(t, err)

	fp = c.Footprint()
	assert.Equal(t, 4, fp.Rows)
	assert.Equal(t, 4*german.Size, fp.SlabBytes)
	assert.Equal(t, len(longHit), fp.ArenaBytes)
	assert.GreaterOrEqual(t, fp.ArenaCap, fp.ArenaBytes)
}
