package elheap

import "bytes"
import "testing"

import s "github.com/bnclabs/gosettings"
import "github.com/stretchr/testify/require"

func TestInfo(t *testing.T) {
	heap := newtestheap(t, 4096)
	defer heap.Release()

	capacity, heapmem, alloc, overhead := heap.Info()
	require.Equal(t, int64(4096), capacity)
	require.Equal(t, int64(4096), heapmem)
	require.Equal(t, int64(0), alloc)
	require.Equal(t, Blockoverhead, overhead)

	ptr := heap.Alloc(512)
	require.NotNil(t, ptr)
	_, _, alloc, overhead = heap.Info()
	require.Equal(t, 512+Blockoverhead, alloc)
	require.Equal(t, 2*Blockoverhead, overhead)
	require.InDelta(t, float64(512+Blockoverhead)/4096, heap.Utilization(), 1e-9)
}

func TestStats(t *testing.T) {
	heap := newtestheap(t, 4096)
	defer heap.Release()

	heap.Alloc(256)
	ptr := heap.Alloc(256)
	heap.Free(ptr)

	stats := heap.Stats()
	require.Equal(t, "test", stats["name"])
	require.Equal(t, int64(4096), stats["capacity"])
	require.Equal(t, int64(2), stats["n_allocs"])
	require.Equal(t, int64(1), stats["n_frees"])
	require.Equal(t, int64(2), stats["n_splits"])
	require.Equal(t, int64(1), stats["n_merges"])
	require.Equal(t, heap.avail.length, stats["avail.length"])
	require.Equal(t, heap.avail.bytes, stats["avail.bytes"])
	require.Equal(t, heap.used.length, stats["used.length"])
	require.Equal(t, heap.used.bytes, stats["used.bytes"])

	hstats := stats["h_allocs"].(map[string]interface{})
	require.Equal(t, int64(2), hstats["samples"])
	require.Equal(t, int64(256), hstats["min"])
	require.Equal(t, int64(256), hstats["max"])
}

func TestDump(t *testing.T) {
	heap, err := NewHeap("dump", s.Settings{"capacity": int64(4096)})
	require.NoError(t, err)
	defer heap.Release()

	heap.Alloc(128)
	var buf bytes.Buffer
	heap.Dump(&buf)
	out := buf.String()
	require.Contains(t, out, "HEAP STATS (overhead per block:")
	require.Contains(t, out, "total_bytes: 4096")
	require.Contains(t, out, "AVAILABLE LIST:")
	require.Contains(t, out, "USED LIST:")
	require.Contains(t, out, "{state: u  size:   128}")
	require.Contains(t, out, "{state: a  size:")
}
