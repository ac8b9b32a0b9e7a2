package elheap

import "fmt"
import "io"
import "unsafe"

import humanize "github.com/dustin/go-humanize"

// Info memory accounting for this heap. capacity is the configured
// mapping size, heap the bytes obtained from the OS (always the full
// mapping), alloc the bytes held by used blocks including their boundary
// tags, overhead the bytes spent on boundary tags across both lists.
func (heap *Heap) Info() (capacity, heapmem, alloc, overhead int64) {
	capacity, heapmem = heap.capacity, heap.capacity
	alloc = heap.used.bytes
	overhead = (heap.used.length + heap.avail.length) * Blockoverhead
	return
}

// Allocated bytes held by used blocks, including boundary tags.
func (heap *Heap) Allocated() int64 {
	return heap.used.bytes
}

// Available bytes held by available blocks, including boundary tags.
func (heap *Heap) Available() int64 {
	return heap.avail.bytes
}

// Utilization ratio of allocated bytes to heap capacity.
func (heap *Heap) Utilization() float64 {
	return float64(heap.used.bytes) / float64(heap.capacity)
}

// Stats list accounting, operation counters and the allocation size
// histogram for this heap.
func (heap *Heap) Stats() map[string]interface{} {
	return map[string]interface{}{
		"name":         heap.name,
		"capacity":     heap.capacity,
		"avail.length": heap.avail.length,
		"avail.bytes":  heap.avail.bytes,
		"used.length":  heap.used.length,
		"used.bytes":   heap.used.bytes,
		"n_allocs":     heap.n_allocs,
		"n_frees":      heap.n_frees,
		"n_splits":     heap.n_splits,
		"n_merges":     heap.n_merges,
		"h_allocs":     heap.h_allocs.Fullstats(),
	}
}

// Log vitals through the configured logger.
func (heap *Heap) Log() {
	capacity, _, alloc, overhead := heap.Info()
	fmsg := "%v capacity: %v alloc: %v overhead: %v utilization: %.2f%%"
	infof(fmsg, heap.logprefix, humanize.Bytes(uint64(capacity)),
		humanize.Bytes(uint64(alloc)), humanize.Bytes(uint64(overhead)),
		heap.Utilization()*100)
	infof("%v h_allocs: %v", heap.logprefix, heap.h_allocs.Logstring())
}

// Dump human readable report of the heap bounds and both block lists,
// read-only, consumed by allocator logic never. Addresses are runtime
// assigned, offsets are relative to heap start.
func (heap *Heap) Dump(w io.Writer) {
	fmt.Fprintf(w, "HEAP STATS (overhead per block: %v)\n", Blockoverhead)
	fmt.Fprintf(w, "heap_start:  %#x\n", heap.arena.start)
	fmt.Fprintf(w, "heap_end:    %#x\n", heap.arena.end)
	fmt.Fprintf(w, "total_bytes: %v\n", heap.capacity)
	fmt.Fprintf(w, "AVAILABLE LIST: ")
	heap.dumplist(w, heap.avail)
	fmt.Fprintf(w, "USED LIST: ")
	heap.dumplist(w, heap.used)
}

func (heap *Heap) dumplist(w io.Writer, list *blockList) {
	fmt.Fprintf(w, "{length: %3v  bytes: %5v}\n", list.length, list.bytes)
	i := 0
	for blk := list.begin.next; blk != list.end; blk = blk.next {
		off := uintptr(unsafe.Pointer(blk)) - heap.arena.start
		fmt.Fprintf(w, "  [%3v] head @ %p off %6v {state: %v  size: %5v}\n",
			i, unsafe.Pointer(blk), off, blk.state, blk.size)
		foot := blk.footer()
		fmt.Fprintf(w, "        foot @ %p {size: %5v}\n",
			unsafe.Pointer(foot), foot.size)
		i++
	}
}

// Validate walk the physical blocks and both lists checking boundary-tag
// and accounting invariants, panics on the first violation:
//
//   - every header size matches its footer size.
//   - no two physically adjacent blocks are both available.
//   - block bytes, payload plus overhead, sum up to the heap capacity.
//   - list length and byte accounting agree with the physical walk.
//   - members of the available and used lists carry the matching state.
func (heap *Heap) Validate() {
	if heap.arena == nil {
		panicerr("%v arena released", heap.logprefix)
	}
	var navail, nused, bavail, bused int64
	var prevstate blockstate
	for blk := heap.arena.firstblock(); blk != nil; blk = heap.arena.blockabove(blk) {
		if foot := blk.footer(); foot.size != blk.size {
			fmsg := "%v block %p footer size %v != header size %v"
			panicerr(fmsg, heap.logprefix, blk, foot.size, blk.size)
		}
		switch blk.state {
		case stateavailable:
			if prevstate == stateavailable {
				panicerr("%v adjacent available blocks at %p", heap.logprefix, blk)
			}
			navail, bavail = navail+1, bavail+blk.size+Blockoverhead
		case stateused:
			nused, bused = nused+1, bused+blk.size+Blockoverhead
		default:
			panicerr("%v block %p invalid state %v", heap.logprefix, blk, blk.state)
		}
		prevstate = blk.state
	}
	if navail != heap.avail.length || bavail != heap.avail.bytes {
		fmsg := "%v avail list accounts {%v %v}, heap walk {%v %v}"
		panicerr(fmsg, heap.logprefix,
			heap.avail.length, heap.avail.bytes, navail, bavail)
	}
	if nused != heap.used.length || bused != heap.used.bytes {
		fmsg := "%v used list accounts {%v %v}, heap walk {%v %v}"
		panicerr(fmsg, heap.logprefix,
			heap.used.length, heap.used.bytes, nused, bused)
	}
	if bavail+bused != heap.capacity {
		fmsg := "%v lost bytes, avail %v + used %v != capacity %v"
		panicerr(fmsg, heap.logprefix, bavail, bused, heap.capacity)
	}
	for blk := heap.avail.begin.next; blk != heap.avail.end; blk = blk.next {
		if blk.state != stateavailable {
			panicerr("%v block %p in avail list, state %v", heap.logprefix, blk, blk.state)
		}
	}
	for blk := heap.used.begin.next; blk != heap.used.end; blk = blk.next {
		if blk.state != stateused {
			panicerr("%v block %p in used list, state %v", heap.logprefix, blk, blk.state)
		}
	}
}
