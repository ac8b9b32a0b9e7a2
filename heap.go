package elheap

import "fmt"
import "unsafe"

import "github.com/bnclabs/elheap/api"
import "github.com/bnclabs/elheap/lib"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Heap single instance of the explicit-list allocator. All state that a
// classic implementation keeps in process globals lives here, so that
// independent heaps can coexist and be torn down in isolation.
type Heap struct {
	// 64-bit aligned stats
	n_allocs int64
	n_frees  int64
	n_splits int64
	n_merges int64

	name      string
	arena     *Arena
	avail     *blockList
	used      *blockList
	h_allocs  *lib.HistogramInt64
	setts     s.Settings
	logprefix string

	// settings
	capacity   int64
	mapaddress int64
}

var _ api.Mallocer = (*Heap)(nil)

// NewHeap create the heap mapping and seed it with a single available
// block spanning the whole mapping minus one block overhead. Returns
// ErrorUndersized when capacity cannot hold even that block, and
// ErrorMapaddress when a non-zero "mapaddress" cannot be honoured.
func NewHeap(name string, setts s.Settings) (*Heap, error) {
	heap := &Heap{name: name}
	heap.logprefix = fmt.Sprintf("HEAP [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	validatesettings(setts)
	heap.readsettings(setts)
	heap.setts = setts

	arena, err := newarena(uintptr(heap.mapaddress), heap.capacity)
	if err != nil {
		errorf("%v newarena failed: %v", heap.logprefix, err)
		return nil, err
	}
	heap.arena = arena
	heap.avail, heap.used = newblocklist(), newblocklist()
	heap.h_allocs = lib.NewhistogramInt64(Alignment, 4096, 256)

	block := arena.firstblock()
	block.state = stateavailable
	block.setsize(heap.capacity - Blockoverhead)
	heap.avail.pushfront(block)

	total, _, free := getsysmem()
	if uint64(heap.capacity) > free {
		fmsg := "%v capacity %v exceeds free system memory %v"
		warnf(fmsg, heap.logprefix, heap.capacity, free)
	}
	fmsg := "%v started capacity:%v sysmem total:%v free:%v"
	infof(fmsg, heap.logprefix, humanize.Bytes(uint64(heap.capacity)),
		humanize.Bytes(total), humanize.Bytes(free))
	return heap, nil
}

func (heap *Heap) readsettings(setts s.Settings) {
	heap.capacity = setts.Int64("capacity")
	heap.mapaddress = setts.Int64("mapaddress")
}

//---- operations

// Alloc return a pointer to a usable region of at least n bytes, nil if
// no available block can satisfy the request. Exhaustion is not fatal,
// freeing blocks makes their bytes reusable. Sizes are rounded up to
// Alignment, memory handed out is always 64-bit aligned.
func (heap *Heap) Alloc(n int64) unsafe.Pointer {
	if heap.arena == nil {
		panicerr("%v arena released", heap.logprefix)
	} else if n <= 0 {
		panicerr("%v Alloc size %v", heap.logprefix, n)
	}

	size := alignup(n)
	block := heap.findfirstavail(size)
	if block == nil {
		debugf("%v Alloc(%v) exhausted", heap.logprefix, n)
		return nil
	}
	heap.avail.remove(block)
	upper := heap.splitblock(block, size)
	block.state = stateused
	heap.used.pushfront(block)
	if upper != nil {
		upper.state = stateavailable
		heap.avail.pushfront(upper)
	}
	heap.n_allocs++
	heap.h_allocs.Add(size)

	ptr := block.payload()
	initblock(uintptr(ptr), size)
	return ptr
}

// Free release the block whose payload ptr points into the heap,
// coalescing it with available physical neighbours on both sides.
// Freeing a block that is already available is a no-op, double Free
// is idempotent.
func (heap *Heap) Free(ptr unsafe.Pointer) {
	if heap.arena == nil {
		panicerr("%v arena released", heap.logprefix)
	} else if ptr == nil {
		panicerr("%v Free(): nil pointer", heap.logprefix)
	}
	block := (*blockHeader)(unsafe.Add(ptr, -blockhdrsize))
	if !heap.arena.contains(unsafe.Pointer(block)) {
		panicerr("%v Free(): foreign pointer %p", heap.logprefix, ptr)
	}
	if block.state == stateavailable {
		return
	}
	heap.used.remove(block)
	block.state = stateavailable
	heap.avail.pushfront(block)
	// merge upward first: it grows this block in place, after which the
	// block below still sees it as its upper neighbour.
	heap.mergeabove(block)
	heap.mergeabove(heap.arena.blockbelow(block))
	heap.n_frees++
}

// Release return the heap mapping to the OS. The heap cannot be used
// after Release.
func (heap *Heap) Release() {
	if heap.arena == nil {
		panicerr("%v already released", heap.logprefix)
	}
	heap.arena.release()
	heap.arena, heap.avail, heap.used = nil, nil, nil
	infof("%v released", heap.logprefix)
}

//---- local functions

// findfirstavail first block in the available list, in list order, whose
// payload can hold size bytes. List order is LIFO from prior splits and
// frees, not address order.
func (heap *Heap) findfirstavail(size int64) *blockHeader {
	for blk := heap.avail.begin.next; blk != heap.avail.end; blk = blk.next {
		if blk.size >= size {
			return blk
		}
	}
	return nil
}

// splitblock cut block into a lower piece of exactly size bytes and an
// upper remainder carrying the rest, both with correct boundary tags,
// no byte lost or gained. Returns nil, leaving block untouched, when
// there is not enough room to carve the remainder's header and footer.
// Does no list linking.
func (heap *Heap) splitblock(block *blockHeader, size int64) *blockHeader {
	if block.size < size+Blockoverhead {
		return nil
	}
	origsize := block.size
	upperfoot := block.footer()
	block.setsize(size)
	upper := heap.arena.blockabove(block)
	upper.size = origsize - size - Blockoverhead
	upper.next, upper.prev = nil, nil
	upperfoot.size = upper.size
	heap.n_splits++
	return upper
}

// mergeabove collapse lower and its physical upper neighbour into one
// block when both exist and are available. The merged block keeps
// lower's header and takes over the upper neighbour's footer.
func (heap *Heap) mergeabove(lower *blockHeader) {
	if lower == nil || lower.state != stateavailable {
		return
	}
	higher := heap.arena.blockabove(lower)
	if higher == nil || higher.state != stateavailable {
		return
	}
	heap.avail.remove(lower)
	heap.avail.remove(higher)
	lower.setsize(lower.size + higher.size + Blockoverhead)
	heap.avail.pushfront(lower)
	heap.n_merges++
}
