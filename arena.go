package elheap

import "unsafe"

// Arena is the single mapping backing a heap. It records the bounds used
// for physical-neighbour navigation; it knows nothing about block lists.
type Arena struct {
	base     unsafe.Pointer
	start    uintptr
	end      uintptr
	capacity int64
}

// newarena obtain one private anonymous read+write mapping of capacity
// bytes. A non-zero mapaddress is a hard placement requirement.
func newarena(mapaddress uintptr, capacity int64) (*Arena, error) {
	if capacity < Blockoverhead {
		return nil, ErrorUndersized
	}
	base, err := osmmap(mapaddress, capacity)
	if err != nil {
		return nil, err
	}
	if mapaddress != 0 && uintptr(base) != mapaddress {
		osmunmap(base, capacity)
		return nil, ErrorMapaddress
	}
	arena := &Arena{
		base:     base,
		start:    uintptr(base),
		end:      uintptr(base) + uintptr(capacity),
		capacity: capacity,
	}
	return arena, nil
}

// release return the mapping to the OS and clear the recorded bounds.
func (arena *Arena) release() {
	if err := osmunmap(arena.base, arena.capacity); err != nil {
		errorf("arena release: %v", err)
	}
	arena.base, arena.start, arena.end = nil, 0, 0
	arena.capacity = 0
}

// firstblock header of the lowest block in the heap.
func (arena *Arena) firstblock() *blockHeader {
	return (*blockHeader)(arena.base)
}

// contains true for pointers that fall inside the mapping.
func (arena *Arena) contains(ptr unsafe.Pointer) bool {
	return uintptr(ptr) >= arena.start && uintptr(ptr) < arena.end
}

// blockabove header of the block physically above, found from this
// block's own size. Nil if block is the topmost block in the heap.
// Looks at adjacent memory, does not follow list links.
func (arena *Arena) blockabove(block *blockHeader) *blockHeader {
	ptr := unsafe.Add(unsafe.Pointer(block), Blockoverhead+block.size)
	if uintptr(ptr) >= arena.end {
		return nil
	}
	return (*blockHeader)(ptr)
}

// blockbelow header of the block physically below, found from the size
// recorded in the footer immediately under this block's header. Not a
// mirror of blockabove: the lower block's extent is known only to its
// own footer. Nil if block is the lowest block in the heap.
func (arena *Arena) blockbelow(block *blockHeader) *blockHeader {
	if uintptr(unsafe.Pointer(block)) == arena.start {
		return nil
	}
	foot := (*blockFooter)(unsafe.Add(unsafe.Pointer(block), -blockftrsize))
	return headerof(foot)
}
