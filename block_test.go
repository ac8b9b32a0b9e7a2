package elheap

import "testing"
import "unsafe"

func TestFooterHeader(t *testing.T) {
	heap := newtestheap(t, 4096)
	defer heap.Release()

	block := heap.arena.firstblock()
	if x := int64(4096) - Blockoverhead; block.size != x {
		t.Errorf("expected %v, got %v", x, block.size)
	}
	foot := block.footer()
	if foot.size != block.size {
		t.Errorf("expected %v, got %v", block.size, foot.size)
	}
	if head := headerof(foot); head != block {
		t.Errorf("expected %p, got %p", block, head)
	}
	if x := uintptr(unsafe.Pointer(foot)) + uintptr(blockftrsize); x != heap.arena.end {
		t.Errorf("footer should end at heap_end, got %#x", x)
	}
}

func TestBlockAboveBelow(t *testing.T) {
	heap := newtestheap(t, 4096)
	defer heap.Release()
	arena := heap.arena

	p1, p2, p3 := heap.Alloc(128), heap.Alloc(256), heap.Alloc(512)
	b1 := (*blockHeader)(unsafe.Add(p1, -blockhdrsize))
	b2 := (*blockHeader)(unsafe.Add(p2, -blockhdrsize))
	b3 := (*blockHeader)(unsafe.Add(p3, -blockhdrsize))

	if arena.blockbelow(b1) != nil {
		t.Errorf("expected no block below the lowest block")
	}
	if x := arena.blockabove(b1); x != b2 {
		t.Errorf("expected %p, got %p", b2, x)
	}
	if x := arena.blockabove(b2); x != b3 {
		t.Errorf("expected %p, got %p", b3, x)
	}
	// blockbelow recovers the lower block from its footer, even though
	// the neighbours differ in size
	if x := arena.blockbelow(b2); x != b1 {
		t.Errorf("expected %p, got %p", b1, x)
	}
	if x := arena.blockbelow(b3); x != b2 {
		t.Errorf("expected %p, got %p", b2, x)
	}

	var last *blockHeader
	for blk := arena.firstblock(); blk != nil; blk = arena.blockabove(blk) {
		last = blk
	}
	if last.state != stateavailable {
		t.Errorf("topmost block should be the split remainder")
	}
	if x := arena.blockbelow(last); x != b3 {
		t.Errorf("expected %p, got %p", b3, x)
	}
}
