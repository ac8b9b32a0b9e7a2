package elheap

import "testing"
import "unsafe"

func TestArenaBounds(t *testing.T) {
	arena, err := newarena(0, 4096)
	if err != nil {
		t.Fatalf("newarena: %v", err)
	}
	if x := arena.end - arena.start; x != 4096 {
		t.Errorf("expected %v, got %v", 4096, x)
	}
	if arena.contains(arena.base) == false {
		t.Errorf("heap_start should be inside the arena")
	}
	if arena.contains(unsafe.Add(arena.base, 4096)) == true {
		t.Errorf("heap_end should be outside the arena")
	}
	if x := uintptr(unsafe.Pointer(arena.firstblock())); x != arena.start {
		t.Errorf("expected %#x, got %#x", arena.start, x)
	}
	arena.release()
	if arena.base != nil || arena.start != 0 || arena.end != 0 {
		t.Errorf("release should clear recorded bounds")
	}
}

func TestArenaUndersized(t *testing.T) {
	if _, err := newarena(0, Blockoverhead-Alignment); err != ErrorUndersized {
		t.Errorf("expected %v, got %v", ErrorUndersized, err)
	}
	if _, err := newarena(0, 0); err != ErrorUndersized {
		t.Errorf("expected %v, got %v", ErrorUndersized, err)
	}
}
