package api

import "unsafe"

// Mallocer interface for custom memory management.
type Mallocer interface {
	// Alloc allocate a chunk of `n` bytes from the heap. Allocated
	// memory is always 64-bit aligned. Returns nil when no available
	// block can satisfy the request.
	Alloc(n int64) unsafe.Pointer

	// Free chunk back to the heap.
	Free(ptr unsafe.Pointer)

	// Release the heap and all its resources.
	Release()

	// Allocated number of bytes held by used blocks.
	Allocated() int64

	// Available number of bytes held by available blocks.
	Available() int64

	// Info of memory accounting for this heap.
	Info() (capacity, heap, alloc, overhead int64)

	// Utilization ratio between allocated bytes and capacity.
	Utilization() float64
}
