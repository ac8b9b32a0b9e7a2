//go:build debug

package elheap

import "unsafe"

// poisonbyte written over every allocated payload in debug builds,
// helps catch reads of uninitialized memory.
const poisonbyte = byte(0xAA)

func initblock(block uintptr, size int64) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(block)), size)
	for i := range dst {
		dst[i] = poisonbyte
	}
}
