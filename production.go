//go:build !debug

package elheap

func initblock(block uintptr, size int64) {
}
