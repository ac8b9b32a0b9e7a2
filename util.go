package elheap

import "fmt"

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

// alignup round size up to the next multiple of Alignment.
func alignup(size int64) int64 {
	if mask := size & (Alignment - 1); mask != 0 {
		size += Alignment - mask
	}
	return size
}
