package elheap

import "unsafe"

import "github.com/cloudfoundry/gosigar"
import "golang.org/x/sys/unix"

// osmmap one private anonymous read+write mapping. addr is a placement
// hint, the kernel is free to ignore it, callers that care must check
// the returned address.
func osmmap(addr uintptr, size int64) (unsafe.Pointer, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_PRIVATE | unix.MAP_ANON
	ptr, err := unix.MmapPtr(-1, 0, unsafe.Pointer(addr), uintptr(size), prot, flags)
	if err != nil {
		return nil, err
	}
	return ptr, nil
}

func osmunmap(ptr unsafe.Pointer, size int64) error {
	return unix.MunmapPtr(ptr, uintptr(size))
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
