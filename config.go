package elheap

import s "github.com/bnclabs/gosettings"

// Alignment allocation sizes are rounded up to multiples of Alignment,
// heap capacity should be a multiple of Alignment.
const Alignment = int64(8)

// Maxheapsize maximum size of a heap mapping.
const Maxheapsize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Defaultcapacity default size of a heap mapping. Can be overridden
// with the "capacity" setting.
const Defaultcapacity = int64(1024 * 1024)

// Defaultsettings for a heap instance.
//
// "capacity" (int64, default: <Defaultcapacity>)
//		Size of the heap mapping in bytes, must be a multiple of
//		Alignment. The heap is never resized.
//
// "mapaddress" (int64, default: 0)
//		Preferred address for the heap mapping. Zero lets the kernel
//		pick an address. With a non-zero address heap creation fails
//		unless the OS places the mapping exactly there.
func Defaultsettings() s.Settings {
	return s.Settings{
		"capacity":   Defaultcapacity,
		"mapaddress": int64(0),
	}
}

func validatesettings(setts s.Settings) {
	capacity := setts.Int64("capacity")
	if capacity > Maxheapsize {
		panicerr("heap cannot exceed %v bytes (%v)", Maxheapsize, capacity)
	} else if (capacity % Alignment) != 0 {
		panicerr("capacity %v is not multiple of %v", capacity, Alignment)
	}
}
