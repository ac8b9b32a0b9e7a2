package elheap

import "unsafe"

// blockstate tags a block header. Real blocks in the heap are either
// available or used; begin and end mark list sentinels, which live
// outside the heap and never take part in boundary-tag arithmetic.
type blockstate int64

const (
	stateavailable blockstate = iota + 1
	stateused
	statebegin // list sentinel
	stateend   // list sentinel
)

func (state blockstate) String() string {
	switch state {
	case stateavailable:
		return "a"
	case stateused:
		return "u"
	case statebegin:
		return "b"
	case stateend:
		return "e"
	}
	return "?"
}

// sizeuninit size field of list sentinels, never a valid block size.
const sizeuninit = int64(-1)

// blockHeader is the boundary tag at the low address of a block, followed
// by size bytes of payload and the block's footer. For blocks inside the
// heap the header is a struct view over heap memory. The next/prev links
// belong to whichever block list currently owns the block.
type blockHeader struct {
	size  int64
	state blockstate
	next  *blockHeader
	prev  *blockHeader
}

// blockFooter is the boundary tag at the high address of a block. Its
// size field duplicates the header's, so that the block below a given
// header can be reached without following list links.
type blockFooter struct {
	size int64
}

const blockhdrsize = int64(unsafe.Sizeof(blockHeader{}))
const blockftrsize = int64(unsafe.Sizeof(blockFooter{}))

// Blockoverhead fixed number of bytes consumed by a block's header and
// footer, excluded from its usable payload size.
const Blockoverhead = blockhdrsize + blockftrsize

// footer locate this block's footer, blockhdrsize + size bytes above the
// header. Requires header.size to be already correct.
func (block *blockHeader) footer() *blockFooter {
	ptr := unsafe.Add(unsafe.Pointer(block), blockhdrsize+block.size)
	return (*blockFooter)(ptr)
}

// headerof locate the header owning foot. Not a mirror of footer(): the
// walk is downward from the footer's own address, by the footer's size
// field plus the header size. Requires foot.size to be already correct.
func headerof(foot *blockFooter) *blockHeader {
	ptr := unsafe.Add(unsafe.Pointer(foot), -(blockhdrsize + foot.size))
	return (*blockHeader)(ptr)
}

// payload start of the usable region, just past the header.
func (block *blockHeader) payload() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(block), blockhdrsize)
}

// setsize update the header size and write a matching footer.
func (block *blockHeader) setsize(size int64) {
	block.size = size
	block.footer().size = size
}
