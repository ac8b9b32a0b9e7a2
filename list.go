package elheap

// blockList intrusive doubly linked list of block headers, anchored by
// begin/end sentinels so that insert and remove need no nil checks. The
// sentinels are ordinary Go values owned by the list, never part of the
// heap and never carrying real size or footer data. The list tracks its
// member count and their aggregate bytes, payload plus block overhead.
// It supplies no search primitive, scanning is layered on top.
type blockList struct {
	begin  *blockHeader
	end    *blockHeader
	length int64
	bytes  int64
}

func newblocklist() *blockList {
	list := &blockList{
		begin: &blockHeader{size: sizeuninit, state: statebegin},
		end:   &blockHeader{size: sizeuninit, state: stateend},
	}
	list.begin.next, list.begin.prev = list.end, nil
	list.end.next, list.end.prev = nil, list.begin
	return list
}

// pushfront splice block in immediately after the begin sentinel.
func (list *blockList) pushfront(block *blockHeader) {
	block.next = list.begin.next
	block.prev = list.begin
	block.next.prev = block
	list.begin.next = block
	list.length++
	list.bytes += block.size + Blockoverhead
}

// remove unsplice block using its own links. Caller guarantees that
// block is currently a member of this list, links are corrupted if it
// belongs to another list.
func (list *blockList) remove(block *blockHeader) {
	block.prev.next = block.next
	block.next.prev = block.prev
	block.next, block.prev = nil, nil
	list.length--
	list.bytes -= block.size + Blockoverhead
}
