// Package elheap supplies an explicit-list memory allocator over a single
// fixed size heap obtained from the OS, with a limited scope:
//
//   - Types and Functions exported by this package are not thread safe.
//   - The heap is one contiguous anonymous mapping, acquired when the heap
//     is created and returned to the OS only when the heap is Released.
//   - Every block in the heap is bracketed by a boundary-tag pair, a header
//     and a footer carrying the block's payload size, so that physically
//     adjacent blocks can be reached by address arithmetic without walking
//     list links.
//   - Blocks are partitioned between two intrusive lists, one for available
//     blocks and one for used blocks. Allocation is first-fit over the
//     available list, splitting oversized blocks; freeing coalesces the
//     block with available physical neighbours on both sides.
//   - Allocation sizes are rounded up to 8-byte Alignment, memory handed
//     out by this package is always 64-bit aligned.
//   - There is no realloc style growth and no defragmentation beyond
//     immediate neighbour coalescing.
//
// A Heap is an explicit value, applications can create any number of
// independent heaps, each backed by its own mapping.
package elheap
