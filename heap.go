package smalloc

import "unsafe"

// Heap is a chunk-list memory heap. Its state — first, last, limit and
// whether initialization has run — is process-wide in the teacher and
// the original C source; here it is encapsulated in a value so a
// program (or a test) can run more than one heap over distinct Break
// instances, though the package-level default functions expose exactly
// one, matching spec.md's public API shape.
//
// A Heap must be constructed with NewHeap; its zero value is not ready
// for use.
type Heap struct {
	brk         Break
	initialized bool
	first       *chunk
	last        *chunk
	limit       unsafe.Pointer

	allocs int // live allocations, for diagnostics/tests only
}

// NewHeap returns a Heap that grows its arena through b.
func NewHeap(b Break) *Heap {
	return &Heap{brk: b}
}

// initialize performs the one-time lazy setup described in spec.md
// §4.1: grow the break by one header plus INITIAL_BLOCK_SIZE bytes and
// write a single FREE chunk spanning it.
func (h *Heap) initialize() bool {
	start, err := h.brk.Extend(headerSize + initialBlockSize)
	if err != nil {
		tracef("initialize: extend failed: %v", err)
		return false
	}

	c := chunkAt(start)
	c.flags = flagFree
	c.size = initialBlockSize
	c.prev = nil
	c.next = nil

	h.first = c
	h.last = c
	h.limit = h.brk.Current()
	h.initialized = true
	return true
}

// inRange reports whether c lies within [first, last], the range Free
// accepts a candidate header from.
func (h *Heap) inRange(c *chunk) bool {
	return addr(unsafe.Pointer(c)) >= addr(unsafe.Pointer(h.first)) &&
		addr(unsafe.Pointer(c)) <= addr(unsafe.Pointer(h.last))
}
