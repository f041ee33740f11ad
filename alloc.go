package smalloc

import "unsafe"

// Alloc returns the address of a payload region of at least size
// bytes, or nil on failure. Alloc(0) always returns nil.
//
// The heap is lazily initialized on the first call. Dispatch then
// follows spec.md §4.1: reuse a first-fit FREE chunk (splitting off
// the remainder when it is itself a usable chunk), else grow a FREE
// last chunk in place, else append a brand new BUSY chunk past the
// current break.
func (h *Heap) Alloc(size int) unsafe.Pointer {
	var r unsafe.Pointer
	if trace {
		defer func() { tracef("Alloc(%#x) %p", size, r) }()
	}

	if size == 0 {
		return nil
	}

	if !h.initialized {
		if !h.initialize() {
			return nil
		}
	}

	need := roundSize(size)

	if c := h.findFreeChunk(need); c != nil {
		if rest := c.size - need; rest >= headerSize+minBlock {
			h.split(c, need)
		}
		c.flags = flagBusy
		h.allocs++
		r = c.payload()
		return r
	}

	if h.last.isFree() {
		extra := need - h.last.size
		if _, err := h.brk.Extend(extra); err != nil {
			tracef("Alloc: extend last failed: %v", err)
			return nil
		}
		h.last.size = need
		h.last.flags = flagBusy
		h.limit = h.brk.Current()
		h.allocs++
		r = h.last.payload()
		return r
	}

	start, err := h.brk.Extend(headerSize + need)
	if err != nil {
		tracef("Alloc: extend new failed: %v", err)
		return nil
	}

	c := chunkAt(start)
	c.flags = flagBusy
	c.size = need
	c.prev = h.last
	c.next = nil
	h.last.next = c
	h.last = c
	h.limit = h.brk.Current()
	h.allocs++
	r = c.payload()
	return r
}

// Calloc is like Alloc except the returned payload is zeroed.
func (h *Heap) Calloc(size int) unsafe.Pointer {
	p := h.Alloc(size)
	if p == nil {
		return nil
	}
	c := chunkFromPayload(p)
	b := unsafe.Slice((*byte)(p), c.size)
	for i := range b {
		b[i] = 0
	}
	return p
}
