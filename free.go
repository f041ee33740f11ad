package smalloc

import "unsafe"

// Free deallocates the payload at p, which must either be nil or a
// payload address previously returned by Alloc, Calloc or Realloc and
// not yet freed.
//
// Free is a silent no-op for nil, for addresses outside the heap's
// [first, last] chunk range, for addresses whose header carries
// neither FREE nor BUSY, and for chunks already FREE (double-free).
// This mirrors spec.md §4.2/§7 exactly: Free never reports these as
// errors, since the original it was distilled from doesn't either.
func (h *Heap) Free(p unsafe.Pointer) {
	if trace {
		defer func() { tracef("Free(%p)", p) }()
	}

	if p == nil || !h.initialized {
		return
	}

	c := chunkFromPayload(p)
	if !h.inRange(c) {
		return
	}
	if c.flags != flagFree && c.flags != flagBusy {
		return
	}
	if c.isFree() {
		return
	}

	c.flags = flagFree
	h.coalesce(c)
	h.allocs--
}
