package smalloc

import "unsafe"

// Realloc changes the size of the chunk backing p to m bytes,
// following spec.md §4.3: free-on-zero, Alloc-on-nil, an in-place
// shrink when the freed tail is itself a usable chunk, an unchanged
// return of p when the shrink is too small to carve off, in-place
// growth into a FREE successor (absorbing it entirely and extending
// the break if it's the last chunk and still short), in-place growth
// at the break when c is the last chunk, or — failing all of the
// above — relocation to a freshly allocated region with the old bytes
// copied over.
//
// m is normalized through the same rounding Alloc applies before any
// of the above is attempted, so invariant §3.3.4 (size is a multiple
// of granule and >= minBlock) still holds afterward.
func (h *Heap) Realloc(p unsafe.Pointer, m int) unsafe.Pointer {
	var r unsafe.Pointer
	if trace {
		defer func() { tracef("Realloc(%p, %#x) %p", p, m, r) }()
	}

	if m == 0 {
		h.Free(p)
		return nil
	}
	if p == nil {
		r = h.Alloc(m)
		return r
	}

	m = roundSize(m)

	c := chunkFromPayload(p)
	old := c.size
	d := m - old

	if d < 0 && -d >= headerSize+minBlock {
		h.split(c, m)
		r = p
		return r
	}
	if d < 0 {
		// The freed tail is too small to carve into its own chunk
		// (narrower than headerSize+minBlock): spec.md §4.3 leaves
		// the chunk unchanged and returns p rather than shrinking,
		// growing the break, or relocating.
		r = p
		return r
	}

	if n := c.next; n != nil && n.isFree() {
		rem := n.size - d
		switch {
		case rem > headerSize+minBlock:
			mv := chunkAt(unsafe.Pointer(uintptr(unsafe.Pointer(c)) + uintptr(headerSize) + uintptr(m)))
			mv.size = rem
			mv.flags = flagFree
			mv.next = n.next
			mv.prev = c
			c.next = mv
			c.size = m
			if mv.next != nil {
				mv.next.prev = mv
			} else {
				h.last = mv
			}
			r = p
			return r
		case n == h.last:
			// Absorbing n's header and payload can itself cover part or
			// all of the requested growth; only ask the break to extend
			// for whatever's still missing. The break never shrinks here
			// even when missing is negative -- spec.md's break is
			// monotonic -- so in that case c takes over n's whole
			// footprint and still ends exactly at the break.
			missing := d - (headerSize + n.size)
			size := m
			if missing > 0 {
				if _, err := h.brk.Extend(missing); err != nil {
					tracef("Realloc: extend into successor failed: %v", err)
					return nil
				}
				h.limit = h.brk.Current()
			} else {
				size = old + headerSize + n.size
			}
			c.next = nil
			c.size = size
			h.last = c
			r = p
			return r
		}
	}

	if c == h.last {
		if _, err := h.brk.Extend(d); err != nil {
			tracef("Realloc: extend at break failed: %v", err)
			return nil
		}
		c.size = m
		h.limit = h.brk.Current()
		r = p
		return r
	}

	nb := h.Alloc(m)
	if nb == nil {
		return nil
	}
	n := old
	if m < n {
		// The original this was distilled from always copies old
		// bytes here, which overruns the new, smaller region on a
		// shrinking relocation; copy only what fits instead.
		n = m
	}
	dst := unsafe.Slice((*byte)(nb), n)
	src := unsafe.Slice((*byte)(p), n)
	copy(dst, src)
	h.Free(p)
	r = nb
	return r
}
