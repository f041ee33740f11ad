package smalloc

import "unsafe"

// split divides c into a left chunk of exactly size bytes and a right
// FREE remainder. The caller must ensure c.size >= size+headerSize+
// minBlock before calling. Alloc calls this on a FREE chunk it's about
// to mark BUSY; Realloc's shrink path calls it on an already-BUSY
// chunk. Either way split never touches c's own flags — only the new
// right sibling's — leaving any flag transition on c to the caller.
func (h *Heap) split(c *chunk, size int) {
	rest := c.size - size - headerSize
	c.size = size

	n := chunkAt(unsafe.Pointer(uintptr(unsafe.Pointer(c)) + uintptr(headerSize) + uintptr(size)))
	n.size = rest
	n.flags = flagFree
	n.prev = c
	n.next = c.next

	c.next = n
	if n.next != nil {
		n.next.prev = n
	} else {
		h.last = n
	}
}
