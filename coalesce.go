package smalloc

// coalesce absorbs FREE neighbors into c: one leftward step (taking
// advantage of the invariant that a FREE chunk's left neighbor, if
// free, can never itself have a free left neighbor — coalesce always
// leaves the heap in that state), then a greedy rightward walk merging
// every consecutive FREE chunk until the first BUSY chunk or the end
// of the list.
func (h *Heap) coalesce(c *chunk) {
	if c.prev != nil && c.prev.isFree() {
		c = c.prev
	}

	var extra int
	r := c.next
	for r != nil && r.isFree() {
		extra += headerSize + r.size
		r = r.next
	}

	if extra > 0 {
		c.size += extra
		c.next = r
		if r != nil {
			r.prev = c
		} else {
			h.last = c
		}
	}
}
