package smalloc

import (
	"fmt"
	"io"
)

// ChunkInfo is a read-only snapshot of one chunk, as reported by Chunks.
type ChunkInfo struct {
	Size int
	Free bool
}

// Chunks walks the heap from first to last and returns a snapshot of
// every chunk's state. It never mutates the heap.
func (h *Heap) Chunks() []ChunkInfo {
	var out []ChunkInfo
	for c := h.first; c != nil; c = c.next {
		out = append(out, ChunkInfo{Size: c.size, Free: c.isFree()})
	}
	return out
}

// Dump writes a human-readable, arrow-joined rendering of the chunk
// list to w, one bracketed entry per chunk, e.g.
// "[BUSY: 100 bytes]----->[FREE: 396 bytes]". It is a read-only
// traversal and never mutates the heap.
func (h *Heap) Dump(w io.Writer) error {
	fmt.Fprintln(w, "##smalloc heap dump start")
	for c := h.first; c != nil; c = c.next {
		state := "BUSY"
		if c.isFree() {
			state = "FREE"
		}
		fmt.Fprintf(w, "[%s: %d bytes]", state, c.size)
		if c.next != nil {
			fmt.Fprint(w, "----->")
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "##smalloc heap dump end")
	return nil
}
