package smalloc

import (
	"io"
	"unsafe"
)

// defaultArenaCapacity bounds how far the default package-level heap's
// simulated break can grow.
const defaultArenaCapacity = 1 << 30 // 1 GiB

var defaultHeap *Heap

// defaultHeapOrNil lazily creates the process-wide default Heap used
// by the package-level Alloc/Free/Realloc/Calloc/Dump functions. Like
// the rest of this package it performs no synchronization: concurrent
// use from multiple goroutines is undefined, per spec.md §5.
func defaultHeapOrNil() *Heap {
	if defaultHeap != nil {
		return defaultHeap
	}
	b, err := NewOSBreak(defaultArenaCapacity)
	if err != nil {
		tracef("default heap: NewOSBreak failed: %v", err)
		return nil
	}
	defaultHeap = NewHeap(b)
	return defaultHeap
}

// Alloc allocates size bytes from the default heap. See Heap.Alloc.
func Alloc(size int) unsafe.Pointer {
	h := defaultHeapOrNil()
	if h == nil {
		return nil
	}
	return h.Alloc(size)
}

// Calloc allocates and zeroes size bytes from the default heap. See
// Heap.Calloc.
func Calloc(size int) unsafe.Pointer {
	h := defaultHeapOrNil()
	if h == nil {
		return nil
	}
	return h.Calloc(size)
}

// Free releases p back to the default heap. See Heap.Free.
func Free(p unsafe.Pointer) {
	h := defaultHeapOrNil()
	if h == nil {
		return
	}
	h.Free(p)
}

// Realloc resizes p to m bytes on the default heap. See Heap.Realloc.
func Realloc(p unsafe.Pointer, m int) unsafe.Pointer {
	h := defaultHeapOrNil()
	if h == nil {
		return nil
	}
	return h.Realloc(p, m)
}

// Dump writes a diagnostic rendering of the default heap to w. See
// Heap.Dump.
func Dump(w io.Writer) error {
	h := defaultHeapOrNil()
	if h == nil {
		return nil
	}
	return h.Dump(w)
}
