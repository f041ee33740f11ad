package smalloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestFreeNilIsNoop(t *testing.T) {
	h := newTestHeap(1 << 20)
	h.Free(nil) // must not panic
}

func TestFreeBeforeInitIsNoop(t *testing.T) {
	h := newTestHeap(1 << 20)
	h.Free(unsafe.Pointer(uintptr(0x1000))) // must not panic
}

func TestDoubleFreeIsIdempotent(t *testing.T) {
	h := newTestHeap(1 << 20)
	p := h.Alloc(100)
	require.NotNil(t, p)

	h.Free(p)
	checkInvariants(t, h)
	snapshot := h.Chunks()

	h.Free(p) // second Free of the same pointer: no-op
	checkInvariants(t, h)
	require.Equal(t, snapshot, h.Chunks())
}

func TestFreeRejectsOutOfRangePointer(t *testing.T) {
	h := newTestHeap(1 << 20)
	p := h.Alloc(100)
	require.NotNil(t, p)
	before := h.Chunks()

	far := unsafe.Pointer(uintptr(p) + 1<<30)
	h.Free(far)
	require.Equal(t, before, h.Chunks())
}

func TestFreeThenAllocSucceeds(t *testing.T) {
	h := newTestHeap(1 << 20)
	p := h.Alloc(64)
	require.NotNil(t, p)
	h.Free(p)
	checkInvariants(t, h)

	q := h.Alloc(64)
	require.NotNil(t, q, "Alloc after Free must succeed")
	checkInvariants(t, h)
}

// TestS3CoalesceOnFree reproduces spec.md §8.3 scenario S3.
func TestS3CoalesceOnFree(t *testing.T) {
	h := newTestHeap(1 << 20)
	a := h.Alloc(100)
	b := h.Alloc(2000)
	c := h.Alloc(108)
	d := h.Alloc(600)
	e := h.Alloc(72)
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.NotNil(t, c)
	require.NotNil(t, d)
	require.NotNil(t, e)

	h.Free(c)
	h.Free(e)
	h.Free(a)
	checkInvariants(t, h)

	chunks := h.Chunks()
	// b's Alloc grew the initial block's FREE remainder in place, so
	// a's chunk has no FREE neighbor to merge with and is FREE on its
	// own; c's chunk is FREE between b and d; e's chunk is the free
	// last chunk.
	require.True(t, chunks[0].Free)
	require.False(t, chunks[1].Free) // b
	require.True(t, chunks[2].Free)  // c
	require.False(t, chunks[3].Free) // d
	require.True(t, chunks[4].Free)  // e
}

// TestS4FirstFitAfterCoalesce reproduces spec.md §8.3 scenario S4.
func TestS4FirstFitAfterCoalesce(t *testing.T) {
	h := newTestHeap(1 << 20)
	a := h.Alloc(100)
	h.Alloc(2000)
	c := h.Alloc(108)
	h.Alloc(600)
	e := h.Alloc(72)

	h.Free(c)
	h.Free(e)
	h.Free(a)
	checkInvariants(t, h)

	sizeBefore := h.Chunks()[0].Size
	f := h.Alloc(52)
	require.NotNil(t, f)
	checkInvariants(t, h)

	chunks := h.Chunks()
	require.False(t, chunks[0].Free, "f should land in a's leading FREE chunk")
	require.Equal(t, 52, chunks[0].Size)
	require.True(t, sizeBefore > 52, "precondition: a's chunk must have had room")
}
