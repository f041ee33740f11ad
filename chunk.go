package smalloc

import "unsafe"

const (
	// flagFree marks a chunk as available for reuse.
	flagFree uint32 = 0x1
	// flagBusy marks a chunk as handed out to a caller.
	flagBusy uint32 = 0x2

	// granule is the size alignment every chunk payload is rounded
	// up to.
	granule = 4

	// minBlock is the smallest payload size a chunk may carry.
	minBlock = 16

	// initialBlockSize is the payload size of the single chunk
	// created at heap initialization.
	initialBlockSize = 512
)

// chunk is the boundary-tag header at the start of every heap chunk.
// Its layout is fixed: flags, size, prev and next, immediately
// followed by size bytes of payload.
type chunk struct {
	flags uint32
	size  int
	prev  *chunk
	next  *chunk
}

// headerSize is the byte footprint of a chunk header.
var headerSize = int(unsafe.Sizeof(chunk{}))

// chunkAt reinterprets a raw address as a chunk header.
func chunkAt(p unsafe.Pointer) *chunk { return (*chunk)(p) }

// payload returns the address of c's payload, immediately following
// its header.
func (c *chunk) payload() unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(c)) + uintptr(headerSize))
}

// chunkFromPayload recovers the header address for a payload address
// previously handed out by Alloc or Realloc.
func chunkFromPayload(p unsafe.Pointer) *chunk {
	return chunkAt(unsafe.Pointer(uintptr(p) - uintptr(headerSize)))
}

// nextAddr is the address immediately following c's footprint — where
// the next chunk's header sits under address-contiguity.
func (c *chunk) nextAddr() unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(c)) + uintptr(headerSize) + uintptr(c.size))
}

func (c *chunk) isFree() bool { return c.flags == flagFree }
func (c *chunk) isBusy() bool { return c.flags == flagBusy }

// roundSize normalizes a requested payload size per spec.md §4.1:
// requests at or below minBlock become minBlock, larger requests are
// rounded up to the next multiple of granule.
func roundSize(n int) int {
	if n <= minBlock {
		return minBlock
	}
	if r := n % granule; r != 0 {
		n += granule - r
	}
	return n
}

// addr is a small helper for comparing/printing chunk addresses.
func addr(p unsafe.Pointer) uintptr { return uintptr(p) }
