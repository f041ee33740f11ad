// Copyright 2011 Evan Shaw. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE-MMAP-GO file.

// Modifications (c) 2026 The Smalloc Authors.

//go:build darwin || dragonfly || freebsd || linux || openbsd || solaris || netbsd

package smalloc

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// unixBreak simulates a growable program break on top of a single
// anonymous mapping reserved up front. Reserving the whole capacity in
// one mmap call, rather than remapping on every Extend, guarantees the
// break never moves once handed out, which the allocator's chunk
// pointers depend on.
type unixBreak struct {
	region []byte
	brk    int
}

// NewOSBreak returns a Break backed by a real anonymous mmap mapping
// capable of growing up to capacity bytes.
func NewOSBreak(capacity int) (Break, error) {
	region, err := unix.Mmap(-1, 0, capacity, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("smalloc: mmap reservation failed: %w", err)
	}
	return &unixBreak{region: region}, nil
}

func (b *unixBreak) base() unsafe.Pointer {
	if len(b.region) == 0 {
		return nil
	}
	return unsafe.Pointer(&b.region[0])
}

func (b *unixBreak) Current() unsafe.Pointer {
	return unsafe.Pointer(uintptr(b.base()) + uintptr(b.brk))
}

func (b *unixBreak) Extend(delta int) (unsafe.Pointer, error) {
	if delta < 0 || b.brk+delta > len(b.region) {
		return nil, ErrOutOfMemory
	}
	prev := b.Current()
	b.brk += delta
	return prev, nil
}

// Close releases the reserved mapping. It is not necessary to Close an
// OS-backed Break when exiting a process.
func (b *unixBreak) Close() error {
	if len(b.region) == 0 {
		return nil
	}
	region := b.region
	b.region = nil
	b.brk = 0
	return unix.Munmap(region)
}
