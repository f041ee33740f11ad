// Copyright 2016 Andreu Carminati. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smalloc implements a user-space dynamic memory allocator.
//
// The heap is a single contiguous region obtained from the host
// operating system through a simulated program break and organized as
// a doubly-linked list of address-contiguous chunks, each carrying an
// inline boundary-tag header. Alloc, Free and Realloc mirror the
// classical C library triple: first-fit search, split on allocate,
// coalesce on free, and a break-growing fallback when no chunk fits.
//
// The zero value of Heap is not ready for use; call NewHeap. For
// simple programs that only need a single process-wide heap, use the
// package-level Alloc, Free, Realloc, Calloc and Dump functions, which
// lazily initialize a default Heap backed by an OS memory mapping
// (see NewOSBreak).
package smalloc

const trace = false
