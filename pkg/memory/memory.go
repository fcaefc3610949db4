// Package memory provides the memory primitives used by columnar arrays:
// an accounting [Allocator], typed [Buffer]s and [Bitmap]s.
//
// Memory is always obtained from the Go heap; the Allocator only keeps track
// of how much memory was requested through it so that callers can bound the
// memory used by an evaluation. A nil *Allocator is valid and performs no
// accounting.
package memory

// Allocator tracks the number of bytes requested by buffers and bitmaps
// created through it. Allocators can be nested with [NewAllocator]; bytes
// allocated by a child are also counted against every parent.
//
// Allocators are not safe for concurrent use.
type Allocator struct {
	parent *Allocator

	allocated int
	peak      int
	regions   int
}

// NewAllocator returns a new Allocator. If parent is non-nil, allocations
// made through the returned Allocator are also accounted to parent.
func NewAllocator(parent *Allocator) *Allocator {
	return &Allocator{parent: parent}
}

// Allocated returns the number of bytes currently accounted to alloc.
func (alloc *Allocator) Allocated() int {
	if alloc == nil {
		return 0
	}
	return alloc.allocated
}

// Peak returns the highest value of [Allocator.Allocated] since the last
// call to [Allocator.Reset].
func (alloc *Allocator) Peak() int {
	if alloc == nil {
		return 0
	}
	return alloc.peak
}

// Regions returns the number of allocations made through alloc since the
// last call to [Allocator.Reset].
func (alloc *Allocator) Regions() int {
	if alloc == nil {
		return 0
	}
	return alloc.regions
}

// Reset clears the accounting of alloc and releases the bytes it accounted
// from its parents. Memory handed out by alloc is left to the garbage
// collector; arrays built from it remain valid.
func (alloc *Allocator) Reset() {
	if alloc == nil {
		return
	}
	for p := alloc.parent; p != nil; p = p.parent {
		p.allocated -= alloc.allocated
	}
	alloc.allocated = 0
	alloc.peak = 0
	alloc.regions = 0
}

// track records a change of size bytes in alloc and all of its parents.
func (alloc *Allocator) track(size int) {
	for a := alloc; a != nil; a = a.parent {
		a.allocated += size
		a.peak = max(a.peak, a.allocated)
		if size > 0 {
			a.regions++
		}
	}
}
