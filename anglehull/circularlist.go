// Package anglehull implements the rotating-caterpillar walk that produces
// the α-angle hull of a convex point set: the closed path of circular arcs
// from which the set subtends exactly the aperture angle α.
//
// # Overview
//
// The walk operates on the convex hull points in reversed order (so that
// entry navigation is counter-clockwise in screen space) wrapped in a
// [CircularList]. Two cursors crawl around the ring; every step advances at
// least one of them across a hull edge and emits one arc pair: the uncut arc, which
// overlaps its neighbors at the boundaries, and the cut arc, trimmed to
// approximately abut them. Hosts choose between the two via a
// [CuttingStrategy].
//
// # Preconditions
//
// The aperture must lie strictly inside (0°, 180°) and the hull must carry at
// least four distinct points; [New] rejects anything else with a
// [github.com/aerben/convex-hull.PreconditionError].
package anglehull

import (
	convexhull "github.com/aerben/convex-hull"
)

// CircularList is a read-only index-wrapping view over an ordered sequence of
// at least one element. It replaces a linked ring with a value type: an
// [Entry] is an (index, backing) pair whose next/prev navigation shifts the
// index by ±1 without reduction, and reduction to [0, N) happens only on
// access, using Python-style modulo. Indices may grow unboundedly and may be
// negative.
type CircularList[T comparable] struct {
	backing []T
}

// NewCircularList creates a circular view over a copy of the given backing
// sequence.
//
// Parameters:
//   - backing ([]T): The ordered sequence, at least one element.
//
// Returns:
//   - *CircularList[T]: The circular view.
//   - error: A [convexhull.PreconditionError] when the backing is empty.
func NewCircularList[T comparable](backing []T) (*CircularList[T], error) {
	if len(backing) == 0 {
		return nil, convexhull.PreconditionError{
			Op:     "anglehull.NewCircularList",
			Reason: "backing sequence is empty",
		}
	}
	copied := make([]T, len(backing))
	copy(copied, backing)
	return &CircularList[T]{backing: copied}, nil
}

// At returns the element at index i, where i is reduced into [0, N) with
// Python-style modulo: list.At(i) == backing[((i mod N) + N) mod N]. Any
// integer index, including negative ones, is valid.
func (l *CircularList[T]) At(i int) T {
	n := len(l.backing)
	return l.backing[((i%n)+n)%n]
}

// EntryAt returns an entry positioned at index i.
func (l *CircularList[T]) EntryAt(i int) Entry[T] {
	return Entry[T]{index: i, list: l}
}

// Len returns the length N of the backing sequence.
func (l *CircularList[T]) Len() int {
	return len(l.backing)
}

// Entry is a cursor into a [CircularList]: an (index, backing) pair. Entries
// are immutable values; navigation returns new entries. Two entries are equal
// when their contents are equal, regardless of their indices.
type Entry[T comparable] struct {
	index int
	list  *CircularList[T]
}

// Eq reports whether the two entries carry equal content. Entries at
// different indices holding equal elements are equal.
func (e Entry[T]) Eq(other Entry[T]) bool {
	return e.Value() == other.Value()
}

// Index returns the raw, unreduced index of the entry.
func (e Entry[T]) Index() int {
	return e.index
}

// Next returns the entry one position forward. The index grows without
// wrapping; reduction happens on access.
func (e Entry[T]) Next() Entry[T] {
	return Entry[T]{index: e.index + 1, list: e.list}
}

// Prev returns the entry one position backward.
func (e Entry[T]) Prev() Entry[T] {
	return Entry[T]{index: e.index - 1, list: e.list}
}

// Value returns the element the entry currently points at.
func (e Entry[T]) Value() T {
	return e.list.At(e.index)
}
