// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package pqueue

import (
	"cmp"
	"iter"

	"github.com/hrissan/pqueue/heapstore"
)

// Pair is one (element, priority) entry for bulk construction.
type Pair[E any, P any] struct {
	Element  E
	Priority P
}

// Queue is a min-priority container without element identity: the same
// element may be pushed any number of times.
type Queue[E any, P any] struct {
	store   *heapstore.Store[E, P]
	version uint64 // bumped on every mutation, checked by All
}

// New creates an empty queue ordered by the natural order of P.
// size is the initial capacity, 0 is fine.
func New[E any, P cmp.Ordered](size int) *Queue[E, P] {
	return NewFunc[E](cmp.Less[P], size)
}

// NewFunc creates an empty queue ordered by less.
func NewFunc[E any, P any](less func(a, b P) bool, size int) *Queue[E, P] {
	return &Queue[E, P]{store: heapstore.New[E](less, size)}
}

// From creates a queue holding all pairs, heapified in one O(n) pass.
func From[E any, P cmp.Ordered](pairs []Pair[E, P]) *Queue[E, P] {
	return FromFunc[E](cmp.Less[P], pairs)
}

// FromFunc is From with an explicit priority order.
func FromFunc[E any, P any](less func(a, b P) bool, pairs []Pair[E, P]) *Queue[E, P] {
	q := NewFunc[E](less, len(pairs))
	q.PushAll(pairs)
	return q
}

func (q *Queue[E, P]) Len() int { return q.store.Len() }

// Push inserts the pair. Amortized O(log n).
func (q *Queue[E, P]) Push(element E, priority P) {
	q.store.Insert(element, priority)
	q.version++
}

// PushAll inserts all pairs and restores heap order in one bottom-up
// pass, O(n) versus O(n log n) for repeated Push.
func (q *Queue[E, P]) PushAll(pairs []Pair[E, P]) {
	if len(pairs) == 0 {
		return
	}
	elements := make([]E, len(pairs))
	priorities := make([]P, len(pairs))
	for i, pair := range pairs {
		elements[i] = pair.Element
		priorities[i] = pair.Priority
	}
	q.store.BulkLoad(elements, priorities)
	q.version++
}

// PeekMin returns the pair with the smallest priority without removing
// it. Returns ErrEmpty on an empty queue.
func (q *Queue[E, P]) PeekMin() (E, P, error) {
	return q.store.PeekMin()
}

// ExtractMin removes and returns the pair with the smallest priority.
// Returns ErrEmpty on an empty queue.
func (q *Queue[E, P]) ExtractMin() (E, P, error) {
	element, priority, err := q.store.ExtractMin()
	if err != nil {
		return element, priority, err
	}
	q.version++
	return element, priority, nil
}

// ReplaceMin removes the minimum and inserts the given pair in a single
// sift-down pass, cheaper than ExtractMin followed by Push. If the
// queue is empty or priority is not greater than the current minimum,
// nothing changes and the arguments come back with replaced == false.
func (q *Queue[E, P]) ReplaceMin(element E, priority P) (E, P, bool) {
	oldElement, oldPriority, replaced := q.store.ReplaceMin(element, priority)
	if replaced {
		q.version++
	}
	return oldElement, oldPriority, replaced
}

// Clear removes all pairs, releasing references held in the backing
// arrays. Capacity is kept.
func (q *Queue[E, P]) Clear() {
	q.store.Clear()
	q.version++
}

// Reserve grows capacity to at least size to avoid reallocation later.
func (q *Queue[E, P]) Reserve(size int) {
	q.store.Reserve(size)
}

// Compact shrinks the backing arrays to Len.
func (q *Queue[E, P]) Compact() {
	q.store.Compact()
}

// All yields the current pairs in backing-array order, which is NOT
// sorted order; only repeated ExtractMin yields sorted order. Any
// mutation of the queue during iteration panics with
// ErrConcurrentMutation at the next step.
func (q *Queue[E, P]) All() iter.Seq2[E, P] {
	return func(yield func(E, P) bool) {
		version := q.version
		for slot := 0; slot < q.store.Len(); slot++ {
			if q.version != version {
				panic(ErrConcurrentMutation)
			}
			element, priority := q.store.At(slot)
			if !yield(element, priority) {
				return
			}
		}
		if q.version != version {
			panic(ErrConcurrentMutation)
		}
	}
}

// WellFormed re-checks the heap property. Intended for tests.
func (q *Queue[E, P]) WellFormed() error {
	return q.store.WellFormed()
}
