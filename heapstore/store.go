// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package heapstore implements the array-based 4-ary min-heap engine
// shared by the queue types in the parent package.
package heapstore

import "errors"

// 4-ary nodes make the tree shallower than binary, so sift-up does
// fewer comparisons; sift-down pays with a wider scan per level.
// Priorities and elements live in two parallel arrays, so the sift
// loops compare priorities without touching element memory.

// Both sifts carry the displaced pair in locals and write it exactly
// once into its final slot, instead of swapping it through every slot
// on the path.

const arity = 4
const minCapacity = 4

const healthChecks = false

// ErrEmpty is returned by PeekMin and ExtractMin when count == 0.
var ErrEmpty = errors.New("heapstore: container is empty")

type Store[E any, P any] struct {
	priorities []P // len(priorities) == len(elements) == capacity
	elements   []E
	count      int // slots [0, count) form a valid heap
	less       func(a, b P) bool
	moved      func(element E, slot int) // nil unless tracking, see NewTracked
}

// less is the priority order (min comes out first).
// size is the initial capacity, 0 is fine.
func New[E any, P any](less func(a, b P) bool, size int) *Store[E, P] {
	return &Store[E, P]{
		priorities: make([]P, size),
		elements:   make([]E, size),
		less:       less,
	}
}

// NewTracked is New plus a relocation hook: moved fires for every
// element placed into a slot, including during sifts, so a wrapper can
// maintain an element -> slot index without knowing heap internals.
func NewTracked[E any, P any](less func(a, b P) bool, size int, moved func(element E, slot int)) *Store[E, P] {
	s := New[E](less, size)
	s.moved = moved
	return s
}

func (s *Store[E, P]) Len() int { return s.count }
func (s *Store[E, P]) Cap() int { return len(s.priorities) }

func parentIndex(index int) int { return (index - 1) / arity }

func firstChildIndex(index int) int { return index*arity + 1 }

func (s *Store[E, P]) place(slot int, element E, priority P) {
	s.elements[slot] = element
	s.priorities[slot] = priority
	if s.moved != nil {
		s.moved(element, slot)
	}
}

func (s *Store[E, P]) clearSlot(slot int) {
	var element E
	var priority P
	s.elements[slot] = element // do not leave aliases
	s.priorities[slot] = priority
}

// Insert appends the pair at the logical end and sifts it up.
// Amortized O(log n); doubles capacity when full.
func (s *Store[E, P]) Insert(element E, priority P) {
	if s.count == len(s.priorities) {
		s.grow(s.count + 1)
	}
	index := s.count
	s.count++
	s.siftUp(index, element, priority)
	s.checkStore()
}

// PeekMin returns slot 0 without mutation.
func (s *Store[E, P]) PeekMin() (E, P, error) {
	if s.count == 0 {
		var element E
		var priority P
		return element, priority, ErrEmpty
	}
	return s.elements[0], s.priorities[0], nil
}

// ExtractMin removes and returns slot 0, moving the last valid slot
// into its place and sifting it down.
func (s *Store[E, P]) ExtractMin() (E, P, error) {
	if s.count == 0 {
		var element E
		var priority P
		return element, priority, ErrEmpty
	}
	element, priority := s.RemoveAt(0)
	return element, priority, nil
}

// ReplaceMin is extract+insert in a single sift-down pass. If the store
// is empty or priority is not greater than the current minimum, nothing
// is mutated and the arguments come back with replaced == false;
// otherwise the old minimum comes back with replaced == true.
func (s *Store[E, P]) ReplaceMin(element E, priority P) (E, P, bool) {
	if s.count == 0 || !s.less(s.priorities[0], priority) {
		return element, priority, false
	}
	oldElement, oldPriority := s.elements[0], s.priorities[0]
	s.siftDown(0, element, priority)
	s.checkStore()
	return oldElement, oldPriority, true
}

// BulkLoad appends all pairs unsorted, then restores the heap property
// in one bottom-up pass. O(n) total versus O(n log n) for repeated
// Insert. The slices must have equal length.
func (s *Store[E, P]) BulkLoad(elements []E, priorities []P) {
	if len(elements) != len(priorities) {
		panic("heapstore: parallel slices of different length")
	}
	if need := s.count + len(elements); need > len(s.priorities) {
		s.grow(need)
	}
	for i := range elements {
		s.place(s.count, elements[i], priorities[i])
		s.count++
	}
	s.heapify()
	s.checkStore()
}

// heapify sifts down every subtree root, deepest parents first. Leaves
// (slots past the parent of the last slot) are one-element heaps
// already.
func (s *Store[E, P]) heapify() {
	if s.count < 2 {
		return
	}
	for index := parentIndex(s.count - 1); index >= 0; index-- {
		s.siftDown(index, s.elements[index], s.priorities[index])
	}
}

// RemoveAt removes an arbitrary valid slot and returns its pair. The
// last slot's pair takes its place and is sifted in whichever direction
// restores the heap property: one comparison against the removed
// priority decides, since the replacement can violate order only on the
// side it moved toward.
func (s *Store[E, P]) RemoveAt(slot int) (E, P) {
	if slot < 0 || slot >= s.count {
		panic("heapstore: slot out of range")
	}
	element, priority := s.elements[slot], s.priorities[slot]
	last := s.count - 1
	lastElement, lastPriority := s.elements[last], s.priorities[last]
	s.clearSlot(last)
	s.count = last
	if slot != last {
		if s.less(priority, lastPriority) {
			s.siftDown(slot, lastElement, lastPriority)
		} else {
			s.siftUp(slot, lastElement, lastPriority)
		}
	}
	s.checkStore()
	return element, priority
}

// UpdateAt changes the priority of a valid slot and restores the heap
// property: smaller sifts up, larger sifts down, equal is a no-op.
func (s *Store[E, P]) UpdateAt(slot int, priority P) {
	if slot < 0 || slot >= s.count {
		panic("heapstore: slot out of range")
	}
	old := s.priorities[slot]
	switch {
	case s.less(priority, old):
		s.siftUp(slot, s.elements[slot], priority)
	case s.less(old, priority):
		s.siftDown(slot, s.elements[slot], priority)
	}
	s.checkStore()
}

// At returns the pair in a valid slot, array order, no mutation.
func (s *Store[E, P]) At(slot int) (E, P) {
	if slot < 0 || slot >= s.count {
		panic("heapstore: slot out of range")
	}
	return s.elements[slot], s.priorities[slot]
}

// Clear resets count and zeroes the vacated slots, so element values
// holding references do not keep their targets alive. Capacity is kept.
func (s *Store[E, P]) Clear() {
	clear(s.elements[:s.count])
	clear(s.priorities[:s.count])
	s.count = 0
}

// Reserve grows capacity to at least size, never shrinks.
// For latency-critical use call it up front to avoid reallocation.
func (s *Store[E, P]) Reserve(size int) {
	if size <= len(s.priorities) {
		return
	}
	s.reallocate(size)
}

// Compact shrinks capacity to count. Shrinking never happens
// implicitly.
func (s *Store[E, P]) Compact() {
	if s.count == len(s.priorities) {
		return
	}
	s.reallocate(s.count)
}

func (s *Store[E, P]) grow(need int) {
	capacity := len(s.priorities)
	if capacity == 0 {
		capacity = minCapacity
	}
	for capacity < need {
		capacity *= 2
	}
	s.reallocate(capacity)
}

func (s *Store[E, P]) reallocate(capacity int) {
	priorities := make([]P, capacity)
	elements := make([]E, capacity)
	copy(priorities, s.priorities[:s.count])
	copy(elements, s.elements[:s.count])
	s.priorities = priorities
	s.elements = elements
}

// siftUp carries (element, priority) from index toward the root,
// pulling larger parents down, and writes it once into its final slot.
func (s *Store[E, P]) siftUp(index int, element E, priority P) {
	for index > 0 {
		parent := parentIndex(index)
		if !s.less(priority, s.priorities[parent]) {
			break
		}
		s.place(index, s.elements[parent], s.priorities[parent])
		index = parent
	}
	s.place(index, element, priority)
}

// siftDown carries (element, priority) from index toward the leaves,
// pulling the smallest child up at each level. Equal-priority children
// resolve to the lowest index; deterministic, but not a contractual
// ordering.
func (s *Store[E, P]) siftDown(index int, element E, priority P) {
	for {
		first := firstChildIndex(index)
		if first >= s.count {
			break
		}
		last := first + arity
		if last > s.count {
			last = s.count
		}
		best := first
		for child := first + 1; child < last; child++ {
			if s.less(s.priorities[child], s.priorities[best]) {
				best = child
			}
		}
		if !s.less(s.priorities[best], priority) {
			break
		}
		s.place(index, s.elements[best], s.priorities[best])
		index = best
	}
	s.place(index, element, priority)
}

func (s *Store[E, P]) checkStore() {
	if !healthChecks {
		return
	}
	if err := s.WellFormed(); err != nil {
		panic(err)
	}
}

// WellFormed re-checks the heap property across all valid slots.
// Intended for tests and the healthChecks build.
func (s *Store[E, P]) WellFormed() error {
	if s.count < 0 || s.count > len(s.priorities) || len(s.priorities) != len(s.elements) {
		return errors.New("heapstore: count outside capacity")
	}
	for i := 1; i < s.count; i++ {
		if s.less(s.priorities[i], s.priorities[parentIndex(i)]) {
			return errors.New("heapstore: heap property violated")
		}
	}
	return nil
}
