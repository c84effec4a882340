// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package pqueue

import (
	"cmp"
	"errors"
	"iter"

	"github.com/hrissan/pqueue/heapstore"
)

// IndexedQueue is a min-priority container that tracks element
// identity: each key is present at most once, and any tracked key can
// be removed or repriced in O(log n) without extracting everything
// above it.
//
// The position map is kept in sync by the store's relocation hook, so
// every sift step that moves a key also moves its index entry.
type IndexedQueue[K comparable, P any] struct {
	store    *heapstore.Store[K, P]
	position map[K]int // exact inverse of the store's element array
	version  uint64
}

// NewIndexed creates an empty indexed queue ordered by the natural
// order of P. size is the initial capacity, 0 is fine.
func NewIndexed[K comparable, P cmp.Ordered](size int) *IndexedQueue[K, P] {
	return NewIndexedFunc[K](cmp.Less[P], size)
}

// NewIndexedFunc creates an empty indexed queue ordered by less.
func NewIndexedFunc[K comparable, P any](less func(a, b P) bool, size int) *IndexedQueue[K, P] {
	q := &IndexedQueue[K, P]{position: make(map[K]int, size)}
	q.store = heapstore.NewTracked[K](less, size, func(key K, slot int) {
		q.position[key] = slot
	})
	return q
}

// IndexedFrom creates an indexed queue holding all pairs, heapified in
// one O(n) pass. Returns ErrDuplicateElement if a key occurs twice.
func IndexedFrom[K comparable, P cmp.Ordered](pairs []Pair[K, P]) (*IndexedQueue[K, P], error) {
	return IndexedFromFunc[K](cmp.Less[P], pairs)
}

// IndexedFromFunc is IndexedFrom with an explicit priority order.
func IndexedFromFunc[K comparable, P any](less func(a, b P) bool, pairs []Pair[K, P]) (*IndexedQueue[K, P], error) {
	q := NewIndexedFunc[K](less, len(pairs))
	keys := make([]K, len(pairs))
	priorities := make([]P, len(pairs))
	for i, pair := range pairs {
		keys[i] = pair.Element
		priorities[i] = pair.Priority
	}
	q.store.BulkLoad(keys, priorities)
	// duplicate keys collapse into one index entry; the queue never
	// escapes in that state
	if len(q.position) != len(pairs) {
		return nil, ErrDuplicateElement
	}
	return q, nil
}

func (q *IndexedQueue[K, P]) Len() int { return q.store.Len() }

// Insert adds a key that must not be tracked yet; inserting a tracked
// key returns ErrDuplicateElement with the queue unchanged.
func (q *IndexedQueue[K, P]) Insert(key K, priority P) error {
	if _, ok := q.position[key]; ok {
		return ErrDuplicateElement
	}
	q.store.Insert(key, priority)
	q.version++
	return nil
}

// TryRemove removes the key wherever it sits in the heap. Returns false
// if the key is not tracked; absence is an expected outcome, not an
// error.
func (q *IndexedQueue[K, P]) TryRemove(key K) bool {
	slot, ok := q.position[key]
	if !ok {
		return false
	}
	delete(q.position, key)
	q.store.RemoveAt(slot)
	q.version++
	return true
}

// TryUpdate changes the priority of a tracked key: decrease-key and
// increase-key in one primitive. Returns false if the key is not
// tracked. An equal priority is a no-op.
func (q *IndexedQueue[K, P]) TryUpdate(key K, priority P) bool {
	slot, ok := q.position[key]
	if !ok {
		return false
	}
	q.store.UpdateAt(slot, priority)
	q.version++
	return true
}

// EnqueueOrUpdate inserts the key if absent, otherwise reprices it.
// Never fails.
func (q *IndexedQueue[K, P]) EnqueueOrUpdate(key K, priority P) {
	if q.TryUpdate(key, priority) {
		return
	}
	q.store.Insert(key, priority)
	q.version++
}

// Contains reports whether the key is tracked. O(1), no mutation.
func (q *IndexedQueue[K, P]) Contains(key K) bool {
	_, ok := q.position[key]
	return ok
}

// PriorityOf returns the current priority of a tracked key.
func (q *IndexedQueue[K, P]) PriorityOf(key K) (P, bool) {
	slot, ok := q.position[key]
	if !ok {
		var priority P
		return priority, false
	}
	_, priority := q.store.At(slot)
	return priority, true
}

// PeekMin returns the tracked key with the smallest priority without
// removing it. Returns ErrEmpty on an empty queue.
func (q *IndexedQueue[K, P]) PeekMin() (K, P, error) {
	return q.store.PeekMin()
}

// ExtractMin removes and returns the tracked key with the smallest
// priority. Returns ErrEmpty on an empty queue.
func (q *IndexedQueue[K, P]) ExtractMin() (K, P, error) {
	key, priority, err := q.store.ExtractMin()
	if err != nil {
		return key, priority, err
	}
	// the hook repointed the index entry of the relocated last key;
	// only the extracted key's entry is stale now
	delete(q.position, key)
	q.version++
	return key, priority, nil
}

// Clear removes all keys and index entries, releasing references held
// in the backing arrays. Capacity is kept.
func (q *IndexedQueue[K, P]) Clear() {
	q.store.Clear()
	clear(q.position)
	q.version++
}

// Reserve grows capacity to at least size to avoid reallocation later.
func (q *IndexedQueue[K, P]) Reserve(size int) {
	q.store.Reserve(size)
}

// Compact shrinks the backing arrays to Len.
func (q *IndexedQueue[K, P]) Compact() {
	q.store.Compact()
}

// All yields the current pairs in backing-array order, which is NOT
// sorted order. Any mutation of the queue during iteration panics with
// ErrConcurrentMutation at the next step.
func (q *IndexedQueue[K, P]) All() iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		version := q.version
		for slot := 0; slot < q.store.Len(); slot++ {
			if q.version != version {
				panic(ErrConcurrentMutation)
			}
			key, priority := q.store.At(slot)
			if !yield(key, priority) {
				return
			}
		}
		if q.version != version {
			panic(ErrConcurrentMutation)
		}
	}
}

// WellFormed re-checks the heap property and that position is an exact
// inverse of the key array. Intended for tests.
func (q *IndexedQueue[K, P]) WellFormed() error {
	if err := q.store.WellFormed(); err != nil {
		return err
	}
	if len(q.position) != q.store.Len() {
		return errors.New("pqueue: position index size mismatch")
	}
	for slot := 0; slot < q.store.Len(); slot++ {
		key, _ := q.store.At(slot)
		if got, ok := q.position[key]; !ok || got != slot {
			return errors.New("pqueue: position index out of sync")
		}
	}
	return nil
}
