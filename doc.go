// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package pqueue provides array-based 4-ary min-heap priority
// containers.
//
// Queue is the plain variant: (element, priority) pairs in, smallest
// priority out first. IndexedQueue additionally keeps an element -> slot
// index, so any tracked element can be removed or have its priority
// changed in O(log n) (decrease-key / increase-key).
//
// Elements with equal priority come out in an unspecified order.
// Neither type is safe for concurrent use; a mutation observed during
// iteration panics with ErrConcurrentMutation.
package pqueue
