// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package pqueue

import (
	"errors"

	"github.com/hrissan/pqueue/heapstore"
)

// all errors are static, we do not allocate on the error returning path

// ErrEmpty is returned by PeekMin and ExtractMin on an empty queue.
var ErrEmpty = heapstore.ErrEmpty

// ErrDuplicateElement is returned by IndexedQueue.Insert when the
// element is already tracked. Silently ignoring the insert would break
// the one-to-one element/slot invariant, so this is surfaced loudly;
// use EnqueueOrUpdate for upsert semantics.
var ErrDuplicateElement = errors.New("pqueue: element already tracked")

// ErrConcurrentMutation is the panic value when iteration observes a
// mutation of the queue it is traversing.
var ErrConcurrentMutation = errors.New("pqueue: queue mutated during iteration")
