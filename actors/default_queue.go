/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actors

import (
	"sync"
	"sync/atomic"
)

// queueNode is a node of the MPSC queue specialized for *Message.
type queueNode struct {
	next atomic.Pointer[queueNode]
	data *Message
}

// Single global pool for queueNode to avoid per-message allocations.
var queueNodePool = sync.Pool{New: func() any { return new(queueNode) }}

// DefaultQueue is the unbounded, lock-free queue mailboxes use unless a
// bounded one was requested at registration.
//
// Concurrency model:
//   - Multi-Producer, Single-Consumer (MPSC): many goroutines may call
//     Enqueue concurrently, but exactly one goroutine must call Dequeue.
//
// Characteristics:
//   - FIFO ordering across all producers.
//   - Lock-free operations via atomic pointer primitives.
//   - Nodes are reused through a sync.Pool.
//   - IsEmpty is O(1). Len performs a snapshot traversal (O(n)) and is
//     intended for diagnostics and drain budgeting.
type DefaultQueue struct {
	// Separate cache lines to avoid false sharing between producers and consumer
	head  atomic.Pointer[queueNode] // consumer only
	_pad1 [64]byte
	tail  atomic.Pointer[queueNode] // producers only
	_pad2 [64]byte
}

// enforce compilation error when interface contract changes
var _ Queue = (*DefaultQueue)(nil)

// NewDefaultQueue creates and initializes a DefaultQueue instance. The queue
// starts with a dummy node so that producers can append by swapping tail and
// linking through the previous node.
func NewDefaultQueue() *DefaultQueue {
	dummy := queueNodePool.Get().(*queueNode)
	dummy.next.Store(nil)
	dummy.data = nil
	q := &DefaultQueue{}
	q.head.Store(dummy)
	q.tail.Store(dummy)
	return q
}

// Enqueue appends the given message to the queue. Never blocks; always
// returns nil. Safe for concurrent calls by multiple producers.
func (q *DefaultQueue) Enqueue(message *Message) error {
	n := queueNodePool.Get().(*queueNode)
	n.data = message

	prev := q.tail.Swap(n)
	prev.next.Store(n)
	return nil
}

// Dequeue removes and returns the oldest message in the queue. Returns nil
// when the queue is empty. Must be called by a single consumer goroutine.
func (q *DefaultQueue) Dequeue() *Message {
	head := q.head.Load() // single consumer
	next := head.next.Load()

	if next == nil {
		return nil
	}

	q.head.Store(next)
	message := next.data

	// Return old head to pool for reuse
	head.next.Store(nil)
	queueNodePool.Put(head)
	return message
}

// Len returns a best-effort snapshot of the number of queued messages. It
// performs an O(n) traversal from head to tail with atomic loads; the value
// may be approximate under concurrent producers.
func (q *DefaultQueue) Len() int64 {
	h := q.head.Load()
	n := h.next.Load()
	var count int64
	for n != nil {
		count++
		n = n.next.Load()
	}
	return count
}

// IsEmpty returns true when the queue is empty. This is an O(1) check and
// safe under concurrent producers.
func (q *DefaultQueue) IsEmpty() bool {
	head := q.head.Load()
	return head.next.Load() == nil
}

// Dispose releases resources if needed. No-op for this queue.
func (q *DefaultQueue) Dispose() {}
