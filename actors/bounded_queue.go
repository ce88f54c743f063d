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
	gods "github.com/Workiva/go-datastructures/queue"
)

// BoundedQueue is a bounded, non-blocking MPSC queue backed by a ring
// buffer.
//
// Characteristics
//   - Bounded capacity: the ring buffer has a fixed size, rounded up to the
//     next power of two by the underlying implementation.
//   - Non-blocking semantics: Enqueue returns ErrQueueFull when the queue is
//     at capacity instead of waiting for space, which lets Send degrade to
//     NoMessageID without ever stalling a producer context.
//   - Concurrency: safe for multiple producers and a single consumer.
//   - FIFO ordering: messages are dequeued in the order they were enqueued.
//
// Use this queue when a mailbox must shed load rather than grow without
// bound.
type BoundedQueue struct {
	underlying *gods.RingBuffer
}

// enforce compilation error
var _ Queue = (*BoundedQueue)(nil)

// NewBoundedQueue creates a new bounded queue with the given capacity.
// Capacities below one are coerced to one.
func NewBoundedQueue(capacity int) *BoundedQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &BoundedQueue{
		underlying: gods.NewRingBuffer(uint64(capacity)),
	}
}

// Enqueue appends a message to the queue.
//
// Semantics
//   - Returns ErrQueueFull when the queue is at capacity; the message is
//     dropped by the caller in that case.
//   - Returns the underlying buffer's error when the queue has been
//     disposed.
//
// Concurrency
//   - Safe for concurrent producers.
func (x *BoundedQueue) Enqueue(message *Message) error {
	ok, err := x.underlying.Offer(message)
	if err != nil {
		return err
	}
	if !ok {
		return ErrQueueFull
	}
	return nil
}

// Dequeue removes and returns the oldest message in the queue, or nil when
// the queue is empty.
//
// Concurrency
//   - Intended for a single consumer; the emptiness check and the removal
//     are only atomic with respect to producers.
func (x *BoundedQueue) Dequeue() *Message {
	if x.underlying.Len() > 0 {
		item, err := x.underlying.Get()
		if err == nil {
			if message, ok := item.(*Message); ok {
				return message
			}
		}
	}
	return nil
}

// IsEmpty reports whether the queue currently has no messages. This check is
// a snapshot and may change immediately under concurrency.
func (x *BoundedQueue) IsEmpty() bool {
	return x.underlying.Len() == 0
}

// Len returns the current number of queued messages. The value is a snapshot
// and may change immediately after the call under concurrency.
func (x *BoundedQueue) Len() int64 {
	return int64(x.underlying.Len())
}

// Dispose releases resources held by the underlying ring buffer and unblocks
// any internal waiters maintained by it. Do not use the queue after calling
// Dispose.
func (x *BoundedQueue) Dispose() {
	x.underlying.Dispose()
}
