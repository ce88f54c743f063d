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

// Queue is the FIFO message store behind a Mailbox.
//
// Concurrency and ordering
//   - Implementations MUST be safe for multiple concurrent producers calling
//     Enqueue. The drain pass consumes from a single goroutine, so Dequeue
//     is optimized for a single consumer (MPSC).
//   - Messages MUST come out in the order they went in. The insertion end is
//     an implementation detail; the observable contract is pure FIFO.
//
// Non-blocking behavior
//   - Enqueue MUST NOT block. Bounded implementations return an error when
//     full instead of waiting; unbounded implementations always return nil.
//   - Dequeue MUST NOT block and returns nil when the queue is empty.
//
// Resource management
//   - Dispose releases any resources held by the implementation. After
//     Dispose, Enqueue fails and Dequeue returns nil.
type Queue interface {
	// Enqueue appends a message to the queue. A bounded queue returns
	// ErrQueueFull when at capacity.
	Enqueue(message *Message) error
	// Dequeue removes and returns the oldest message, or nil when the
	// queue is empty. Single consumer only.
	Dequeue() *Message
	// IsEmpty reports whether the queue currently has no messages. It is a
	// best-effort snapshot under concurrent producers.
	IsEmpty() bool
	// Len returns a snapshot of the number of queued messages. The value
	// may be approximate under concurrent producers.
	Len() int64
	// Dispose releases resources held by the queue. The queue must not be
	// used afterwards.
	Dispose()
}
