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

import "errors"

// Messaging itself never fails loudly: a missing target, a duplicate
// registration, a stale response or an unrouted topic all degrade to nil
// returns and no-ops. The errors below cover the edges where a caller made a
// request this package cannot honor at all.
var (
	// ErrContextRequired is returned when a nil context is handed to Register.
	ErrContextRequired = errors.New("context is required")

	// ErrNameRequired is returned when a context registers with an empty name.
	ErrNameRequired = errors.New("mailbox name is required")

	// ErrHeapRequired is returned when a context registers without a heap.
	ErrHeapRequired = errors.New("context heap is required")

	// ErrInvalidCapacity is returned when a bounded queue is requested with a
	// capacity below one.
	ErrInvalidCapacity = errors.New("queue capacity must be a positive integer")

	// ErrQueueFull is returned by a bounded queue's Enqueue when the queue is
	// at capacity. Send translates it into NoMessageID.
	ErrQueueFull = errors.New("queue is full")

	// ErrSchedulerNotStarted is returned when attempting to use the scheduler
	// before it has started.
	ErrSchedulerNotStarted = errors.New("scheduler has not started")

	// ErrScheduleNotFound is returned when cancelling a schedule reference
	// that is unknown or has already completed.
	ErrScheduleNotFound = errors.New("schedule is not found")
)
