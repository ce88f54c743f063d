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
	"context"
	"time"
)

// Process runs one delivery cycle: every registered mailbox drains up to its
// per-cycle budget of queued messages through its handlers, in registration
// order. Messages beyond a mailbox's budget stay queued for the next cycle,
// so a flooded mailbox cannot starve the host out of a cycle.
//
// All handler code runs on the caller's goroutine. The caller is the owner
// of every registered heap for the duration of the call, which is what makes
// handler execution safe without per-heap locking: hosts either call Process
// from the one goroutine that owns all script state, or hand the calling to
// a Pulse.
func (x *Registry) Process() {
	start := time.Now()
	for _, mailbox := range x.live() {
		mailbox.drain()
	}
	if x.metrics != nil {
		x.metrics.ProcessDuration().Record(context.Background(), time.Since(start).Milliseconds())
	}
}
