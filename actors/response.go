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

	"go.uber.org/atomic"

	"github.com/tochemey/mailroom/bridge"
)

// Response is the pollable result of an Ask.
//
// A Response never blocks: callers check Received across ticks and read
// Value once it reports true. Resolution happens as a side effect of a later
// drain pass (or an explicit Respond by the target mailbox's owner) and is
// exactly-once; anything after the first resolution is a no-op.
//
// The asker owns the Response. The target mailbox only keeps a weak
// reference to it, so discarding a Response is how a caller abandons
// interest: the eventual resolution attempt finds nothing and is silently
// skipped. There is no timeout either; a Response whose target mailbox
// closes before responding stays unreceived forever. Callers that need a
// deadline poll with their own clock.
type Response struct {
	once     sync.Once
	received *atomic.Bool
	value    bridge.Value
	target   *bridge.Heap
}

// newResponse creates an unresolved Response whose eventual value belongs to
// the given heap.
func newResponse(target *bridge.Heap) *Response {
	return &Response{
		received: atomic.NewBool(false),
		target:   target,
	}
}

// resolvedResponse creates a Response that is already received with a nil
// value. Ask returns one when the target mailbox is gone, so that callers
// poll their way to nil instead of waiting forever.
func resolvedResponse(target *bridge.Heap) *Response {
	response := newResponse(target)
	response.resolve(bridge.Nil())
	return response
}

// Received reports whether the response has been resolved.
func (x *Response) Received() bool {
	return x.received.Load()
}

// Value returns the result, copied into the asking context's heap. It is the
// nil value until Received reports true.
func (x *Response) Value() bridge.Value {
	if !x.received.Load() {
		return bridge.Nil()
	}
	return x.value
}

// resolve copies v into the response's target heap and marks the response
// received. Only the first call has any effect. The value is written before
// the received flag flips so that a poller never observes a half-resolved
// response.
func (x *Response) resolve(v bridge.Value) {
	x.once.Do(func() {
		x.value = bridge.Copy(v, x.target)
		x.received.Store(true)
	})
}
