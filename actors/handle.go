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

import "github.com/tochemey/mailroom/bridge"

// Handle is a by-name capability over a target mailbox. A handle never owns
// its target: it binds to the mailbox instance registered at lookup time and
// rechecks liveness on every call. Once that instance closes, the handle is
// dead for good, even if the same name is registered again later.
//
// Every method tolerates a nil receiver, so the result of a failed lookup
// can be used directly: telling nobody does nothing and asking nobody yields
// an already-received nil response.
type Handle struct {
	name   string
	target *Mailbox
}

// Name returns the target mailbox name the handle was bound to.
func (x *Handle) Name() string {
	if x == nil {
		return ""
	}
	return x.name
}

// IsAlive reports whether the bound mailbox instance still exists.
func (x *Handle) IsAlive() bool {
	return x.upgrade() != nil
}

// Tell delivers a fire-and-forget message to the target mailbox. When the
// mailbox no longer exists the call silently does nothing; Tell never fails
// visibly to the caller.
func (x *Handle) Tell(topic string, payload bridge.Value) {
	if target := x.upgrade(); target != nil {
		target.Send(topic, payload)
	}
}

// Ask delivers a message and returns a Response the caller polls for the
// handler's result. The response is tagged with the asking context's heap so
// resolution copies the result into the right place. Ask never blocks: a
// dead target, or a bounded queue refusing the message, yields a response
// that is already received with a nil value.
func (x *Handle) Ask(from Context, topic string, payload bridge.Value) *Response {
	target := x.upgrade()
	if target == nil {
		return resolvedResponse(heapOf(from))
	}

	response := newResponse(heapOf(from))
	if target.send(topic, payload, response) == NoMessageID {
		return resolvedResponse(heapOf(from))
	}
	return response
}

// upgrade resolves the handle to its live mailbox, or nil when the handle is
// unbound or the mailbox has closed since.
func (x *Handle) upgrade() *Mailbox {
	if x == nil || x.target == nil || x.target.IsClosed() {
		return nil
	}
	return x.target
}

// heapOf returns the context's heap, tolerating an absent context.
func heapOf(ctx Context) *bridge.Heap {
	if ctx == nil {
		return nil
	}
	return ctx.Heap()
}
