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

// Context is the contract a scripting context fulfills for this package.
// Creating, scheduling and tearing down contexts is the host's business; the
// mailbox layer only needs an identity, an isolated heap to bridge payloads
// into, and somewhere to report handler failures.
type Context interface {
	// Name returns the context's unique identity. It becomes the mailbox
	// name at registration time; lookups against it are case-insensitive.
	Name() string
	// Heap returns the context's isolated value heap. Every payload
	// delivered to the context's mailbox is copied into this heap first.
	Heap() *bridge.Heap
	// Fail hands a handler failure to the context's own failure
	// collaborator. It is called during a drain pass when a topic handler
	// returns an error; the drain itself never surfaces the error.
	Fail(err error)
}
