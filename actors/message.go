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

const (
	// NoMessageID is the sentinel Send returns when nothing was enqueued,
	// either because the mailbox is closed or because a bounded queue is
	// full.
	NoMessageID int64 = -1

	// maxMessageID is the upper bound of the message id counter. The
	// counter restarts at 1 after handing out this id, which leaves a
	// trillion ids between reuses of the same value.
	maxMessageID int64 = 1_000_000_000_000
)

// Message is one queued delivery. The payload has already been copied into
// the owning mailbox's heap by the time the message exists, and a message
// never changes once enqueued.
type Message struct {
	id      int64
	topic   string
	payload bridge.Value
}

// ID returns the message id, unique among the mailbox's outstanding
// messages.
func (x *Message) ID() int64 { return x.id }

// Topic returns the routing key the sender addressed.
func (x *Message) Topic() string { return x.topic }

// Payload returns the delivered value, owned by the mailbox's heap.
func (x *Message) Payload() bridge.Value { return x.payload }
