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
	"strings"
	"sync"
	"weak"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/tochemey/mailroom/bridge"
	"github.com/tochemey/mailroom/internal/validation"
	"github.com/tochemey/mailroom/log"
)

// DefaultMessagesPerCycle is the number of messages one drain pass processes
// per mailbox unless the owner tuned it.
const DefaultMessagesPerCycle = 10

// Handler consumes one delivered payload for a topic and optionally produces
// a result. The result resolves the sender's Response when the message came
// from an Ask; for a Tell it is discarded. Both payload and result live in
// the handling context's heap.
type Handler func(payload bridge.Value) (bridge.Value, error)

// Mailbox is a context's owned message queue plus its table of outstanding
// responses. It is created by Registry.Register, lives as long as its owning
// context, and removes itself from the registry when closed.
//
// The owning context is the only consumer: it pops messages either manually
// through Receive or implicitly through the drain pass. Producers reach the
// mailbox through Handles and may live on other goroutines; every mutating
// entry point rechecks liveness, so operations against a closed mailbox
// degrade to no-ops instead of failing.
type Mailbox struct {
	id       uuid.UUID
	name     string
	ctx      Context
	registry *Registry
	logger   log.Logger

	queue    Queue
	bounded  bool
	capacity int

	mu       sync.Mutex
	nextID   int64
	pending  map[int64]weak.Pointer[Response]
	handlers map[string]Handler

	perCycle *atomic.Int64
	closed   *atomic.Bool
}

// newMailbox builds an unregistered mailbox for the given context. The queue
// is not created yet; the registry validates the configuration first and
// calls buildQueue on success.
func newMailbox(registry *Registry, ctx Context, opts ...MailboxOption) *Mailbox {
	mailbox := &Mailbox{
		id:       uuid.New(),
		name:     ctx.Name(),
		ctx:      ctx,
		registry: registry,
		logger:   registry.logger,
		pending:  make(map[int64]weak.Pointer[Response]),
		handlers: make(map[string]Handler),
		perCycle: atomic.NewInt64(DefaultMessagesPerCycle),
		closed:   atomic.NewBool(false),
	}
	for _, opt := range opts {
		opt.Apply(mailbox)
	}
	return mailbox
}

// validate reports whether the mailbox configuration can be registered.
func (x *Mailbox) validate() error {
	return validation.New(validation.AllErrors()).
		AddAssertion(strings.TrimSpace(x.name) != "", ErrNameRequired.Error()).
		AddAssertion(x.ctx.Heap() != nil, ErrHeapRequired.Error()).
		AddAssertion(!x.bounded || x.capacity > 0, ErrInvalidCapacity.Error()).
		Validate()
}

// buildQueue creates the message queue once the configuration is validated.
func (x *Mailbox) buildQueue() {
	if x.bounded {
		x.queue = NewBoundedQueue(x.capacity)
		return
	}
	x.queue = NewDefaultQueue()
}

// ID returns the mailbox instance identity. A name that is closed and
// registered again yields a different ID, which is what keeps old Handles
// from re-binding.
func (x *Mailbox) ID() uuid.UUID { return x.id }

// Name returns the mailbox name as the owning context spelled it. Registry
// lookups against it are case-insensitive.
func (x *Mailbox) Name() string { return x.name }

// Len returns the number of currently queued messages.
func (x *Mailbox) Len() int64 {
	if x.closed.Load() {
		return 0
	}
	return x.queue.Len()
}

// IsClosed reports whether the mailbox has been closed.
func (x *Mailbox) IsClosed() bool { return x.closed.Load() }

// MessagesPerCycle returns how many messages one drain pass may process for
// this mailbox.
func (x *Mailbox) MessagesPerCycle() int {
	return int(x.perCycle.Load())
}

// SetMessagesPerCycle tunes how many messages one drain pass may process for
// this mailbox. Values below one are coerced to one so that a saturated
// mailbox always makes progress without monopolizing the tick.
func (x *Mailbox) SetMessagesPerCycle(n int) {
	if n < 1 {
		n = 1
	}
	x.perCycle.Store(int64(n))
}

// Send copies topic and payload into the mailbox's heap, assigns the next
// message id and enqueues. It returns the assigned id, or NoMessageID when
// the mailbox is closed or a bounded queue is full; nothing is enqueued
// then. Ids are strictly increasing and restart at 1 after reaching 10^12.
func (x *Mailbox) Send(topic string, payload bridge.Value) int64 {
	return x.send(topic, payload, nil)
}

// send is the shared enqueue path. When response is not nil it is tracked
// under the assigned id in the same critical section, so a concurrent drain
// can never process the message before the response is registered.
func (x *Mailbox) send(topic string, payload bridge.Value, response *Response) int64 {
	if x.closed.Load() {
		return NoMessageID
	}

	// payloads never cross heaps; topic strings are immutable and need no copy
	bridged := bridge.Copy(payload, x.ctx.Heap())

	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed.Load() {
		return NoMessageID
	}

	id := x.nextID + 1
	if x.nextID == maxMessageID {
		id = 1
	}

	message := &Message{id: id, topic: topic, payload: bridged}
	if err := x.queue.Enqueue(message); err != nil {
		x.logger.Warnf("mailbox=(%s) dropped message topic=(%s): %v", x.name, topic, err)
		return NoMessageID
	}

	x.nextID = id
	if response != nil {
		x.pending[id] = weak.Make(response)
	}
	x.registry.enqueuedCount.Inc()
	return id
}

// AddResponse stores a weak reference to the given response keyed by the
// message id, so that processing the message later resolves it. A response
// discarded by its owner before then is simply skipped at resolution time.
func (x *Mailbox) AddResponse(id int64, response *Response) {
	if response == nil || id == NoMessageID {
		return
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed.Load() {
		return
	}
	x.pending[id] = weak.Make(response)
}

// Receive pops the oldest queued message, or nil when the queue is empty or
// the mailbox is closed. Receiving does not touch the pending-response
// table; an owner that pops manually answers with Respond when it chooses
// to.
func (x *Mailbox) Receive() *Message {
	if x.closed.Load() {
		return nil
	}
	return x.queue.Dequeue()
}

// Respond resolves the pending response for the given message with value,
// copied into the asking context's heap. When no response is pending for the
// id, because nobody asked or because it already resolved, the call is a
// no-op.
func (x *Mailbox) Respond(message *Message, value bridge.Value) {
	if message == nil {
		return
	}
	x.resolvePending(message.ID(), value)
}

// HandleFunc registers the handler for a topic, replacing any previous one.
// Handlers run on the drain pass with the owning context's heap; a drained
// message whose topic has no handler resolves its asker with nil.
func (x *Mailbox) HandleFunc(topic string, handler Handler) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed.Load() {
		return
	}
	x.handlers[topic] = handler
}

// Close tears the mailbox down: it deregisters the name first, then marks
// the mailbox dead and releases queue and pending state. Outstanding
// responses are left permanently unreceived. Close is idempotent and safe to
// call while producers still hold Handles; their sends degrade to no-ops.
func (x *Mailbox) Close() {
	if !x.closed.CompareAndSwap(false, true) {
		return
	}

	// deregistration must complete before any state is released so that a
	// handle can never upgrade to a half-destroyed mailbox
	x.registry.deregister(x)

	x.mu.Lock()
	x.pending = nil
	x.handlers = nil
	x.mu.Unlock()

	x.queue.Dispose()
	x.logger.Debugf("mailbox=(%s) closed", x.name)
}

// resolvePending removes the pending entry for id and, when the asker still
// holds the response, resolves it with value. The entry is consumed even if
// the response was discarded, which is what makes resolution exactly-once.
func (x *Mailbox) resolvePending(id int64, value bridge.Value) {
	x.mu.Lock()
	ref, ok := x.pending[id]
	if ok {
		delete(x.pending, id)
	}
	x.mu.Unlock()
	if !ok {
		return
	}
	if response := ref.Value(); response != nil {
		response.resolve(value)
		x.registry.resolvedCount.Inc()
	}
}

// processOne pops and dispatches a single message: route to the topic
// handler if any, report a handler failure to the owning context, then
// resolve whatever response is pending for the id. It reports false when
// there was nothing to process.
func (x *Mailbox) processOne() bool {
	if x.closed.Load() {
		return false
	}
	message := x.queue.Dequeue()
	if message == nil {
		return false
	}

	x.mu.Lock()
	handler := x.handlers[message.Topic()]
	x.mu.Unlock()

	result := bridge.Nil()
	switch {
	case handler == nil:
		x.registry.unhandledCount.Inc()
	default:
		if out, err := handler(message.Payload()); err != nil {
			x.ctx.Fail(err)
		} else {
			result = out
		}
	}

	x.registry.processedCount.Inc()
	x.resolvePending(message.ID(), result)
	return true
}

// drain processes up to MessagesPerCycle of the currently queued messages.
// The budget is computed once per pass, so messages enqueued while draining
// wait for the next tick and a chatty mailbox cannot starve its peers.
func (x *Mailbox) drain() {
	budget := min(x.queue.Len(), int64(x.MessagesPerCycle()))
	for range budget {
		if !x.processOne() {
			return
		}
	}
}
