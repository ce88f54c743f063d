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
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/tochemey/mailroom/log"
)

// Option is the interface that applies a configuration option to the
// registry.
type Option interface {
	// Apply sets the Option value of a registry.
	Apply(registry *Registry)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Registry)

func (f OptionFunc) Apply(registry *Registry) {
	f(registry)
}

// WithLogger sets the registry custom log
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(registry *Registry) {
		registry.logger = logger
	})
}

// WithMeter sets the meter the registry publishes its instruments against.
// The default is the global OpenTelemetry meter provider.
func WithMeter(meter otelmetric.Meter) Option {
	return OptionFunc(func(registry *Registry) {
		registry.meter = meter
	})
}

// MailboxOption is the interface that applies a configuration option to a
// mailbox at registration time.
type MailboxOption interface {
	// Apply sets the MailboxOption value of a mailbox.
	Apply(mailbox *Mailbox)
}

var _ MailboxOption = MailboxOptionFunc(nil)

// MailboxOptionFunc implements the MailboxOption interface.
type MailboxOptionFunc func(*Mailbox)

func (f MailboxOptionFunc) Apply(mailbox *Mailbox) {
	f(mailbox)
}

// WithBoundedQueue caps the mailbox queue at the given capacity; sends beyond
// it are rejected with NoMessageID instead of growing the queue. Capacities
// below one fail registration.
func WithBoundedQueue(capacity int) MailboxOption {
	return MailboxOptionFunc(func(mailbox *Mailbox) {
		mailbox.bounded = true
		mailbox.capacity = capacity
	})
}

// WithMessagesPerCycle sets how many queued messages the mailbox hands to its
// handlers per delivery cycle. Values below one coerce to one.
func WithMessagesPerCycle(n int) MailboxOption {
	return MailboxOptionFunc(func(mailbox *Mailbox) {
		mailbox.SetMessagesPerCycle(n)
	})
}
