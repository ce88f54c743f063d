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
	"strings"
	"sync"

	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"

	"github.com/tochemey/mailroom/internal/metric"
	"github.com/tochemey/mailroom/log"
)

// Registry is the process-wide name directory for mailboxes. A mailbox
// appears in it when its context registers and disappears when the mailbox
// closes; the registry itself never keeps a mailbox alive, it only answers
// lookups against whatever is currently registered.
//
// Names are case-insensitive and unique: at most one live mailbox holds a
// name at any time. Registration order is remembered so that iteration with
// Next is stable; deregistering a name never reorders the survivors.
//
// One registry per host process is the intended shape, but nothing is
// global: tests create throwaway registries and hosts embedding several
// independent script engines may run one registry each.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Mailbox // folded name -> live mailbox
	order   []string            // folded names in registration order

	logger  log.Logger
	meter   otelmetric.Meter
	metrics *metric.MailboxMetric

	enqueuedCount  *atomic.Int64
	processedCount *atomic.Int64
	unhandledCount *atomic.Int64
	resolvedCount  *atomic.Int64
}

// NewRegistry creates a registry. Without options it logs with the default
// logger and publishes metrics against the global OpenTelemetry meter
// provider, which is a no-op unless the host installed an SDK.
func NewRegistry(opts ...Option) *Registry {
	registry := &Registry{
		entries:        make(map[string]*Mailbox),
		logger:         log.DefaultLogger,
		meter:          metric.NewProvider().Meter(),
		enqueuedCount:  atomic.NewInt64(0),
		processedCount: atomic.NewInt64(0),
		unhandledCount: atomic.NewInt64(0),
		resolvedCount:  atomic.NewInt64(0),
	}

	for _, opt := range opts {
		opt.Apply(registry)
	}

	if err := registry.registerMetrics(); err != nil {
		registry.logger.Errorf("failed to register mailbox metrics: %v", err)
	}

	return registry
}

// Exists reports whether a live mailbox is currently registered under the
// given name. The lookup is case-insensitive.
func (x *Registry) Exists(name string) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	mailbox, ok := x.entries[foldName(name)]
	return ok && !mailbox.IsClosed()
}

// Get returns a handle bound to the mailbox currently registered under the
// given name, or nil when there is none. The lookup is case-insensitive.
// The handle keeps working after the mailbox disappears, in the degraded
// sense: its Tell becomes a no-op and its Ask yields nil responses.
func (x *Registry) Get(name string) *Handle {
	x.mu.RLock()
	mailbox, ok := x.entries[foldName(name)]
	x.mu.RUnlock()
	if !ok || mailbox.IsClosed() {
		return nil
	}
	return &Handle{name: mailbox.Name(), target: mailbox}
}

// Register creates and registers a mailbox for the given context, keyed by
// the context's name. It returns nil, without disturbing anything, when the
// name is already registered; registering is idempotent, not an error. It
// also returns nil when the context or its configuration is unusable, which
// is logged.
func (x *Registry) Register(ctx Context, opts ...MailboxOption) *Mailbox {
	if ctx == nil {
		x.logger.Error(ErrContextRequired)
		return nil
	}

	mailbox := newMailbox(x, ctx, opts...)
	if err := mailbox.validate(); err != nil {
		x.logger.Errorf("rejecting mailbox registration: %v", err)
		return nil
	}

	key := foldName(mailbox.name)
	x.mu.Lock()
	if _, taken := x.entries[key]; taken {
		x.mu.Unlock()
		x.logger.Debugf("mailbox=(%s) is already registered", mailbox.name)
		return nil
	}
	mailbox.buildQueue()
	x.entries[key] = mailbox
	x.order = append(x.order, key)
	x.mu.Unlock()

	x.logger.Debugf("mailbox=(%s) registered", mailbox.name)
	return mailbox
}

// Next enumerates registered names lazily: an empty previous name yields the
// first registered name, a registered name yields the one registered after
// it, and the end of the sequence, or an unknown previous name, yields
// ("", false). The order is registration order, and a name removed
// mid-enumeration never reorders the remaining ones.
func (x *Registry) Next(prev string) (string, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if len(x.order) == 0 {
		return "", false
	}
	if prev == "" {
		return x.entries[x.order[0]].Name(), true
	}

	key := foldName(prev)
	for i, candidate := range x.order {
		if candidate == key {
			if i+1 < len(x.order) {
				return x.entries[x.order[i+1]].Name(), true
			}
			return "", false
		}
	}
	return "", false
}

// Names returns the currently registered mailbox names in registration
// order.
func (x *Registry) Names() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]string, 0, len(x.order))
	for _, key := range x.order {
		out = append(out, x.entries[key].Name())
	}
	return out
}

// Len returns the number of currently registered mailboxes.
func (x *Registry) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.order)
}

// deregister removes the mailbox's name, provided the entry still belongs to
// that same instance. Close calls it before releasing any mailbox state.
func (x *Registry) deregister(mailbox *Mailbox) {
	key := foldName(mailbox.name)
	x.mu.Lock()
	defer x.mu.Unlock()
	current, ok := x.entries[key]
	if !ok || current != mailbox {
		return
	}
	delete(x.entries, key)
	for i, candidate := range x.order {
		if candidate == key {
			x.order = append(x.order[:i], x.order[i+1:]...)
			break
		}
	}
}

// live snapshots the registered mailboxes in registration order, skipping
// any that closed since.
func (x *Registry) live() []*Mailbox {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]*Mailbox, 0, len(x.order))
	for _, key := range x.order {
		if mailbox := x.entries[key]; mailbox != nil && !mailbox.IsClosed() {
			out = append(out, mailbox)
		}
	}
	return out
}

// registerMetrics binds the registry's counters to the configured meter.
func (x *Registry) registerMetrics() error {
	metrics, err := metric.NewMailboxMetric(x.meter)
	if err != nil {
		return err
	}

	_, err = x.meter.RegisterCallback(func(_ context.Context, observer otelmetric.Observer) error {
		observer.ObserveInt64(metrics.EnqueuedCount(), x.enqueuedCount.Load())
		observer.ObserveInt64(metrics.ProcessedCount(), x.processedCount.Load())
		observer.ObserveInt64(metrics.UnhandledCount(), x.unhandledCount.Load())
		observer.ObserveInt64(metrics.ResolvedCount(), x.resolvedCount.Load())
		return nil
	}, metrics.EnqueuedCount(),
		metrics.ProcessedCount(),
		metrics.UnhandledCount(),
		metrics.ResolvedCount(),
	)
	if err != nil {
		return err
	}

	x.metrics = metrics
	return nil
}

// foldName normalizes a mailbox name for case-insensitive lookups.
func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
