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
	"time"

	"go.uber.org/atomic"

	"github.com/tochemey/mailroom/internal/ticker"
	"github.com/tochemey/mailroom/log"
)

// DefaultPulseInterval defines how often a pulse runs a delivery cycle when
// no interval is given.
const DefaultPulseInterval = 10 * time.Millisecond

// PulseOption is the interface that applies a configuration option to the
// pulse.
type PulseOption interface {
	// Apply sets the PulseOption value of a pulse.
	Apply(pulse *Pulse)
}

var _ PulseOption = PulseOptionFunc(nil)

// PulseOptionFunc implements the PulseOption interface.
type PulseOptionFunc func(*Pulse)

func (f PulseOptionFunc) Apply(pulse *Pulse) {
	f(pulse)
}

// WithPulseLogger sets the pulse custom log
func WithPulseLogger(logger log.Logger) PulseOption {
	return PulseOptionFunc(func(pulse *Pulse) {
		pulse.logger = logger
	})
}

// Pulse drives the registry's delivery cycle on its own goroutine for hosts
// that have no frame loop of their own. It runs Process once per tick; ticks
// that land while a cycle is still running are dropped, not queued, so a
// slow cycle never builds up a backlog of catch-up cycles.
//
// Hosts with a natural tick, a game frame or a UI loop, should call
// Registry.Process from it directly instead and leave the pulse out.
type Pulse struct {
	mu       sync.Mutex
	registry *Registry
	interval time.Duration
	logger   log.Logger

	clock   *ticker.Ticker
	stopSig chan struct{}
	done    chan struct{}
	started *atomic.Bool
}

// NewPulse creates a pulse driving the given registry. Intervals of zero or
// below fall back to DefaultPulseInterval.
func NewPulse(registry *Registry, interval time.Duration, opts ...PulseOption) *Pulse {
	if interval <= 0 {
		interval = DefaultPulseInterval
	}

	pulse := &Pulse{
		registry: registry,
		interval: interval,
		logger:   log.DefaultLogger,
		started:  atomic.NewBool(false),
	}

	for _, opt := range opts {
		opt.Apply(pulse)
	}

	return pulse
}

// Start starts the delivery cycles. It is a no-op when already started.
func (x *Pulse) Start() {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.started.Load() {
		return
	}

	x.logger.Info("starting the pulse...")
	x.clock = ticker.New(x.interval)
	x.stopSig = make(chan struct{})
	x.done = make(chan struct{})
	x.clock.Start()
	go x.run()
	x.started.Store(true)
	x.logger.Info("the pulse has started.:)")
}

// Stop stops the delivery cycles, waiting for an in-flight cycle to finish.
// It is a no-op when not started.
func (x *Pulse) Stop() {
	x.mu.Lock()
	defer x.mu.Unlock()
	if !x.started.Load() {
		return
	}

	x.logger.Info("stopping the pulse...")
	x.clock.Stop()
	close(x.stopSig)
	<-x.done
	x.started.Store(false)
	x.logger.Info("the pulse stopped...:)")
}

// IsStarted returns true when the pulse is running.
func (x *Pulse) IsStarted() bool {
	return x.started.Load()
}

// Interval returns the delivery cycle interval.
func (x *Pulse) Interval() time.Duration {
	return x.interval
}

func (x *Pulse) run() {
	defer close(x.done)
	for {
		select {
		case <-x.clock.Ticks:
			x.registry.Process()
		case <-x.stopSig:
			return
		}
	}
}
