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

package ticker

import (
	"sync"
	"time"
)

// Ticker delivers ticks at a fixed interval on its Ticks channel. Delivery
// is lossy on purpose: a tick that finds no receiver waiting is dropped, so
// a consumer that falls behind sees fewer ticks instead of a backlog.
type Ticker struct {
	Ticks    chan time.Time
	interval time.Duration
	mu       sync.Mutex
	running  bool
	stopSig  chan struct{}
}

// New creates a ticker that ticks at every interval. It panics when the
// interval is not strictly positive.
func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		panic("interval must be greater than zero")
	}
	return &Ticker{
		Ticks:    make(chan time.Time),
		interval: interval,
		stopSig:  make(chan struct{}),
	}
}

// Start begins tick delivery on the Ticks channel. Ticks are delivered
// until Stop is called.
func (x *Ticker) Start() {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.running {
		return
	}
	x.running = true
	go x.loop()
}

// Stop ends tick delivery. No tick is delivered after Stop returns and
// before Start is called again.
func (x *Ticker) Stop() {
	x.mu.Lock()
	defer x.mu.Unlock()
	if !x.running {
		return
	}
	x.running = false
	x.stopSig <- struct{}{}
}

// Ticking returns true while the ticker delivers ticks.
func (x *Ticker) Ticking() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.running
}

func (x *Ticker) loop() {
	clock := time.NewTicker(x.interval)
	for {
		select {
		case tick := <-clock.C:
			select {
			case x.Ticks <- tick:
			default:
			}
		case <-x.stopSig:
			clock.Stop()
			return
		}
	}
}
