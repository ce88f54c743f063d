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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTicker(t *testing.T) {
	tk := New(time.Millisecond)
	assert.False(t, tk.Ticking())

	tk.Start()
	assert.True(t, tk.Ticking())

	for range 3 {
		select {
		case tick := <-tk.Ticks:
			assert.False(t, tick.IsZero())
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for a tick")
		}
	}

	tk.Stop()
	assert.False(t, tk.Ticking())
}

func TestTickerStartIsIdempotent(t *testing.T) {
	tk := New(time.Millisecond)
	tk.Start()
	tk.Start()

	select {
	case <-tk.Ticks:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a tick")
	}

	tk.Stop()
	tk.Stop()
	assert.False(t, tk.Ticking())
}

func TestTickerDropsTicksWithoutReceiver(t *testing.T) {
	tk := New(time.Millisecond)
	tk.Start()

	// let several ticks fire with nobody listening
	time.Sleep(20 * time.Millisecond)

	// the channel is unbuffered so nothing piled up; at most the next
	// tick arrives
	select {
	case <-tk.Ticks:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a tick")
	}

	tk.Stop()
}

func TestNewRejectsNonPositiveInterval(t *testing.T) {
	require.Panics(t, func() { New(0) })
	require.Panics(t, func() { New(-time.Second) })
}
