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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/tochemey/mailroom/bridge"
	"github.com/tochemey/mailroom/log"
)

func TestRegistry_Register(t *testing.T) {
	registry := newTestRegistry()

	mailbox := registry.Register(newTestContext("worker"))
	require.NotNil(t, mailbox)
	assert.Equal(t, "worker", mailbox.Name())
	assert.False(t, mailbox.IsClosed())
	assert.True(t, registry.Exists("worker"))
	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, []string{"worker"}, registry.Names())
}

func TestRegistry_NamesAreCaseInsensitive(t *testing.T) {
	registry := newTestRegistry()

	mailbox := registry.Register(newTestContext("Worker"))
	require.NotNil(t, mailbox)

	assert.True(t, registry.Exists("worker"))
	assert.True(t, registry.Exists("WORKER"))

	// the registered spelling is the one reported back
	handle := registry.Get("wOrKeR")
	require.NotNil(t, handle)
	assert.Equal(t, "Worker", handle.Name())

	// a second registration under any spelling is refused
	assert.Nil(t, registry.Register(newTestContext("worker")))
	assert.Nil(t, registry.Register(newTestContext("Worker")))
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_RegisterRejections(t *testing.T) {
	registry := newTestRegistry()

	t.Run("With nil context", func(t *testing.T) {
		assert.Nil(t, registry.Register(nil))
	})
	t.Run("With empty name", func(t *testing.T) {
		assert.Nil(t, registry.Register(newTestContext("")))
		assert.Nil(t, registry.Register(newTestContext("   ")))
	})
	t.Run("With missing heap", func(t *testing.T) {
		assert.Nil(t, registry.Register(&heaplessContext{name: "worker"}))
	})
	t.Run("With invalid capacity", func(t *testing.T) {
		assert.Nil(t, registry.Register(newTestContext("worker"), WithBoundedQueue(0)))
		assert.Nil(t, registry.Register(newTestContext("worker"), WithBoundedQueue(-1)))
	})

	assert.Zero(t, registry.Len())
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := newTestRegistry()
	assert.Nil(t, registry.Get("nobody"))
	assert.False(t, registry.Exists("nobody"))
}

func TestRegistry_GetAfterClose(t *testing.T) {
	registry := newTestRegistry()
	mailbox := registry.Register(newTestContext("worker"))
	require.NotNil(t, mailbox)

	mailbox.Close()
	assert.Nil(t, registry.Get("worker"))
}

func TestRegistry_HandleBindsToInstance(t *testing.T) {
	registry := newTestRegistry()
	first := registry.Register(newTestContext("worker"))
	require.NotNil(t, first)

	stale := registry.Get("worker")
	require.NotNil(t, stale)
	require.True(t, stale.IsAlive())

	first.Close()
	second := registry.Register(newTestContext("worker"))
	require.NotNil(t, second)

	// the old handle stays dead even though the name is live again
	assert.False(t, stale.IsAlive())
	stale.Tell("any", bridge.Nil())
	assert.EqualValues(t, 0, second.Len())

	fresh := registry.Get("worker")
	require.NotNil(t, fresh)
	assert.True(t, fresh.IsAlive())
}

func TestRegistry_Next(t *testing.T) {
	registry := newTestRegistry()
	require.NotNil(t, registry.Register(newTestContext("alpha")))
	require.NotNil(t, registry.Register(newTestContext("beta")))
	require.NotNil(t, registry.Register(newTestContext("gamma")))

	name, ok := registry.Next("")
	require.True(t, ok)
	assert.Equal(t, "alpha", name)

	name, ok = registry.Next("alpha")
	require.True(t, ok)
	assert.Equal(t, "beta", name)

	// the previous name is folded like any other lookup
	name, ok = registry.Next("BETA")
	require.True(t, ok)
	assert.Equal(t, "gamma", name)

	_, ok = registry.Next("gamma")
	assert.False(t, ok)

	_, ok = registry.Next("unknown")
	assert.False(t, ok)
}

func TestRegistry_NextOnEmpty(t *testing.T) {
	registry := newTestRegistry()
	name, ok := registry.Next("")
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestRegistry_NextAfterRemoval(t *testing.T) {
	registry := newTestRegistry()
	require.NotNil(t, registry.Register(newTestContext("alpha")))
	beta := registry.Register(newTestContext("beta"))
	require.NotNil(t, beta)
	require.NotNil(t, registry.Register(newTestContext("gamma")))

	beta.Close()

	// the survivors keep their relative order
	name, ok := registry.Next("alpha")
	require.True(t, ok)
	assert.Equal(t, "gamma", name)

	// continuing from the removed name ends the walk
	_, ok = registry.Next("beta")
	assert.False(t, ok)

	assert.Equal(t, []string{"alpha", "gamma"}, registry.Names())
	assert.Equal(t, 2, registry.Len())
}

func TestRegistry_WithMeter(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	registry := NewRegistry(WithLogger(log.DiscardLogger), WithMeter(meter))
	require.NotNil(t, registry)
	require.NotNil(t, registry.metrics)

	mailbox := registry.Register(newTestContext("worker"))
	require.NotNil(t, mailbox)
	mailbox.Send("any", bridge.Nil())
	registry.Process()
}
