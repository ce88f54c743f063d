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

	"github.com/tochemey/mailroom/bridge"
)

func TestHandle_NilIsUsable(t *testing.T) {
	registry := newTestRegistry()
	asker := newTestContext("asker")

	// a failed lookup hands back nil, and every method on it still works
	handle := registry.Get("missing")
	require.Nil(t, handle)

	assert.Empty(t, handle.Name())
	assert.False(t, handle.IsAlive())
	handle.Tell("any", bridge.Nil())

	response := handle.Ask(asker, "any", bridge.Nil())
	require.NotNil(t, response)
	assert.True(t, response.Received())
	assert.True(t, response.Value().IsNil())
}

func TestHandle_TellDelivers(t *testing.T) {
	registry := newTestRegistry()
	owner := newTestContext("worker")
	mailbox := registry.Register(owner)
	require.NotNil(t, mailbox)

	var got []int64
	mailbox.HandleFunc("count", func(payload bridge.Value) (bridge.Value, error) {
		got = append(got, payload.Int())
		return bridge.Nil(), nil
	})

	handle := registry.Get("worker")
	require.NotNil(t, handle)
	assert.Equal(t, "worker", handle.Name())
	assert.True(t, handle.IsAlive())

	handle.Tell("count", bridge.Int(1))
	handle.Tell("count", bridge.Int(2))
	registry.Process()

	assert.Equal(t, []int64{1, 2}, got)
}

func TestHandle_Ask(t *testing.T) {
	registry := newTestRegistry()
	owner := newTestContext("worker")
	asker := newTestContext("asker")
	mailbox := registry.Register(owner)
	require.NotNil(t, mailbox)

	mailbox.HandleFunc("double", func(payload bridge.Value) (bridge.Value, error) {
		return bridge.Int(payload.Int() * 2), nil
	})

	handle := registry.Get("worker")
	require.NotNil(t, handle)

	response := handle.Ask(asker, "double", bridge.Int(7))
	require.NotNil(t, response)
	assert.False(t, response.Received())

	registry.Process()

	require.True(t, response.Received())
	assert.EqualValues(t, 14, response.Value().Int())
}

func TestHandle_AskDeadTarget(t *testing.T) {
	registry := newTestRegistry()
	asker := newTestContext("asker")
	mailbox := registry.Register(newTestContext("worker"))
	require.NotNil(t, mailbox)

	handle := registry.Get("worker")
	require.NotNil(t, handle)

	mailbox.Close()

	response := handle.Ask(asker, "any", bridge.Int(1))
	require.NotNil(t, response)
	assert.True(t, response.Received())
	assert.True(t, response.Value().IsNil())
}

func TestHandle_AskRejectedByFullQueue(t *testing.T) {
	registry := newTestRegistry()
	asker := newTestContext("asker")
	mailbox := registry.Register(newTestContext("worker"), WithBoundedQueue(1))
	require.NotNil(t, mailbox)

	handle := registry.Get("worker")
	require.NotNil(t, handle)

	handle.Tell("fill", bridge.Nil())
	require.EqualValues(t, 1, mailbox.Len())

	// the queue is full, so the ask degrades like a dead target
	response := handle.Ask(asker, "any", bridge.Int(1))
	require.NotNil(t, response)
	assert.True(t, response.Received())
	assert.True(t, response.Value().IsNil())
	assert.EqualValues(t, 1, mailbox.Len())
}

func TestHandle_AskWithoutContext(t *testing.T) {
	registry := newTestRegistry()
	mailbox := registry.Register(newTestContext("worker"))
	require.NotNil(t, mailbox)
	mailbox.HandleFunc("echo", func(payload bridge.Value) (bridge.Value, error) {
		return payload, nil
	})

	handle := registry.Get("worker")
	require.NotNil(t, handle)

	// no asking context means no heap to land the result in; the response
	// still resolves, to nil
	response := handle.Ask(nil, "echo", bridge.Int(3))
	require.NotNil(t, response)
	registry.Process()
	assert.True(t, response.Received())
	assert.True(t, response.Value().IsNil())
}
