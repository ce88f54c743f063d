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

package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeap(t *testing.T) {
	h1 := NewHeap("alpha")
	h2 := NewHeap("alpha")
	assert.Equal(t, "alpha", h1.Name())
	assert.NotEqual(t, h1.ID(), h2.ID())
}

func TestHeapOwnership(t *testing.T) {
	owner := NewHeap("owner")
	other := NewHeap("other")

	list := owner.NewList(Int(1))
	assert.True(t, owner.Owns(list))
	assert.False(t, other.Owns(list))

	m := owner.NewMap()
	assert.True(t, owner.Owns(m))
	assert.False(t, other.Owns(m))

	// primitives and handles belong everywhere
	assert.True(t, other.Owns(Int(1)))
	assert.True(t, other.Owns(Nil()))
	assert.True(t, other.Owns(Handle(t)))
	// function references may be read anywhere
	assert.True(t, other.Owns(owner.NewFunc(func() {})))
}

func TestListOperations(t *testing.T) {
	heap := NewHeap("test")
	v := heap.NewList(Int(1), Int(2))
	list := v.List()
	require.NotNil(t, list)
	require.Equal(t, 2, list.Len())

	list.Append(Int(3))
	assert.Equal(t, 3, list.Len())
	assert.True(t, list.At(2).Equal(Int(3)))

	list.Set(0, String("replaced"))
	assert.True(t, list.At(0).Equal(String("replaced")))
	assert.Same(t, heap, list.Owner())
}

func TestMapOperations(t *testing.T) {
	heap := NewHeap("test")
	v := heap.NewMap()
	m := v.Map()
	require.NotNil(t, m)

	m.Set(StringKey("b"), Int(2))
	m.Set(StringKey("a"), Int(1))
	m.Set(IntKey(3), String("three"))
	require.Equal(t, 3, m.Len())

	got, ok := m.Get(StringKey("a"))
	require.True(t, ok)
	assert.True(t, got.Equal(Int(1)))

	// keys keep insertion order, updates keep position
	m.Set(StringKey("b"), Int(20))
	keys := m.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, StringKey("b"), keys[0])
	assert.Equal(t, StringKey("a"), keys[1])
	assert.Equal(t, IntKey(3), keys[2])

	m.Delete(StringKey("a"))
	assert.Equal(t, 2, m.Len())
	_, ok = m.Get(StringKey("a"))
	assert.False(t, ok)
	keys = m.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, StringKey("b"), keys[0])
	assert.Equal(t, IntKey(3), keys[1])

	// deleting a missing key is a no-op
	m.Delete(StringKey("missing"))
	assert.Equal(t, 2, m.Len())
}

func TestFuncRef(t *testing.T) {
	heap := NewHeap("scripts")
	impl := func() int { return 1 }
	v := heap.NewFunc(impl)
	ref := v.Func()
	require.NotNil(t, ref)
	assert.Same(t, heap, ref.Origin())
	assert.NotNil(t, ref.Impl())

	// ids are unique within the heap
	other := heap.NewFunc(impl)
	assert.NotEqual(t, ref.ID(), other.Func().ID())
}
