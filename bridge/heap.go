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
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Heap is the allocation arena of one scripting context. Containers created
// through a heap belong to it for their whole lifetime; ownership never
// transfers. A heap is safe for use by its owning context only, which is all
// the cooperative scheduling model requires.
type Heap struct {
	id     uuid.UUID
	name   string
	nextFn *atomic.Uint64
}

// NewHeap creates a heap. The name is a diagnostic label, typically the
// owning context's name.
func NewHeap(name string) *Heap {
	return &Heap{
		id:     uuid.New(),
		name:   name,
		nextFn: atomic.NewUint64(0),
	}
}

// ID returns the heap's unique identity.
func (h *Heap) ID() uuid.UUID { return h.id }

// Name returns the heap's diagnostic label.
func (h *Heap) Name() string { return h.name }

// NewList allocates a list owned by this heap, seeded with the given items.
func (h *Heap) NewList(items ...Value) Value {
	list := &List{owner: h}
	if len(items) > 0 {
		list.items = append(make([]Value, 0, len(items)), items...)
	}
	return Value{kind: KindList, list: list}
}

// NewMap allocates an empty map owned by this heap.
func (h *Heap) NewMap() Value {
	return Value{kind: KindMap, m: &Map{owner: h, items: make(map[Key]Value)}}
}

// NewFunc binds an opaque callable to this heap and returns its reference
// value. The bridge moves the reference across heaps without touching the
// callable; invoking it remains the defining context's business.
func (h *Heap) NewFunc(impl any) Value {
	ref := &FuncRef{origin: h, id: h.nextFn.Inc(), impl: impl}
	return Value{kind: KindFunc, fn: ref}
}

// Owns reports whether v may be read by this heap's context without
// bridging. Primitives and handles are heap-independent; containers must be
// owned by this heap; function references may be read anywhere (only
// invocation is restricted to the origin).
func (h *Heap) Owns(v Value) bool {
	switch v.kind {
	case KindList:
		return v.list != nil && v.list.owner == h
	case KindMap:
		return v.m != nil && v.m.owner == h
	default:
		return true
	}
}

// List is an ordered sequence owned by exactly one heap.
type List struct {
	owner *Heap
	items []Value
}

// Owner returns the owning heap.
func (l *List) Owner() *Heap { return l.owner }

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// At returns the item at index i. It panics when i is out of range, the same
// contract as a slice index.
func (l *List) At(i int) Value { return l.items[i] }

// Set replaces the item at index i.
func (l *List) Set(i int, v Value) { l.items[i] = v }

// Append adds items to the end of the list.
func (l *List) Append(items ...Value) { l.items = append(l.items, items...) }

// Map is a mapping with primitive keys, owned by exactly one heap. Key
// insertion order is preserved so that enumeration is deterministic.
type Map struct {
	owner *Heap
	keys  []Key
	items map[Key]Value
}

// Owner returns the owning heap.
func (m *Map) Owner() *Heap { return m.owner }

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.items) }

// Get returns the value stored under k.
func (m *Map) Get(k Key) (Value, bool) {
	v, ok := m.items[k]
	return v, ok
}

// Set stores v under k, keeping the key's original insertion position when
// it already exists.
func (m *Map) Set(k Key, v Value) {
	if _, ok := m.items[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.items[k] = v
}

// Delete removes the entry stored under k, if any.
func (m *Map) Delete(k Key) {
	if _, ok := m.items[k]; !ok {
		return
	}
	delete(m.items, k)
	for i, existing := range m.keys {
		if existing == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map) Keys() []Key {
	out := make([]Key, len(m.keys))
	copy(out, m.keys)
	return out
}

// FuncRef identifies a callable owned by its defining heap. The reference
// travels freely across heaps; the callable itself never does.
type FuncRef struct {
	origin *Heap
	id     uint64
	impl   any
}

// Origin returns the defining heap.
func (f *FuncRef) Origin() *Heap { return f.origin }

// ID returns the reference id, unique within the origin heap.
func (f *FuncRef) ID() uint64 { return f.id }

// Impl returns the opaque callable handed to NewFunc. Only the origin
// context knows how to invoke it.
func (f *FuncRef) Impl() any { return f.impl }
