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
	"fmt"
	"strconv"
)

// Kind identifies which member of the closed value set a Value carries.
type Kind int

const (
	// KindNil is the absence of a value. The zero Value is nil.
	KindNil Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindInt is a 64-bit signed integer.
	KindInt
	// KindFloat is a 64-bit float.
	KindFloat
	// KindString is an immutable string.
	KindString
	// KindList is an ordered, heap-owned sequence.
	KindList
	// KindMap is a heap-owned mapping with primitive keys.
	KindMap
	// KindFunc is a reference to a callable owned by its defining heap.
	KindFunc
	// KindHandle is an opaque, heap-independent host pointer.
	KindHandle
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindFunc:
		return "func"
	case KindHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// Value is a single scripting value: one member of the closed kind set.
//
// Primitives (nil, bool, int, float, string) are self-contained and belong to
// every heap at once. Lists and maps belong to the heap that allocated them.
// Function references belong to their defining heap and opaque handles to the
// host. Values are cheap to copy by assignment; only the container kinds
// share structure when assigned, which is why cross-heap transfers go through
// Copy.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	list   *List
	m      *Map
	fn     *FuncRef
	handle any
}

// Nil returns the nil value. It is also the zero Value.
func Nil() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Handle wraps an opaque host pointer. The host guarantees the wrapped value
// is independent of any heap; the bridge moves it by reference.
func Handle(v any) Value { return Value{kind: KindHandle, handle: v} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether the value is nil.
func (v Value) IsNil() bool { return v.kind == KindNil }

// Bool returns the boolean payload. It is false for any other kind.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload. It is zero for any other kind.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload. It is zero for any other kind.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload. It is empty for any other kind.
func (v Value) Str() string { return v.s }

// List returns the list payload or nil when the value is not a list.
func (v Value) List() *List { return v.list }

// Map returns the map payload or nil when the value is not a map.
func (v Value) Map() *Map { return v.m }

// Func returns the function reference or nil when the value is not one.
func (v Value) Func() *FuncRef { return v.fn }

// Handle returns the opaque host pointer or nil when the value is not a
// handle.
func (v Value) Handle() any {
	if v.kind != KindHandle {
		return nil
	}
	return v.handle
}

// Equal reports deep structural equality. Lists and maps compare element by
// element; function references and handles compare by identity. Cyclic
// containers are compared up to pointer identity: a container always equals
// itself.
func (v Value) Equal(other Value) bool {
	return equalValues(v, other, nil)
}

type valuePair struct{ a, b any }

func equalValues(a, b Value, seen map[valuePair]struct{}) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindFunc:
		return a.fn == b.fn
	case KindHandle:
		return a.handle == b.handle
	case KindList:
		if a.list == b.list {
			return true
		}
		if a.list == nil || b.list == nil || a.list.Len() != b.list.Len() {
			return false
		}
		pair := valuePair{a.list, b.list}
		if _, ok := seen[pair]; ok {
			return true
		}
		if seen == nil {
			seen = make(map[valuePair]struct{})
		}
		seen[pair] = struct{}{}
		for i := range a.list.items {
			if !equalValues(a.list.items[i], b.list.items[i], seen) {
				return false
			}
		}
		return true
	case KindMap:
		if a.m == b.m {
			return true
		}
		if a.m == nil || b.m == nil || a.m.Len() != b.m.Len() {
			return false
		}
		pair := valuePair{a.m, b.m}
		if _, ok := seen[pair]; ok {
			return true
		}
		if seen == nil {
			seen = make(map[valuePair]struct{})
		}
		seen[pair] = struct{}{}
		for _, k := range a.m.keys {
			bv, ok := b.m.items[k]
			if !ok || !equalValues(a.m.items[k], bv, seen) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value for diagnostics. Containers render shallowly so
// that cyclic structures stay printable.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindList:
		if v.list == nil {
			return "list(<nil>)"
		}
		return fmt.Sprintf("list(len=%d)", v.list.Len())
	case KindMap:
		if v.m == nil {
			return "map(<nil>)"
		}
		return fmt.Sprintf("map(len=%d)", v.m.Len())
	case KindFunc:
		if v.fn == nil {
			return "func(<nil>)"
		}
		return fmt.Sprintf("func(%s#%d)", v.fn.origin.Name(), v.fn.id)
	case KindHandle:
		return fmt.Sprintf("handle(%T)", v.handle)
	default:
		return "unknown"
	}
}

// Key is the comparable form of a primitive value, usable as a map key.
// Nil is deliberately not a valid key.
type Key struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// BoolKey returns the key form of a boolean.
func BoolKey(b bool) Key { return Key{kind: KindBool, b: b} }

// IntKey returns the key form of an integer.
func IntKey(i int64) Key { return Key{kind: KindInt, i: i} }

// FloatKey returns the key form of a float.
func FloatKey(f float64) Key { return Key{kind: KindFloat, f: f} }

// StringKey returns the key form of a string.
func StringKey(s string) Key { return Key{kind: KindString, s: s} }

// Kind returns the key's kind.
func (k Key) Kind() Kind { return k.kind }

// Value returns the key as a plain value.
func (k Key) Value() Value {
	switch k.kind {
	case KindBool:
		return Bool(k.b)
	case KindInt:
		return Int(k.i)
	case KindFloat:
		return Float(k.f)
	case KindString:
		return String(k.s)
	default:
		return Nil()
	}
}

// String renders the key for diagnostics.
func (k Key) String() string { return k.Value().String() }

// AsKey converts a primitive value to its key form. It reports false for
// nil and for container, function and handle kinds.
func (v Value) AsKey() (Key, bool) {
	switch v.kind {
	case KindBool:
		return BoolKey(v.b), true
	case KindInt:
		return IntKey(v.i), true
	case KindFloat:
		return FloatKey(v.f), true
	case KindString:
		return StringKey(v.s), true
	default:
		return Key{}, false
	}
}
