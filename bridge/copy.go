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

// Copy returns a value equivalent to v and owned by dst. Lists and maps are
// deep-copied, including when they already belong to dst: the receiving
// context always gets a container nobody else can mutate. Primitives pass
// through unchanged, function references keep pointing at their defining
// heap, and opaque handles move by reference.
//
// Copy is structure-preserving: aliasing inside v (two paths reaching one
// container) and cycles survive in the result, so it terminates on any input.
func Copy(v Value, dst *Heap) Value {
	if dst == nil {
		return Nil()
	}
	switch v.kind {
	case KindList, KindMap:
		c := &copier{dst: dst}
		return c.copy(v)
	default:
		return v
	}
}

// copier tracks source containers already copied during one Copy call so
// that shared and cyclic structure maps onto the same target containers.
type copier struct {
	dst   *Heap
	lists map[*List]*List
	maps  map[*Map]*Map
}

func (c *copier) copy(v Value) Value {
	switch v.kind {
	case KindList:
		if v.list == nil {
			return Nil()
		}
		return Value{kind: KindList, list: c.copyList(v.list)}
	case KindMap:
		if v.m == nil {
			return Nil()
		}
		return Value{kind: KindMap, m: c.copyMap(v.m)}
	default:
		return v
	}
}

func (c *copier) copyList(src *List) *List {
	if done, ok := c.lists[src]; ok {
		return done
	}
	out := &List{owner: c.dst}
	if c.lists == nil {
		c.lists = make(map[*List]*List)
	}
	// register before descending so cycles resolve to out
	c.lists[src] = out
	out.items = make([]Value, len(src.items))
	for i, item := range src.items {
		out.items[i] = c.copy(item)
	}
	return out
}

func (c *copier) copyMap(src *Map) *Map {
	if done, ok := c.maps[src]; ok {
		return done
	}
	out := &Map{owner: c.dst, items: make(map[Key]Value, len(src.items))}
	if c.maps == nil {
		c.maps = make(map[*Map]*Map)
	}
	c.maps[src] = out
	out.keys = make([]Key, len(src.keys))
	copy(out.keys, src.keys)
	for _, k := range src.keys {
		out.items[k] = c.copy(src.items[k])
	}
	return out
}
