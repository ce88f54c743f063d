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
	"testing"

	"go.uber.org/goleak"

	"github.com/tochemey/mailroom/bridge"
	"github.com/tochemey/mailroom/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testContext is a minimal execution context for tests: a name, an isolated
// heap and a failure sink.
type testContext struct {
	name string
	heap *bridge.Heap

	mu       sync.Mutex
	failures []error
}

var _ Context = (*testContext)(nil)

func newTestContext(name string) *testContext {
	return &testContext{
		name: name,
		heap: bridge.NewHeap(name),
	}
}

func (x *testContext) Name() string       { return x.name }
func (x *testContext) Heap() *bridge.Heap { return x.heap }

func (x *testContext) Fail(err error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.failures = append(x.failures, err)
}

func (x *testContext) Failures() []error {
	x.mu.Lock()
	defer x.mu.Unlock()
	out := make([]error, len(x.failures))
	copy(out, x.failures)
	return out
}

// heaplessContext registers with a name but no heap, which validation must
// reject.
type heaplessContext struct {
	name string
}

var _ Context = (*heaplessContext)(nil)

func (x *heaplessContext) Name() string       { return x.name }
func (x *heaplessContext) Heap() *bridge.Heap { return nil }
func (x *heaplessContext) Fail(error)         {}

func newTestRegistry() *Registry {
	return NewRegistry(WithLogger(log.DiscardLogger))
}
