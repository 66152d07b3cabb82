// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ranges

import (
	"iter"
	"slices"
)

// Pull produces the next value of this range, or returns false if the range is
// exhausted.  A value is produced whenever the cursor is within the bound.  If
// the successor of the cursor is not representable then the value is still
// produced, but the range latches as done and produces nothing further.
func (r *Range[T]) Pull() (T, bool) {
	var empty T
	//
	if !r.HasNext() {
		return empty, false
	}
	//
	val := r.from
	//
	if next, ok := r.dom.Next(r.from, r.step); ok {
		r.from = next
	} else {
		r.done = true
	}
	//
	return val, true
}

// HasNext checks whether or not this range will produce another value.  This
// does not modify the range.
func (r *Range[T]) HasNext() bool {
	// The zero value has no domain, and hence no values
	if r.done || r.dom == nil {
		return false
	}
	//
	to, ok := r.to.Get()
	// Unbounded ranges end only on overflow
	if !ok {
		return true
	}
	//
	c := r.dom.Compare(r.from, to)
	//
	switch {
	case !r.reverse && r.inclusive:
		return c <= 0
	case !r.reverse:
		return c < 0
	case r.inclusive:
		return c >= 0
	default:
		return c > 0
	}
}

// Next returns the next value of this range.  This should only be called when
// HasNext holds, otherwise the zero value is returned and the range is left
// unchanged.
func (r *Range[T]) Next() T {
	val, _ := r.Pull()
	return val
}

// All returns a sequence over the values of this range, for use with Go's
// range-over-func loops.  Each traversal of the sequence operates on its own
// copy of the range, leaving this range untouched.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := r
		//
		for val, ok := c.Pull(); ok; val, ok = c.Pull() {
			if !yield(val) {
				return
			}
		}
	}
}

// Collect returns all remaining values of this range in order, leaving this
// range untouched.  This does not return for a range which never ends.
func (r Range[T]) Collect() []T {
	return slices.Collect(r.All())
}
