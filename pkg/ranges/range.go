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
	"fmt"

	"github.com/consensys/go-steprange/pkg/util"
)

// Range is a lazily evaluated sequence of values drawn from a scalar domain.
// It starts at a given value (the cursor) and repeatedly advances by a fixed
// step until either a bound is passed, or the next value would not be
// representable in the domain.  A range is configured through a chain of
// calls, each of which returns an updated copy, and then traversed by pulling
// values one at a time (see Pull, HasNext/Next or All).
//
// Traversal mutates the range in place, and therefore a range must not be
// traversed by more than one consumer at a time.  Since ranges are plain
// values, assigning a range to another variable creates an independent copy.
// Ranges should be constructed via one of the entry functions (e.g. From or
// New), since the zero value has no domain and is therefore always empty.
type Range[T any] struct {
	// Current value, mutated during traversal
	from T
	// Optional bound
	to util.Option[T]
	// Amount to advance by
	step T
	// Whether or not the bound itself is included
	inclusive bool
	// Whether or not step is negative.  This is always derived from step, and
	// selects which direction the bound is checked in.
	reverse bool
	// Latched when the successor of the cursor could not be represented.  Once
	// set, this is never cleared.
	done bool
	// Capabilities of the underlying scalar type
	dom Domain[T]
}

// New constructs an unbounded, ascending range over a given domain.  The range
// starts from the domain's zero, advances by its one, and is inclusive of any
// bound subsequently set.
func New[T any](dom Domain[T]) Range[T] {
	one := dom.One()
	//
	return Range[T]{
		from:      dom.Zero(),
		to:        util.None[T](),
		step:      one,
		inclusive: true,
		reverse:   dom.IsNegative(one),
		done:      false,
		dom:       dom,
	}
}

// From returns a copy of this range which starts at a given value.
func (r Range[T]) From(from T) Range[T] {
	r.from = from
	return r
}

// To returns a copy of this range bounded inclusively by a given value.
func (r Range[T]) To(to T) Range[T] {
	r.to = util.Some(to)
	r.inclusive = true
	//
	return r
}

// Until returns a copy of this range bounded exclusively by a given value.
func (r Range[T]) Until(until T) Range[T] {
	r.to = util.Some(until)
	r.inclusive = false
	//
	return r
}

// Step returns a copy of this range which advances by a given amount.  A
// negative step reverses the direction of the range, such that any bound is
// treated as a lower bound.
func (r Range[T]) Step(step T) Range[T] {
	r.step = step
	//
	if r.dom != nil {
		r.reverse = r.dom.IsNegative(step)
	}
	//
	return r
}

// Cursor returns the value which would be produced next, assuming the range is
// not yet exhausted.
func (r Range[T]) Cursor() T {
	return r.from
}

// Bound returns the bound configured for this range, if any.
func (r Range[T]) Bound() util.Option[T] {
	return r.to
}

// Limit returns the effective bound of this range.  That is the configured
// bound when present, otherwise the largest value of the domain (if it has
// one).
func (r Range[T]) Limit() util.Option[T] {
	if r.dom == nil {
		return r.to
	}
	//
	return r.to.Or(r.dom.Max())
}

// StepSize returns the amount this range advances by.
func (r Range[T]) StepSize() T {
	return r.step
}

// Inclusive determines whether or not the bound of this range is included.
func (r Range[T]) Inclusive() bool {
	return r.inclusive
}

// Reverse determines whether or not this range is descending.
func (r Range[T]) Reverse() bool {
	return r.reverse
}

// Done determines whether or not this range has overflowed its domain.  Note
// that a range which is not done may still be exhausted by its bound.
func (r Range[T]) Done() bool {
	return r.done
}

func (r Range[T]) String() string {
	var op = ".."
	//
	if to, ok := r.to.Get(); ok {
		if r.inclusive {
			op = "..="
		}
		//
		return fmt.Sprintf("%v%s%v step %v", r.from, op, to, r.step)
	}
	//
	return fmt.Sprintf("%v%s step %v", r.from, op, r.step)
}
