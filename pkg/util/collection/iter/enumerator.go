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
package iter

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Enumerator abstracts the process of iterating over a sequence of elements.
// Items are pulled one at a time by the caller, and an enumerator is never
// rewound.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.
	Next() T
}

// Find returns the index of the first item matching a given predicate, or
// false if no match is found.  This consumes items up to and including the
// match.
func Find[T any](iter Enumerator[T], predicate Predicate[T]) (uint, bool) {
	index := uint(0)

	for iter.HasNext() {
		if predicate(iter.Next()) {
			return index, true
		}

		index++
	}
	// Failed to find it
	return 0, false
}

// Count drains the enumerator, returning the number of items visited.
func Count[T any](iter Enumerator[T]) uint {
	count := uint(0)

	for iter.HasNext() {
		iter.Next()
		//
		count++
	}
	//
	return count
}

// Collect allocates a new array containing all remaining items of the given
// enumerator.  This drains the enumerator, and so will not return for an
// enumerator which never ends.
func Collect[T any](iter Enumerator[T]) []T {
	var items = make([]T, 0)
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}

// ForEach applies a given function to every remaining item of the enumerator.
func ForEach[T any](iter Enumerator[T], fn func(T)) {
	for iter.HasNext() {
		fn(iter.Next())
	}
}

// Seq adapts an enumerator into a push-style sequence, as accepted by Go's
// range-over-func loops (i.e. it is assignable to iter.Seq).  Items are pulled
// from the enumerator lazily, and stopping early leaves the rest unconsumed.
func Seq[T any](iter Enumerator[T]) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for iter.HasNext() {
			if !yield(iter.Next()) {
				return
			}
		}
	}
}
