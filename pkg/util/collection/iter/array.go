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

// ArrayEnumerator provides an enumerator implementation for an Array.
type arrayEnumerator[T any] struct {
	items []T
	index uint
}

// NewArrayEnumerator construct an enumerator over an array of items.
func NewArrayEnumerator[T any](items []T) Enumerator[T] {
	return &arrayEnumerator[T]{items, 0}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *arrayEnumerator[T]) HasNext() bool {
	return p.index < uint(len(p.items))
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *arrayEnumerator[T]) Next() T {
	next := p.items[p.index]
	p.index++

	return next
}
