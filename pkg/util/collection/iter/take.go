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

// Take returns an enumerator which yields at most n items from the given
// enumerator.  The underlying enumerator is only advanced as items are taken.
func Take[T any](iter Enumerator[T], n uint) Enumerator[T] {
	return &takeEnumerator[T]{iter, n}
}

type takeEnumerator[T any] struct {
	enumerator Enumerator[T]
	// number of items left to take
	left uint
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *takeEnumerator[T]) HasNext() bool {
	return p.left > 0 && p.enumerator.HasNext()
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *takeEnumerator[T]) Next() T {
	p.left--
	//
	return p.enumerator.Next()
}
