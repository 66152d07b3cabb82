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
	"cmp"
	"math"

	"github.com/consensys/go-steprange/pkg/util"
	"golang.org/x/exp/constraints"
)

// floatDomain is the domain of a floating point type.  Its maximum is +Inf,
// which no finite cursor ever reaches.  Hence, an unbounded ascending range
// over a float only ends when the cursor itself overflows, which for a small
// step may never happen (i.e. it is unbounded forever).
type floatDomain[T constraints.Float] struct{}

//nolint:revive
func (p floatDomain[T]) Zero() T {
	return 0
}

//nolint:revive
func (p floatDomain[T]) One() T {
	return 1
}

//nolint:revive
func (p floatDomain[T]) Max() util.Option[T] {
	return util.Some(T(math.Inf(1)))
}

// Next fails when the sum is not finite, which covers overflow to either
// infinity as well as a NaN cursor or step.
//
//nolint:revive
func (p floatDomain[T]) Next(current T, step T) (T, bool) {
	r := current + step
	//
	if math.IsInf(float64(r), 0) || math.IsNaN(float64(r)) {
		return 0, false
	}
	//
	return r, true
}

//nolint:revive
func (p floatDomain[T]) IsNegative(step T) bool {
	return step < 0
}

//nolint:revive
func (p floatDomain[T]) Compare(lhs T, rhs T) int {
	return cmp.Compare(lhs, rhs)
}
