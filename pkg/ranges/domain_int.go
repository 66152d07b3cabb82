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

	"github.com/consensys/go-steprange/pkg/util"
	"golang.org/x/exp/constraints"
)

// integerDomain is the domain of a fixed-width integer type.  Overflow is
// detected by a checked adder specific to the width of T, rather than by
// inspecting the (possibly wrapped) sum afterwards.
type integerDomain[T constraints.Integer] struct {
	// Largest representable value
	max T
	// Checked addition for this width
	add func(T, T) (T, bool)
}

//nolint:revive
func (p integerDomain[T]) Zero() T {
	return 0
}

//nolint:revive
func (p integerDomain[T]) One() T {
	return 1
}

//nolint:revive
func (p integerDomain[T]) Max() util.Option[T] {
	return util.Some(p.max)
}

//nolint:revive
func (p integerDomain[T]) Next(current T, step T) (T, bool) {
	return p.add(current, step)
}

// IsNegative is always false for unsigned types.
//
//nolint:revive
func (p integerDomain[T]) IsNegative(step T) bool {
	return step < 0
}

//nolint:revive
func (p integerDomain[T]) Compare(lhs T, rhs T) int {
	return cmp.Compare(lhs, rhs)
}
