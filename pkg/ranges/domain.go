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
	"math"

	"github.com/consensys/go-steprange/pkg/util"
	xmath "github.com/consensys/go-steprange/pkg/util/math"
)

// Domain is the set of capabilities a scalar type must provide for it to be
// stepped through by a Range.  Implementations must be stateless, as a single
// domain is shared by every copy of a range.
type Domain[T any] interface {
	// Zero returns the additive identity of the domain.
	Zero() T
	// One returns the default step of the domain.
	One() T
	// Max returns the largest representable value for bounded domains, and is
	// used as the stand-in for an absent upper bound.
	Max() util.Option[T]
	// Next returns the successor of current when advancing by step.  This
	// returns false exactly when the result is not representable in the
	// domain.  It must never panic, and must never wrap around.
	Next(current T, step T) (T, bool)
	// IsNegative determines whether a given step moves backwards through the
	// domain.
	IsNegative(step T) bool
	// Compare returns -1, 0 or +1 depending on whether lhs is less than, equal
	// to or greater than rhs.
	Compare(lhs T, rhs T) int
}

// Number captures the built-in scalar types which have a domain provided by
// this package.  Characters are handled separately by Chars, since a rune is
// indistinguishable from an int32 at the type level.
type Number interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Built-in domains, one per scalar type.
var (
	int8Domain    Domain[int8]    = integerDomain[int8]{math.MaxInt8, xmath.AddInt8}
	int16Domain   Domain[int16]   = integerDomain[int16]{math.MaxInt16, xmath.AddInt16}
	int32Domain   Domain[int32]   = integerDomain[int32]{math.MaxInt32, xmath.AddInt32}
	int64Domain   Domain[int64]   = integerDomain[int64]{math.MaxInt64, xmath.AddInt64}
	intDomain     Domain[int]     = integerDomain[int]{math.MaxInt, xmath.AddInt}
	uint8Domain   Domain[uint8]   = integerDomain[uint8]{math.MaxUint8, xmath.AddUint8}
	uint16Domain  Domain[uint16]  = integerDomain[uint16]{math.MaxUint16, xmath.AddUint16}
	uint32Domain  Domain[uint32]  = integerDomain[uint32]{math.MaxUint32, xmath.AddUint32}
	uint64Domain  Domain[uint64]  = integerDomain[uint64]{math.MaxUint64, xmath.AddUint64}
	uintDomain    Domain[uint]    = integerDomain[uint]{math.MaxUint, xmath.AddUint}
	float32Domain Domain[float32] = floatDomain[float32]{}
	float64Domain Domain[float64] = floatDomain[float64]{}
)

// DomainOf returns the built-in domain for a given scalar type.
func DomainOf[T Number]() Domain[T] {
	var (
		zero T
		dom  any
	)
	//
	switch any(zero).(type) {
	case int8:
		dom = int8Domain
	case int16:
		dom = int16Domain
	case int32:
		dom = int32Domain
	case int64:
		dom = int64Domain
	case int:
		dom = intDomain
	case uint8:
		dom = uint8Domain
	case uint16:
		dom = uint16Domain
	case uint32:
		dom = uint32Domain
	case uint64:
		dom = uint64Domain
	case uint:
		dom = uintDomain
	case float32:
		dom = float32Domain
	case float64:
		dom = float64Domain
	}
	// Number is a closed set, so this cannot fail.
	return dom.(Domain[T])
}
