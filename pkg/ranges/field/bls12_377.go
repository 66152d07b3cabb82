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
package field

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-steprange/pkg/ranges"
	"github.com/consensys/go-steprange/pkg/util"
)

// Element is a member of the BLS12-377 scalar field.
type Element = fr.Element

// Domain is the BLS12-377 scalar field viewed as the integers 0..p-1, where p
// is the field modulus.  Elements are ordered by their canonical value, and
// advancing past p-1 is treated as overflow rather than wrapping around to
// zero.  Since a field has no notion of sign, every step is ascending.
type Domain struct{}

var _ ranges.Domain[Element] = Domain{}

// Zero returns the additive identity of the field.
func (Domain) Zero() Element {
	return Element{}
}

// One returns the multiplicative identity of the field.
func (Domain) One() Element {
	return fr.One()
}

// Max returns p-1, the largest canonical value of the field.
func (Domain) Max() util.Option[Element] {
	var m Element
	//
	m.SetOne()
	m.Neg(&m)
	//
	return util.Some(m)
}

// Next adds step to current in the field.  Since step is less than p, a sum
// whose canonical value is smaller than current must have wrapped around the
// modulus.
func (Domain) Next(current Element, step Element) (Element, bool) {
	var r Element
	//
	r.Add(&current, &step)
	//
	if r.Cmp(&current) < 0 {
		return Element{}, false
	}
	//
	return r, true
}

// IsNegative always returns false.
func (Domain) IsNegative(Element) bool {
	return false
}

// Compare orders elements by their canonical (i.e. non-Montgomery) value.
func (Domain) Compare(lhs Element, rhs Element) int {
	return lhs.Cmp(&rhs)
}

// Range constructs an unbounded range over all field elements, starting from
// zero.
func Range() ranges.Range[Element] {
	return ranges.New[Element](Domain{})
}

// From constructs an unbounded range of field elements starting from a given
// element.
func From(from Element) ranges.Range[Element] {
	return Range().From(from)
}

// To constructs a range of field elements from zero up to and including a
// given element.
func To(to Element) ranges.Range[Element] {
	return Range().To(to)
}

// Until constructs a range of field elements from zero up to, but excluding,
// a given element.
func Until(until Element) ranges.Range[Element] {
	return Range().Until(until)
}

// Step constructs an unbounded range of field elements starting from zero
// which advances by a given step.
func Step(step Element) ranges.Range[Element] {
	return Range().Step(step)
}

// FromUint64 constructs the field element with a given canonical value.
func FromUint64(val uint64) Element {
	return fr.NewElement(val)
}
