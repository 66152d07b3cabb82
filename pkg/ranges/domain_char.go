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
	"unicode"

	"github.com/consensys/go-steprange/pkg/util"
)

// Bounds of the surrogate block, which contains no Unicode scalar values.
const (
	surrogateMin rune = 0xD800
	surrogateMax rune = 0xDFFF
)

// charDomain is the domain of Unicode scalar values.  It only supports
// stepping to the successor of a character, hence the step is ignored.
type charDomain struct{}

//nolint:revive
func (p charDomain) Zero() rune {
	return 0
}

//nolint:revive
func (p charDomain) One() rune {
	return 1
}

//nolint:revive
func (p charDomain) Max() util.Option[rune] {
	return util.Some(unicode.MaxRune)
}

// Next returns the scalar value following current, skipping over the
// surrogate block.  There is no successor for unicode.MaxRune, or for any value
// outside the range of scalar values.
//
//nolint:revive
func (p charDomain) Next(current rune, _ rune) (rune, bool) {
	switch {
	case current < 0 || current >= unicode.MaxRune:
		return 0, false
	case current >= surrogateMin-1 && current <= surrogateMax:
		return surrogateMax + 1, true
	}
	//
	return current + 1, true
}

//nolint:revive
func (p charDomain) IsNegative(_ rune) bool {
	return false
}

//nolint:revive
func (p charDomain) Compare(lhs rune, rhs rune) int {
	return cmp.Compare(lhs, rhs)
}
