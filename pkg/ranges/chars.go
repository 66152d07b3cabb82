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
	"iter"
	"unicode"

	"github.com/consensys/go-steprange/pkg/util"
)

// Chars is a range over Unicode scalar values.  Unlike numeric ranges, a
// character range always advances to the immediate successor of the current
// character (skipping surrogates) and cannot be given a step.
type Chars struct {
	chars Range[rune]
}

// Runes constructs an unbounded range over all Unicode scalar values, starting
// from U+0000.
func Runes() Chars {
	return Chars{New[rune](charDomain{})}
}

// FromRune constructs an unbounded range of characters starting from a given
// character.
func FromRune(from rune) Chars {
	return Runes().From(from)
}

// ToRune constructs a range of characters from U+0000 up to and including a
// given character.
func ToRune(to rune) Chars {
	return Runes().To(to)
}

// UntilRune constructs a range of characters from U+0000 up to, but excluding,
// a given character.
func UntilRune(until rune) Chars {
	return Runes().Until(until)
}

// From returns a copy of this range which starts at a given character.  A start
// within the surrogate block moves forward to U+E000, whilst a start outside
// the range of scalar values gives a range which is already exhausted.
func (r Chars) From(from rune) Chars {
	c := r.chars
	//
	switch {
	case from < 0 || from > unicode.MaxRune:
		c = c.From(from)
		c.done = true
	case from >= surrogateMin && from <= surrogateMax:
		c = c.From(surrogateMax + 1)
	default:
		c = c.From(from)
	}
	//
	return Chars{c}
}

// To returns a copy of this range bounded inclusively by a given character.
func (r Chars) To(to rune) Chars {
	return Chars{r.chars.To(to)}
}

// Until returns a copy of this range bounded exclusively by a given character.
func (r Chars) Until(until rune) Chars {
	return Chars{r.chars.Until(until)}
}

// Pull produces the next character, or returns false if the range is
// exhausted.
func (r *Chars) Pull() (rune, bool) {
	return r.chars.Pull()
}

// HasNext checks whether or not this range will produce another character.
func (r *Chars) HasNext() bool {
	return r.chars.HasNext()
}

// Next returns the next character of this range.
func (r *Chars) Next() rune {
	return r.chars.Next()
}

// All returns a sequence over the characters of this range.  Each traversal
// operates on its own copy of the range.
func (r Chars) All() iter.Seq[rune] {
	return r.chars.All()
}

// Collect returns all remaining characters of this range in order.
func (r Chars) Collect() []rune {
	return r.chars.Collect()
}

// Cursor returns the character which would be produced next.
func (r Chars) Cursor() rune {
	return r.chars.Cursor()
}

// Bound returns the bound configured for this range, if any.
func (r Chars) Bound() util.Option[rune] {
	return r.chars.Bound()
}

// Inclusive determines whether or not the bound of this range is included.
func (r Chars) Inclusive() bool {
	return r.chars.Inclusive()
}

// Done determines whether or not this range has passed the last scalar value.
func (r Chars) Done() bool {
	return r.chars.Done()
}

func (r Chars) String() string {
	var op = ".."
	//
	if to, ok := r.chars.Bound().Get(); ok {
		if r.chars.Inclusive() {
			op = "..="
		}
		//
		return fmt.Sprintf("%U%s%U", r.chars.Cursor(), op, to)
	}
	//
	return fmt.Sprintf("%U%s", r.chars.Cursor(), op)
}
