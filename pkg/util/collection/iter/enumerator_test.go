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

import (
	"testing"
)

func Test_Array_01(t *testing.T) {
	checkEnumerator(t, NewArrayEnumerator[uint](nil), []uint{})
}

func Test_Array_02(t *testing.T) {
	checkEnumerator(t, NewArrayEnumerator([]uint{1, 2, 3}), []uint{1, 2, 3})
}

func Test_Unit_01(t *testing.T) {
	checkEnumerator(t, NewUnitEnumerator('a'), []rune{'a'})
}

func Test_Append_01(t *testing.T) {
	left := NewArrayEnumerator([]int{1, 2})
	right := NewArrayEnumerator([]int{3})
	checkEnumerator(t, Append(left, right), []int{1, 2, 3})
}

func Test_Append_02(t *testing.T) {
	left := NewArrayEnumerator([]int{})
	right := NewUnitEnumerator(7)
	checkEnumerator(t, Append(left, right), []int{7})
}

func Test_Take_01(t *testing.T) {
	checkEnumerator(t, Take(NewArrayEnumerator([]int{1, 2, 3}), 2), []int{1, 2})
}

func Test_Take_02(t *testing.T) {
	checkEnumerator(t, Take(NewArrayEnumerator([]int{1, 2}), 5), []int{1, 2})
}

func Test_Take_03(t *testing.T) {
	checkEnumerator(t, Take(NewArrayEnumerator([]int{1, 2}), 0), []int{})
}

func Test_Take_04(t *testing.T) {
	// Taking from an unbounded enumerator only pulls what is needed.
	counter := &counterEnumerator{}
	checkEnumerator(t, Take[uint](counter, 3), []uint{0, 1, 2})
	//
	if counter.next != 3 {
		t.Errorf("expected 3 items pulled, got %d", counter.next)
	}
}

func Test_Find_01(t *testing.T) {
	index, ok := Find(NewArrayEnumerator([]int{5, 6, 7}), func(i int) bool { return i > 5 })
	//
	if !ok || index != 1 {
		t.Errorf("expected (1,true), got (%d,%t)", index, ok)
	}
}

func Test_Find_02(t *testing.T) {
	_, ok := Find(NewArrayEnumerator([]int{5, 6, 7}), func(i int) bool { return i > 7 })
	//
	if ok {
		t.Errorf("expected no match")
	}
}

func Test_Count_01(t *testing.T) {
	if n := Count(NewArrayEnumerator([]int{5, 6, 7})); n != 3 {
		t.Errorf("expected 3 items, got %d", n)
	}
}

func Test_ForEach_01(t *testing.T) {
	sum := 0
	ForEach(NewArrayEnumerator([]int{1, 2, 3}), func(i int) { sum += i })
	//
	if sum != 6 {
		t.Errorf("expected 6, got %d", sum)
	}
}

func Test_Seq_01(t *testing.T) {
	var items []uint
	//
	for i := range Seq[uint](&counterEnumerator{}) {
		if i == 4 {
			break
		}
		//
		items = append(items, i)
	}
	//
	if !arrayEquals(items, []uint{0, 1, 2, 3}) {
		t.Errorf("expected [0 1 2 3], got %v", items)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// Unbounded enumerator over the natural numbers.
type counterEnumerator struct {
	next uint
}

func (p *counterEnumerator) HasNext() bool {
	return true
}

func (p *counterEnumerator) Next() uint {
	p.next++
	return p.next - 1
}

func checkEnumerator[E comparable](t *testing.T, enumerator Enumerator[E], expected []E) {
	items := Collect(enumerator)
	//
	if !arrayEquals(items, expected) {
		t.Errorf("expected %v, got %v", expected, items)
	}
	// Sanity check enumerator drained
	if enumerator.HasNext() {
		t.Errorf("expected %d elements, got more", len(expected))
	}
}

func arrayEquals[T comparable](lhs []T, rhs []T) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	// Check each item in turn
	for i := 0; i < len(lhs); i++ {
		if lhs[i] != rhs[i] {
			return false
		}
	}
	// Done
	return true
}
