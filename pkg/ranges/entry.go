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

// Of constructs an unbounded, ascending range over all values of T, starting
// from zero.
func Of[T Number]() Range[T] {
	return New(DomainOf[T]())
}

// From constructs an unbounded, ascending range starting from a given value.
func From[T Number](from T) Range[T] {
	return Of[T]().From(from)
}

// To constructs a range from zero up to and including a given value.
func To[T Number](to T) Range[T] {
	return Of[T]().To(to)
}

// Until constructs a range from zero up to, but excluding, a given value.
func Until[T Number](until T) Range[T] {
	return Of[T]().Until(until)
}

// Step constructs an unbounded range starting from zero which advances by a
// given step.  The range is descending if the step is negative.
func Step[T Number](step T) Range[T] {
	return Of[T]().Step(step)
}
