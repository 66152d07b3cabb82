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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Strategy for detecting overflow of a given integer width.
const (
	// Widen computes the sum in a strictly wider type and range checks it.
	Widen = "widen"
	// Carry uses the carry out of math/bits addition (unsigned, full width).
	Carry = "carry"
	// Guard checks the operands against the bounds before adding (signed, full
	// width).
	Guard = "guard"
)

// intSpec describes one integer width for which a checked adder is generated.
type intSpec struct {
	// Suffix used in the generated function name (e.g. Int8 gives AddInt8)
	Name string
	// Go type of operands and result
	Type string
	// Wider Go type used when Strategy is Widen
	Wide string
	// Smallest value of Type (empty for unsigned types)
	Min string
	// Largest value of Type
	Max string
	// Overflow detection strategy
	Strategy string
	// Whether or not Type is signed
	Signed bool
}

type checkedConfig struct {
	Types []intSpec
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-steprange")

	cfg := checkedConfig{Types: []intSpec{
		{"Int8", "int8", "int16", "math.MinInt8", "math.MaxInt8", Widen, true},
		{"Int16", "int16", "int32", "math.MinInt16", "math.MaxInt16", Widen, true},
		{"Int32", "int32", "int64", "math.MinInt32", "math.MaxInt32", Widen, true},
		{"Int64", "int64", "", "math.MinInt64", "math.MaxInt64", Guard, true},
		{"Int", "int", "", "math.MinInt", "math.MaxInt", Guard, true},
		{"Uint8", "uint8", "uint16", "", "math.MaxUint8", Widen, false},
		{"Uint16", "uint16", "uint32", "", "math.MaxUint16", Widen, false},
		{"Uint32", "uint32", "uint64", "", "math.MaxUint32", Widen, false},
		{"Uint64", "uint64", "", "", "math.MaxUint64", Carry, false},
		{"Uint", "uint", "", "", "math.MaxUint", Carry, false},
	}}

	assertNoError(bgen.Generate(cfg, "math", "templates",
		bavard.Entry{
			File:      "../../checked.go",
			Templates: []string{"checked.go.tmpl"},
		},
	), "for checked arithmetic")
	// run gofmt on the generated file
	runCmd("gofmt", "-w", "../../checked.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
