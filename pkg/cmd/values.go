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
package cmd

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-steprange/pkg/ranges"
	"golang.org/x/exp/constraints"
)

var (
	// ErrUnknownType is returned for an unsupported value type.
	ErrUnknownType = errors.New("unknown value type")
	// ErrBoundConflict is returned when both an inclusive and an exclusive
	// bound are given.
	ErrBoundConflict = errors.New("--to and --until are mutually exclusive")
	// ErrCharStep is returned when a step is given for a character range.
	ErrCharStep = errors.New("character ranges cannot be given a step")
)

// TYPES lists the value types supported by the seq command.
var TYPES = []string{"i8", "i16", "i32", "i64", "int", "u8", "u16", "u32", "u64", "uint", "f32", "f64", "char",
	"bls12-377"}

// rangeArgs holds the (unparsed) values configuring a range.  Empty strings
// indicate values which were not given.
type rangeArgs struct {
	from  string
	to    string
	until string
	step  string
}

// Parser converts a textual value into a value of the range's domain.
type Parser[T any] func(string) (T, error)

// configure applies the given arguments to a base range.
func configure[T any](base ranges.Range[T], args rangeArgs, parse Parser[T]) (ranges.Range[T], error) {
	var r = base
	//
	if args.to != "" && args.until != "" {
		return r, ErrBoundConflict
	}
	//
	if args.from != "" {
		v, err := parse(args.from)
		if err != nil {
			return r, fmt.Errorf("invalid --from value: %w", err)
		}
		//
		r = r.From(v)
	}
	//
	if args.to != "" {
		v, err := parse(args.to)
		if err != nil {
			return r, fmt.Errorf("invalid --to value: %w", err)
		}
		//
		r = r.To(v)
	} else if args.until != "" {
		v, err := parse(args.until)
		if err != nil {
			return r, fmt.Errorf("invalid --until value: %w", err)
		}
		//
		r = r.Until(v)
	}
	//
	if args.step != "" {
		v, err := parse(args.step)
		if err != nil {
			return r, fmt.Errorf("invalid --step value: %w", err)
		}
		//
		r = r.Step(v)
	}
	//
	return r, nil
}

// configureChars applies the given arguments to a character range.
func configureChars(args rangeArgs) (ranges.Chars, error) {
	var r = ranges.Runes()
	//
	if args.step != "" {
		return r, ErrCharStep
	} else if args.to != "" && args.until != "" {
		return r, ErrBoundConflict
	}
	//
	if args.from != "" {
		c, err := parseChar(args.from)
		if err != nil {
			return r, fmt.Errorf("invalid --from value: %w", err)
		}
		//
		r = r.From(c)
	}
	//
	if args.to != "" {
		c, err := parseChar(args.to)
		if err != nil {
			return r, fmt.Errorf("invalid --to value: %w", err)
		}
		//
		r = r.To(c)
	} else if args.until != "" {
		c, err := parseChar(args.until)
		if err != nil {
			return r, fmt.Errorf("invalid --until value: %w", err)
		}
		//
		r = r.Until(c)
	}
	//
	return r, nil
}

func parseSigned[T constraints.Signed](bitSize int) Parser[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bitSize)
		return T(v), err
	}
}

func parseUnsigned[T constraints.Unsigned](bitSize int) Parser[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bitSize)
		return T(v), err
	}
}

func parseFloat[T constraints.Float](bitSize int) Parser[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bitSize)
		return T(v), err
	}
}

// Parse a character given either literally (e.g. "a") or as a code point (e.g.
// "U+0061").
func parseChar(s string) (rune, error) {
	if hex, ok := strings.CutPrefix(s, "U+"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, err
		} else if !utf8.ValidRune(rune(v)) {
			return 0, fmt.Errorf("%s is not a unicode scalar value", s)
		}
		//
		return rune(v), nil
	}
	//
	c, n := utf8.DecodeRuneInString(s)
	//
	if (c == utf8.RuneError && n <= 1) || n != len(s) {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	//
	return c, nil
}

// Parse a field element given as an integer in 0..p-1, where p is the field
// modulus.  Values outside this range are rejected rather than reduced.
func parseElement(s string) (fr.Element, error) {
	var (
		e fr.Element
		v big.Int
	)
	//
	if _, ok := v.SetString(s, 0); !ok {
		return e, fmt.Errorf("expected an integer, got %q", s)
	} else if v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return e, fmt.Errorf("%s is not in the field (0..p-1)", s)
	}
	//
	e.SetBigInt(&v)
	//
	return e, nil
}

// Format a field element as its canonical value in 0..p-1.
func formatElement(e fr.Element) string {
	return e.BigInt(new(big.Int)).String()
}
