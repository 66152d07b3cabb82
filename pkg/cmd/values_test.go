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
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-steprange/pkg/ranges"
	"github.com/consensys/go-steprange/pkg/ranges/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	r, err := configure(ranges.Of[int](), rangeArgs{from: "10", to: "0", step: "-3"}, parseSigned[int](0))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 7, 4, 1}, r.Collect())
	//
	r, err = configure(ranges.Of[int](), rangeArgs{until: "0x10", step: "5"}, parseSigned[int](0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 10, 15}, r.Collect())
}

func TestConfigureErrors(t *testing.T) {
	_, err := configure(ranges.Of[int](), rangeArgs{to: "1", until: "2"}, parseSigned[int](0))
	assert.ErrorIs(t, err, ErrBoundConflict)
	//
	_, err = configure(ranges.Of[uint8](), rangeArgs{from: "256"}, parseUnsigned[uint8](8))
	assert.ErrorContains(t, err, "invalid --from value")
	//
	_, err = configure(ranges.Of[uint8](), rangeArgs{step: "-1"}, parseUnsigned[uint8](8))
	assert.ErrorContains(t, err, "invalid --step value")
	//
	_, err = configure(ranges.Of[float32](), rangeArgs{to: "x"}, parseFloat[float32](32))
	assert.ErrorContains(t, err, "invalid --to value")
	//
	_, err = configure(ranges.Of[int8](), rangeArgs{until: "-129"}, parseSigned[int8](8))
	assert.ErrorContains(t, err, "invalid --until value")
}

func TestConfigureChars(t *testing.T) {
	r, err := configureChars(rangeArgs{from: "a", to: "U+0063"})
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'b', 'c'}, r.Collect())
	//
	_, err = configureChars(rangeArgs{from: "a", step: "2"})
	assert.ErrorIs(t, err, ErrCharStep)
	//
	_, err = configureChars(rangeArgs{to: "a", until: "b"})
	assert.ErrorIs(t, err, ErrBoundConflict)
	//
	_, err = configureChars(rangeArgs{from: "ab"})
	assert.ErrorContains(t, err, "invalid --from value")
}

func TestParseChar(t *testing.T) {
	for _, c := range []struct {
		text     string
		expected rune
	}{
		{"a", 'a'},
		{"é", 'é'},
		{"U+10FFFF", 0x10FFFF},
		{"U+0041", 'A'},
		{"�", 0xFFFD},
	} {
		r, err := parseChar(c.text)
		require.NoError(t, err, c.text)
		assert.Equal(t, c.expected, r, c.text)
	}
	//
	for _, text := range []string{"", "ab", "U+D800", "U+110000", "U+zz", "\xff"} {
		_, err := parseChar(text)
		assert.Error(t, err, "%q", text)
	}
}

func TestParseElement(t *testing.T) {
	e, err := parseElement("12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", formatElement(e))
	//
	r, err := configure(field.Range(), rangeArgs{from: "5", until: "8"}, parseElement)
	require.NoError(t, err)
	assert.Len(t, r.Collect(), 3)
	//
	_, err = parseElement("twelve")
	assert.Error(t, err)
}

func TestParseElementBounds(t *testing.T) {
	var (
		p      = fr.Modulus()
		pMinus = new(big.Int).Sub(p, big.NewInt(1))
		pPlus  = new(big.Int).Add(p, big.NewInt(1))
	)
	// The largest canonical value is accepted and printed as given
	e, err := parseElement(pMinus.String())
	require.NoError(t, err)
	assert.Equal(t, pMinus.String(), formatElement(e))
	//
	e, err = parseElement("0")
	require.NoError(t, err)
	assert.Equal(t, "0", formatElement(e))
	// Nothing is reduced modulo p
	for _, text := range []string{p.String(), pPlus.String(), "-1", "-0x1"} {
		_, err := parseElement(text)
		assert.ErrorContains(t, err, "is not in the field", text)
	}
}
