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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBench(t *testing.T) {
	var sb strings.Builder
	//
	require.NoError(t, runBench(benchConfig{n: 1000, step: 7}, &sb))
	//
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, len(benchCases)+1)
	assert.True(t, strings.HasPrefix(lines[0], "case "), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "check"), lines[0])
	// Range cases report agreement with the preceding native case
	for i, c := range benchCases {
		assert.True(t, strings.HasPrefix(lines[i+1], c.name), lines[i+1])
		assert.Equal(t, i%2 == 1, strings.HasSuffix(lines[i+1], " ok"), lines[i+1])
	}
	// No escapes unless asked for
	assert.NotContains(t, sb.String(), "\033")
}

func TestRunBenchAnsi(t *testing.T) {
	var sb strings.Builder
	//
	require.NoError(t, runBench(benchConfig{n: 10, step: 2, ansi: true}, &sb))
	assert.Contains(t, sb.String(), "\033[32m   ok\033[0m")
}

func TestBenchChecksums(t *testing.T) {
	for _, cfg := range []benchConfig{{n: 1, step: 1}, {n: 2, step: 1}, {n: 17, step: 3}, {n: 100, step: 100}} {
		assert.Equal(t, nativeLoop(cfg), rangeLoop(cfg), "%+v", cfg)
		assert.Equal(t, nativeStepLoop(cfg), rangeStepLoop(cfg), "%+v", cfg)
	}
	// 1^2^3 == 0
	assert.Equal(t, 0, rangeLoop(benchConfig{n: 4, step: 1}))
	// 1^4^7
	assert.Equal(t, 1^4^7, rangeStepLoop(benchConfig{n: 3, step: 3}))
}

func TestRunBenchInvalid(t *testing.T) {
	var sb strings.Builder
	//
	assert.Error(t, runBench(benchConfig{n: 0, step: 1}, &sb))
	assert.Error(t, runBench(benchConfig{n: 10, step: 0}, &sb))
	assert.Empty(t, sb.String())
}
