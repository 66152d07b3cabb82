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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", WithEnviron(environ()))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	filename := writeConfig(t, "bench:\n  n: 500\nseq:\n  columns: true\n  separator: \", \"\n")
	//
	cfg, err := LoadConfig(filename, WithEnviron(environ()))
	require.NoError(t, err)
	assert.Equal(t, uint(500), cfg.Bench.N)
	// Unset keys retain their defaults
	assert.Equal(t, uint(10), cfg.Bench.Step)
	assert.True(t, cfg.Seq.Columns)
	assert.Equal(t, ", ", cfg.Seq.Separator)
}

func TestLoadConfigEnv(t *testing.T) {
	filename := writeConfig(t, "bench:\n  n: 500\n  step: 3\n")
	//
	cfg, err := LoadConfig(filename, WithEnviron(environ(
		"STEPRANGE_BENCH_N=42",
		"STEPRANGE_SEQ_COLUMNS=true",
		"OTHER_BENCH_STEP=7",
	)))
	require.NoError(t, err)
	// Environment takes precedence over the file
	assert.Equal(t, uint(42), cfg.Bench.N)
	assert.Equal(t, uint(3), cfg.Bench.Step)
	assert.True(t, cfg.Seq.Columns)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), WithEnviron(environ()))
	assert.ErrorContains(t, err, "loading config")
	//
	_, err = LoadConfig(writeConfig(t, "bench: [1, 2"), WithEnviron(environ()))
	assert.ErrorContains(t, err, "loading config")
	//
	_, err = LoadConfig("", WithEnviron(environ("STEPRANGE_BENCH_N=many")))
	assert.ErrorContains(t, err, "unmarshalling config")
	//
	_, err = LoadConfig("", WithEnviron(environ("STEPRANGE_BENCH_N=0", "STEPRANGE_BENCH_STEP=0")))
	assert.ErrorContains(t, err, "bench.n must be positive")
	assert.ErrorContains(t, err, "bench.step must be positive")
}

// ===================================================================
// Test Helpers
// ===================================================================

func environ(vars ...string) func() []string {
	return func() []string { return vars }
}

func writeConfig(t *testing.T, contents string) string {
	filename := filepath.Join(t.TempDir(), "steprange.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o600))
	//
	return filename
}
