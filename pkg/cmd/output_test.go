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

func TestValueWriterSeparator(t *testing.T) {
	assert.Equal(t, "1,2,3\n", writeValues(t, ",", 0, "1", "2", "3"))
	assert.Equal(t, "1\n", writeValues(t, ",", 0, "1"))
	assert.Equal(t, "", writeValues(t, ",", 0))
}

func TestValueWriterFill(t *testing.T) {
	assert.Equal(t, "10 20\n30 40\n50\n", writeValues(t, "", 5, "10", "20", "30", "40", "50"))
	// Values wider than a line get a line of their own
	assert.Equal(t, "1\n123456\n2\n", writeValues(t, "", 5, "1", "123456", "2"))
	// Width counts characters, not bytes
	assert.Equal(t, "é ü\n", writeValues(t, "", 3, "é", "ü"))
}

func TestTerminalWidth(t *testing.T) {
	// An invalid descriptor is never a terminal
	assert.Equal(t, DEFAULT_WIDTH, TerminalWidth(-1))
}

// ===================================================================
// Test Helpers
// ===================================================================

func writeValues(t *testing.T, separator string, width int, values ...string) string {
	var sb strings.Builder
	//
	w := newValueWriter(&sb, separator, width)
	//
	for _, v := range values {
		require.NoError(t, w.Write(v))
	}
	//
	require.NoError(t, w.Close())
	//
	return sb.String()
}
