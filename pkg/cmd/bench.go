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
	"io"
	"os"

	"github.com/consensys/go-steprange/pkg/ranges"
	"github.com/consensys/go-steprange/pkg/util"
	"github.com/consensys/go-steprange/pkg/util/collection/iter"
	"github.com/consensys/go-steprange/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// benchConfig encapsulates configuration of the bench command.
type benchConfig struct {
	// Upper (exclusive) bound of the unit stepped loops
	n uint
	// Step of the stepped loops, which run up to n*step
	step uint
	// Highlight the report using ANSI escapes
	ansi bool
}

// benchCase is a single loop to be timed.  Each loop returns the xor of all
// values visited, which must agree between native and range loops.
type benchCase struct {
	name string
	run  func(cfg benchConfig) int
}

var benchCases = []benchCase{
	{"native loop 1 until n", nativeLoop},
	{"range from 1 until n", rangeLoop},
	{"native loop 1 until n*step by step", nativeStepLoop},
	{"range from 1 until n*step by step", rangeStepLoop},
}

var benchCmd = &cobra.Command{
	Use:   "bench [flags]",
	Short: "compare native loops against ranges.",
	Long: `Time equivalent native loops and range traversals, reporting the
	time taken and memory allocated by each.  The values visited by each
	pair of loops are checked to agree.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		settings := setup(cmd)
		cfg := benchConfig{settings.Bench.N, settings.Bench.Step, term.IsTerminal(int(os.Stdout.Fd()))}
		// Flags override settings
		if Changed(cmd, "n") {
			cfg.n = GetUint(cmd, "n")
		}
		//
		if Changed(cmd, "step") {
			cfg.step = GetUint(cmd, "step")
		}
		//
		if err := runBench(cfg, cmd.OutOrStdout()); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// Run all benchmark cases, writing a table which summarises them.
func runBench(cfg benchConfig, out io.Writer) error {
	if cfg.n == 0 || cfg.step == 0 {
		return fmt.Errorf("invalid benchmark (n=%d, step=%d)", cfg.n, cfg.step)
	}
	//
	var (
		checksums = make([]int, len(benchCases))
		table     = termio.NewTablePrinter(5, uint(len(benchCases)+1))
	)
	//
	table.AnsiEscapes(cfg.ansi)
	table.AlignLeft(0)
	table.SetRow(0, "case", "time", "bytes", "allocs", "check")
	table.SetRowEscape(0, termio.BoldAnsiEscape())
	//
	for i, c := range benchCases {
		stats := util.NewPerfStats()
		checksums[i] = c.run(cfg)
		report := stats.Log(c.name)
		//
		table.SetRow(uint(i+1), c.name, report.Elapsed.String(), fmt.Sprint(report.Bytes), fmt.Sprint(report.Mallocs), "")
	}
	// Cases come in (native, range) pairs
	var err error
	//
	for i := 0; i < len(benchCases); i += 2 {
		row := uint(i + 2)
		//
		if checksums[i] == checksums[i+1] {
			table.Set(4, row, "ok")
			table.SetEscape(4, row, termio.NewAnsiEscape().FgColour(termio.TERM_GREEN))
		} else {
			table.Set(4, row, "FAIL")
			table.SetEscape(4, row, termio.NewAnsiEscape().FgColour(termio.TERM_RED))
			err = errors.Join(err, fmt.Errorf("%q and %q disagree (%d vs %d)", benchCases[i].name,
				benchCases[i+1].name, checksums[i], checksums[i+1]))
		}
	}
	//
	log.Debugf("checksums %v", checksums)
	//
	if perr := table.Print(out); perr != nil {
		return perr
	}
	//
	return err
}

func nativeLoop(cfg benchConfig) int {
	ret := 0
	//
	for i := 1; i < int(cfg.n); i++ {
		ret ^= i
	}
	//
	return ret
}

func rangeLoop(cfg benchConfig) int {
	ret := 0
	//
	for i := range ranges.From(1).Until(int(cfg.n)).All() {
		ret ^= i
	}
	//
	return ret
}

func nativeStepLoop(cfg benchConfig) int {
	ret := 0
	//
	for i := 1; i < int(cfg.n*cfg.step); i += int(cfg.step) {
		ret ^= i
	}
	//
	return ret
}

// Unlike rangeLoop, this pulls values through the enumerator interface.
func rangeStepLoop(cfg benchConfig) int {
	ret := 0
	r := ranges.From(1).Until(int(cfg.n * cfg.step)).Step(int(cfg.step))
	//
	iter.ForEach[int](&r, func(i int) { ret ^= i })
	//
	return ret
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Uint("n", 1_000_000, "upper bound of the unit stepped loops")
	benchCmd.Flags().Uint("step", 10, "step of the stepped loops")
}
