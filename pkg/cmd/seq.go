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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-steprange/pkg/ranges"
	"github.com/consensys/go-steprange/pkg/ranges/field"
	"github.com/consensys/go-steprange/pkg/util/collection/iter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// seqConfig encapsulates configuration of the seq command.
type seqConfig struct {
	// Value type of the range
	kind string
	// Bounds and step of the range
	args rangeArgs
	// Maximum number of values to print (0 for all)
	take uint
	// Print the number of values rather than the values themselves
	count bool
	// Text printed between values (when not filling lines)
	separator string
	// Line width to fill up to (0 for no filling)
	width int
}

var seqCmd = &cobra.Command{
	Use:   "seq [flags]",
	Short: "print the values of a range.",
	Long: `Print the values of a range over a given type.  Without a bound, values
	are printed until the next value cannot be represented by the type, and
	hence a range over floats may never end without --take.  Characters may
	be given literally, or as code points (e.g. U+0061).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		settings := setup(cmd)
		cfg := seqConfig{
			kind: GetString(cmd, "type"),
			args: rangeArgs{
				from:  GetString(cmd, "from"),
				to:    GetString(cmd, "to"),
				until: GetString(cmd, "until"),
				step:  GetString(cmd, "step"),
			},
			take:      GetUint(cmd, "take"),
			count:     GetFlag(cmd, "count"),
			separator: settings.Seq.Separator,
		}
		// Flags override settings
		if Changed(cmd, "separator") {
			cfg.separator = GetString(cmd, "separator")
		}
		//
		columns := settings.Seq.Columns
		if Changed(cmd, "columns") {
			columns = GetFlag(cmd, "columns")
		}
		//
		if columns {
			cfg.width = TerminalWidth(int(os.Stdout.Fd()))
		}
		//
		if err := runSeq(cfg, cmd.OutOrStdout()); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// Print the range described by a given configuration.
func runSeq(cfg seqConfig, out io.Writer) error {
	var (
		w   = newValueWriter(out, cfg.separator, cfg.width)
		err error
	)
	//
	switch cfg.kind {
	case "i8":
		err = seqNumbers(cfg, w, parseSigned[int8](8))
	case "i16":
		err = seqNumbers(cfg, w, parseSigned[int16](16))
	case "i32":
		err = seqNumbers(cfg, w, parseSigned[int32](32))
	case "i64":
		err = seqNumbers(cfg, w, parseSigned[int64](64))
	case "int":
		err = seqNumbers(cfg, w, parseSigned[int](0))
	case "u8":
		err = seqNumbers(cfg, w, parseUnsigned[uint8](8))
	case "u16":
		err = seqNumbers(cfg, w, parseUnsigned[uint16](16))
	case "u32":
		err = seqNumbers(cfg, w, parseUnsigned[uint32](32))
	case "u64":
		err = seqNumbers(cfg, w, parseUnsigned[uint64](64))
	case "uint":
		err = seqNumbers(cfg, w, parseUnsigned[uint](0))
	case "f32":
		err = seqNumbers(cfg, w, parseFloat[float32](32))
	case "f64":
		err = seqNumbers(cfg, w, parseFloat[float64](64))
	case "char":
		err = seqChars(cfg, w)
	case "bls12-377":
		err = seqField(cfg, w)
	default:
		return fmt.Errorf("%w %q (expected one of %s)", ErrUnknownType, cfg.kind, strings.Join(TYPES, ", "))
	}
	//
	if err != nil {
		return err
	}
	//
	return w.Close()
}

func seqNumbers[T ranges.Number](cfg seqConfig, w *valueWriter, parse Parser[T]) error {
	r, err := configure(ranges.Of[T](), cfg.args, parse)
	if err != nil {
		return err
	}
	//
	log.Debugf("printing %s range %s", cfg.kind, r)
	//
	return emit(&r, cfg, func(v T) string { return fmt.Sprint(v) }, w)
}

func seqChars(cfg seqConfig, w *valueWriter) error {
	r, err := configureChars(cfg.args)
	if err != nil {
		return err
	}
	//
	log.Debugf("printing char range %s", r)
	//
	return emit(&r, cfg, func(c rune) string { return string(c) }, w)
}

func seqField(cfg seqConfig, w *valueWriter) error {
	r, err := configure(field.Range(), cfg.args, parseElement)
	if err != nil {
		return err
	}
	//
	log.Debugf("printing %s range from %s up to %s", cfg.kind, formatElement(r.Cursor()),
		formatElement(r.Limit().UnwrapOr(r.Cursor())))
	//
	return emit(&r, cfg, formatElement, w)
}

// Write (at most take) values of a range, where zero means no limit, or just
// their number when counting.  The range is never advanced beyond the last value
// taken.
func emit[T any](values iter.Enumerator[T], cfg seqConfig, format func(T) string, w *valueWriter) error {
	if cfg.take > 0 {
		values = iter.Take(values, cfg.take)
	}
	//
	if cfg.count {
		return w.Write(fmt.Sprint(iter.Count(values)))
	}
	//
	for v := range iter.Seq(values) {
		if err := w.Write(format(v)); err != nil {
			return err
		}
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(seqCmd)
	seqCmd.Flags().String("type", "int", fmt.Sprintf("value type (one of %s)", strings.Join(TYPES, ", ")))
	seqCmd.Flags().String("from", "", "first value (default zero)")
	seqCmd.Flags().String("to", "", "last value (inclusive)")
	seqCmd.Flags().String("until", "", "last value (exclusive)")
	seqCmd.Flags().String("step", "", "amount to advance by (default one)")
	seqCmd.Flags().Uint("take", 0, "maximum number of values to print (0 for no limit)")
	seqCmd.Flags().Bool("count", false, "print the number of values instead (never ends for an endless range)")
	seqCmd.Flags().Bool("columns", false, "pack values into lines filling the terminal width")
	seqCmd.Flags().String("separator", "\n", "text printed between values")
}
