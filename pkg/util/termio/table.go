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
package termio

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing tables to the terminal.  Columns are
// right aligned unless marked otherwise.
type TablePrinter struct {
	widths        []uint
	left          []bool
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	left := make([]bool, width)
	rows := make([][]string, height)
	escapes := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}

	return &TablePrinter{widths, left, rows, escapes, true}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(utf8.RuneCountInString(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i, val := range vals {
		p.Set(uint(i), row, val)
	}
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// SetRowEscape set the colour to use when printing an entire row.
func (p *TablePrinter) SetRowEscape(row uint, escape AnsiEscape) {
	for col := range p.widths {
		p.SetEscape(uint(col), row, escape)
	}
}

// AlignLeft marks a given column as left aligned.
func (p *TablePrinter) AlignLeft(col uint) {
	p.left[col] = true
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// Print the table to a given output.
func (p *TablePrinter) Print(out io.Writer) error {
	var sb strings.Builder
	//
	for i, row := range p.rows {
		for j, col := range row {
			escape := p.escapes[i][j]
			padding := strings.Repeat(" ", int(p.widths[j])-utf8.RuneCountInString(col))
			//
			if j > 0 {
				sb.WriteString("  ")
			}
			// Print colour (if applicable)
			if p.enableEscapes && escape != "" {
				sb.WriteString(escape)
			}
			//
			if p.left[j] {
				sb.WriteString(col)
				sb.WriteString(padding)
			} else {
				sb.WriteString(padding)
				sb.WriteString(col)
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && escape != "" {
				sb.WriteString(ResetAnsiEscape().Build())
			}
		}
		//
		sb.WriteString("\n")
	}
	//
	_, err := fmt.Fprint(out, sb.String())
	//
	return err
}
