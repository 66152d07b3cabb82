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
	"bufio"
	"io"
	"unicode/utf8"

	"golang.org/x/term"
)

// DEFAULT_WIDTH is the line width used when output is not a terminal.
//
//nolint:revive
const DEFAULT_WIDTH = 80

// TerminalWidth returns the width of the terminal attached to a given file
// descriptor, or DEFAULT_WIDTH if there is none.
func TerminalWidth(fd int) int {
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	//
	return DEFAULT_WIDTH
}

// valueWriter streams values to an output, either separated by a fixed string
// or packed into lines of a maximum width.  Values are written as they arrive,
// hence this works for unbounded ranges.
type valueWriter struct {
	out *bufio.Writer
	// Separator used when width is zero
	separator string
	// Maximum line width, or zero when not filling lines
	width int
	// Width of the current line
	column int
	// Number of values written so far
	count uint
}

func newValueWriter(out io.Writer, separator string, width int) *valueWriter {
	return &valueWriter{bufio.NewWriter(out), separator, width, 0, 0}
}

// Write a single value.
func (p *valueWriter) Write(value string) error {
	var err error
	//
	if p.width > 0 {
		err = p.fill(value)
	} else {
		if p.count > 0 {
			_, err = p.out.WriteString(p.separator)
		}
		//
		if err == nil {
			_, err = p.out.WriteString(value)
		}
	}
	//
	p.count++
	//
	return err
}

// Pack a value onto the current line, or begin a new line if it doesn't fit.
// A value wider than the line is placed on a line by itself.
func (p *valueWriter) fill(value string) error {
	n := utf8.RuneCountInString(value)
	//
	if p.column > 0 && p.column+1+n > p.width {
		if err := p.out.WriteByte('\n'); err != nil {
			return err
		}
		//
		p.column = 0
	} else if p.column > 0 {
		if err := p.out.WriteByte(' '); err != nil {
			return err
		}
		//
		p.column++
	}
	//
	_, err := p.out.WriteString(value)
	p.column += n
	//
	return err
}

// Close terminates the output with a newline (if anything was written), and
// flushes it.
func (p *valueWriter) Close() error {
	if p.count > 0 {
		if err := p.out.WriteByte('\n'); err != nil {
			return err
		}
	}
	//
	return p.out.Flush()
}
