// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"strconv"
	"strings"
)

// ParseError reports a syntax violation. Line and Column are 1-based;
// SourceLine echoes the offending line and Caret is a string of spaces and a
// single '^' pointing at Column, so that callers can print a one-line
// "here" diagnostic without re-deriving it from Offset.
type ParseError struct {
	Line       int
	Column     int
	Message    string
	SourceLine string
	Caret      string
}

func (e *ParseError) Error() string {
	return "parse error at line " + strconv.Itoa(e.Line) + ", column " + strconv.Itoa(e.Column) + ": " + e.Message
}

func newParseError(src string, pos Pos, msg string) *ParseError {
	lines := strings.Split(src, "\n")
	var line string
	if pos.Line >= 1 && pos.Line <= len(lines) {
		line = lines[pos.Line-1]
	}
	col := pos.Column
	if col < 1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + "^"
	return &ParseError{
		Line:       pos.Line,
		Column:     col,
		Message:    msg,
		SourceLine: line,
		Caret:      caret,
	}
}
