// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package word

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	delimiter = "\t"
	numFields = 5

	maxLineSize = 1024 * 1024
)

// ErrFieldCount indicates a line does not have exactly five fields.
var ErrFieldCount = errors.New("wrong number of fields")

// ParseError is a fatal error found while reading a word list.
type ParseError struct {
	// Line is the 1-based line number.
	Line int

	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Record is a single line of a word list.
type Record struct {
	Simplified    string
	Traditional   string
	Pinyin        string
	PinyinUnicode string
	Translation   string
}

// Scanner scans a word list from start to end.
type Scanner struct {
	s    *bufio.Scanner
	line int
	rec  *Record
	err  error
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineSize)
	return &Scanner{s: s}
}

// Scan advances to the next record, skipping blank lines. It returns false
// when the scan stops either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.line++
		text := strings.TrimSpace(s.s.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, delimiter)
		if len(fields) != numFields {
			s.err = &ParseError{
				Line: s.line,
				Err:  fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), numFields),
			}
			s.rec = nil
			return false
		}
		s.rec = &Record{
			Simplified:    fields[0],
			Traditional:   fields[1],
			Pinyin:        fields[2],
			PinyinUnicode: fields[3],
			Translation:   fields[4],
		}
		return true
	}
	s.rec = nil
	return false
}

// Record returns the most recent record read by Scan.
func (s *Scanner) Record() *Record {
	return s.rec
}

// Line returns the line number of the most recent record.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}
