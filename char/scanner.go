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

package char

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ianlewis/go-hanzi/comp"
)

// Placeholder marks an empty part or radical field.
const Placeholder = "*"

const (
	delimiter = "\t"
	numFields = 10

	maxLineSize = 1024 * 1024
)

var (
	// ErrFieldCount indicates a line does not have exactly ten fields.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrInvalidStrokes indicates a character stroke count is not a
	// non-negative integer.
	ErrInvalidStrokes = errors.New("invalid stroke count")
)

// ParseError is a fatal error found while reading composition data.
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

// Part is a part of a character's decomposition.
type Part struct {
	Hanzi   string
	Strokes int
}

// Record is a single line of composition data. Parts and radical are raw
// field values.
type Record struct {
	Hanzi        string
	Strokes      int
	Kind         comp.Kind
	First        Part
	Second       Part
	Cangjie      string
	Verification string
	Radical      string
}

// isRef reports whether the field value h names another character.
func (r *Record) isRef(h string) bool {
	return h != r.Hanzi && h != Placeholder
}

// Scanner scans composition data from start to end.
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
		rec, err := parseRecord(text)
		if err != nil {
			s.err = &ParseError{Line: s.line, Err: err}
			s.rec = nil
			return false
		}
		s.rec = rec
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

func parseRecord(line string) (*Record, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != numFields {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), numFields)
	}

	rec := &Record{
		Hanzi:        fields[0],
		First:        Part{Hanzi: fields[3]},
		Second:       Part{Hanzi: fields[5]},
		Cangjie:      fields[7],
		Verification: fields[8],
		Radical:      fields[9],
	}

	var err error
	rec.Strokes, err = parseStrokes(fields[1])
	if err != nil {
		return nil, err
	}

	rec.Kind, err = comp.ByCode(fields[2])
	if err != nil {
		//nolint:wrapcheck // sentinel from comp is kept as is
		return nil, err
	}

	// Part stroke counts are metadata. Counts of dropped parts and counts
	// that are not valid numbers are recorded as 0.
	if rec.isRef(rec.First.Hanzi) {
		rec.First.Strokes = partStrokes(fields[4])
	}
	if rec.isRef(rec.Second.Hanzi) {
		rec.Second.Strokes = partStrokes(fields[6])
	}

	return rec, nil
}

func parseStrokes(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStrokes, s)
	}
	return n, nil
}

func partStrokes(s string) int {
	n, err := parseStrokes(s)
	if err != nil {
		return 0
	}
	return n
}
