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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-hanzi/char"
)

var (
	// ErrEmptySpelling indicates a word with no characters.
	ErrEmptySpelling = errors.New("empty spelling")

	// ErrUnknownCharacter indicates a word uses a character that is not
	// in the character data.
	ErrUnknownCharacter = errors.New("unknown character")

	// ErrSpellingMismatch indicates the characters of a word do not spell
	// the word.
	ErrSpellingMismatch = errors.New("spelling mismatch")
)

// Characters looks up characters by hanzi. *char.Graph implements
// Characters.
type Characters interface {
	Lookup(hanzi string) (*char.Character, bool)
}

// Word is a dictionary entry.
type Word struct {
	// Chars holds one character per glyph of the spelling, in order.
	Chars []*char.Character

	// Pinyin is the pronunciation with tone numbers.
	Pinyin string

	Translation string
}

// Spelling returns the hanzi of the word's characters joined in order.
func (w *Word) Spelling() string {
	var b strings.Builder
	for _, c := range w.Chars {
		b.WriteString(c.Hanzi)
	}
	return b.String()
}

// Contains reports whether any of the word's characters has the given hanzi.
func (w *Word) Contains(hanzi string) bool {
	for _, c := range w.Chars {
		if c.Hanzi == hanzi {
			return true
		}
	}
	return false
}

func (w *Word) String() string {
	return w.Spelling()
}

// FromRecord creates a Word from rec, looking up each glyph of the
// simplified spelling in chars.
func FromRecord(rec *Record, chars Characters) (*Word, error) {
	if rec.Simplified == "" {
		return nil, ErrEmptySpelling
	}

	w := &Word{
		Pinyin:      rec.Pinyin,
		Translation: rec.Translation,
	}
	for _, r := range rec.Simplified {
		c, ok := chars.Lookup(string(r))
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownCharacter, string(r), rec.Simplified)
		}
		w.Chars = append(w.Chars, c)
	}

	if s := w.Spelling(); s != rec.Simplified {
		return nil, fmt.Errorf("%w: %q != %q", ErrSpellingMismatch, s, rec.Simplified)
	}
	return w, nil
}

// Parse reads a word list from r. Parse only reads from chars and may be
// called concurrently for different word lists.
func Parse(r io.Reader, chars Characters) ([]*Word, error) {
	var words []*Word
	s := NewScanner(r)
	for s.Scan() {
		w, err := FromRecord(s.Record(), chars)
		if err != nil {
			return nil, &ParseError{Line: s.Line(), Err: err}
		}
		words = append(words, w)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}
