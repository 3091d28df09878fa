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

// Package folding cleans up search terms typed by users.
package folding

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceTrimmer removes whitespace, including the ideographic space
// U+3000, from the beginning and end of the input. Internal whitespace is
// kept as is.
type WhitespaceTrimmer struct {
	// started is true after encountering the first non-whitespace rune.
	started bool

	// pending holds internal whitespace that is only emitted if a
	// non-whitespace rune follows.
	pending []byte
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceTrimmer) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			if w.started {
				w.pending = append(w.pending, src[nSrc:nSrc+size]...)
			}
			nSrc += size
			continue
		}

		if nDst+len(w.pending)+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], w.pending)
		w.pending = w.pending[:0]
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
		w.started = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceTrimmer) Reset() {
	*w = WhitespaceTrimmer{}
}

// Term returns s with surrounding whitespace removed. s is otherwise left
// as is and is not Unicode normalized: CJK compatibility ideographs stay
// distinct from their canonical equivalents.
func Term(s string) (string, error) {
	out, _, err := transform.String(&WhitespaceTrimmer{}, s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return out, nil
}
