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

// Package pinyin formats pinyin written with tone numbers (e.g. "ni3hao3")
// using tone marks (e.g. "nǐhǎo").
package pinyin

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Combining marks for tones 1 to 4.
var toneMarks = [...]rune{
	1: '\u0304', // macron
	2: '\u0301', // acute
	3: '\u030c', // caron
	4: '\u0300', // grave
}

// Format converts every syllable followed by a tone number to use a tone
// mark. Tones 5 and 0 are neutral and have no mark. "v" and "u:" are written
// as "ü". Other text is kept as is.
func Format(s string) string {
	var b strings.Builder
	var syllable []rune

	flush := func() {
		b.WriteString(string(syllable))
		syllable = syllable[:0]
	}

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case isLetter(r):
			syllable = append(syllable, r)
		case r == ':' && len(syllable) > 0 && i+1 < len(rs) && isToneOrLetter(rs[i+1]):
			// "u:" is the ASCII spelling of "ü".
			syllable = append(syllable, r)
		case r >= '0' && r <= '5' && hasVowel(syllable):
			b.WriteString(mark(syllable, int(r-'0')))
			syllable = syllable[:0]
		default:
			flush()
			b.WriteRune(r)
		}
	}
	flush()

	return norm.NFC.String(b.String())
}

func isLetter(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r) || r == 'ü' || r == 'Ü'
}

func isToneOrLetter(r rune) bool {
	return isLetter(r) || r >= '0' && r <= '5'
}

func hasVowel(syllable []rune) bool {
	for _, r := range umlaut(syllable) {
		if isVowel(r) {
			return true
		}
	}
	return false
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouüAEIOUÜ", r)
}

// umlaut replaces "v" and "u:" with "ü".
func umlaut(syllable []rune) []rune {
	out := make([]rune, 0, len(syllable))
	for i := 0; i < len(syllable); i++ {
		r := syllable[i]
		switch {
		case r == 'v':
			out = append(out, 'ü')
		case r == 'V':
			out = append(out, 'Ü')
		case (r == 'u' || r == 'U') && i+1 < len(syllable) && syllable[i+1] == ':':
			if r == 'u' {
				out = append(out, 'ü')
			} else {
				out = append(out, 'Ü')
			}
			i++
		case r == ':':
			// Stray colon.
		default:
			out = append(out, r)
		}
	}
	return out
}

// mark returns the syllable with the tone mark for tone placed on the
// right vowel.
func mark(syllable []rune, tone int) string {
	rs := umlaut(syllable)
	if tone < 1 || tone > 4 {
		return string(rs)
	}

	pos := markPos(rs)
	out := make([]rune, 0, len(rs)+1)
	out = append(out, rs[:pos+1]...)
	out = append(out, toneMarks[tone])
	out = append(out, rs[pos+1:]...)
	return string(out)
}

// markPos returns the index of the vowel taking the tone mark: "a" or "e"
// if present, the "o" of "ou", otherwise the last vowel.
func markPos(rs []rune) int {
	last := -1
	for i, r := range rs {
		switch unicode.ToLower(r) {
		case 'a', 'e':
			return i
		case 'o':
			if i+1 < len(rs) && unicode.ToLower(rs[i+1]) == 'u' {
				return i
			}
		}
		if isVowel(r) {
			last = i
		}
	}
	return last
}
