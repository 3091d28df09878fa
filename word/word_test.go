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

package word_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ianlewis/go-hanzi/char"
	"github.com/ianlewis/go-hanzi/internal/testutil"
	"github.com/ianlewis/go-hanzi/word"
)

func sampleGraph(t *testing.T) *char.Graph {
	t.Helper()

	data := testutil.MakeCompositionData(t, testutil.SampleCharacters())
	g, err := char.New(bytes.NewReader(data), &char.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return g
}

// summary is a comparable view of a Word.
type summary struct {
	Spelling    string
	Chars       []string
	Pinyin      string
	Translation string
}

func summarize(words []*word.Word) []summary {
	var out []summary
	for _, w := range words {
		s := summary{
			Spelling:    w.Spelling(),
			Pinyin:      w.Pinyin,
			Translation: w.Translation,
		}
		for _, c := range w.Chars {
			s.Chars = append(s.Chars, c.Hanzi)
		}
		out = append(out, s)
	}
	return out
}

func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected []*word.Record
		err      error
		line     int
	}{
		{
			name: "records",
			data: "你好\t你好\tni3hao3\tnǐhǎo\thello\n\n  谢谢\t謝謝\txie4xie5\txièxie\tthanks  \n",
			expected: []*word.Record{
				{Simplified: "你好", Traditional: "你好", Pinyin: "ni3hao3", PinyinUnicode: "nǐhǎo", Translation: "hello"},
				{Simplified: "谢谢", Traditional: "謝謝", Pinyin: "xie4xie5", PinyinUnicode: "xièxie", Translation: "thanks"},
			},
		},
		{
			name: "field count",
			data: "你好\t你好\tni3hao3\tnǐhǎo\n",
			err:  word.ErrFieldCount,
			line: 1,
		},
		{
			name: "too many fields",
			data: "\n\n你好\t你好\tni3hao3\tnǐhǎo\thello\tthere\n",
			err:  word.ErrFieldCount,
			line: 3,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := word.NewScanner(strings.NewReader(test.data))
			var records []*word.Record
			for s.Scan() {
				records = append(records, s.Record())
			}
			if diff := cmp.Diff(test.expected, records); diff != "" {
				t.Errorf("records (-want, +got):\n%s", diff)
			}

			err := s.Err()
			if test.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, test.err)
			var perr *word.ParseError
			require.ErrorAs(t, err, &perr)
			if diff := cmp.Diff(test.line, perr.Line); diff != "" {
				t.Errorf("line (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	g := sampleGraph(t)

	words, err := word.Parse(strings.NewReader("你好\t你好\tni3hao3\tnǐhǎo\thello\n"), g)
	require.NoError(t, err)
	require.Len(t, words, 1)

	w := words[0]
	ni, _ := g.Lookup("你")
	hao, _ := g.Lookup("好")
	require.Len(t, w.Chars, 2)
	if w.Chars[0] != ni || w.Chars[1] != hao {
		t.Errorf("Chars: got %v, want [你 好] from the graph", w.Chars)
	}
	if diff := cmp.Diff("你好", w.Spelling()); diff != "" {
		t.Errorf("Spelling (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("ni3hao3", w.Pinyin); diff != "" {
		t.Errorf("Pinyin (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("hello", w.Translation); diff != "" {
		t.Errorf("Translation (-want, +got):\n%s", diff)
	}
	if !w.Contains("好") || w.Contains("女") {
		t.Errorf("Contains is wrong for %v", w)
	}
}

func TestParse_errors(t *testing.T) {
	t.Parallel()

	g := sampleGraph(t)

	tests := []struct {
		name string
		data string
		err  error
		line int
	}{
		{
			name: "unknown character",
			data: "好\t好\thao3\thǎo\tgood\n他们\t他們\tta1men5\ttāmen\tthey\n",
			err:  word.ErrUnknownCharacter,
			line: 2,
		},
		{
			name: "field count",
			data: "好\thao3\thǎo\tgood\n",
			err:  word.ErrFieldCount,
			line: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			words, err := word.Parse(strings.NewReader(test.data), g)
			require.ErrorIs(t, err, test.err)
			require.Nil(t, words)

			var perr *word.ParseError
			require.ErrorAs(t, err, &perr)
			if diff := cmp.Diff(test.line, perr.Line); diff != "" {
				t.Errorf("line (-want, +got):\n%s", diff)
			}
		})
	}
}

// multiGlyph is a character lookup that knows a two code point glyph.
type multiGlyph map[string]*char.Character

func (m multiGlyph) Lookup(hanzi string) (*char.Character, bool) {
	c, ok := m[hanzi]
	return c, ok
}

func TestFromRecord(t *testing.T) {
	t.Parallel()

	t.Run("empty spelling", func(t *testing.T) {
		t.Parallel()

		_, err := word.FromRecord(&word.Record{}, multiGlyph{})
		require.ErrorIs(t, err, word.ErrEmptySpelling)
	})

	t.Run("spelling mismatch", func(t *testing.T) {
		t.Parallel()

		// The lookup maps each code point to a character spelled
		// differently, so the spelling cannot be reconstructed.
		chars := multiGlyph{
			"a": {Hanzi: "á"},
		}
		_, err := word.FromRecord(&word.Record{Simplified: "a"}, chars)
		require.ErrorIs(t, err, word.ErrSpellingMismatch)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	g := sampleGraph(t)

	var readers []io.Reader
	for _, list := range testutil.SampleWordLists() {
		readers = append(readers, bytes.NewReader(testutil.MakeWordList(t, list)))
	}
	idx, err := word.New(g, readers...)
	require.NoError(t, err)

	if diff := cmp.Diff(7, idx.Len()); diff != "" {
		t.Errorf("Len (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(9, idx.Count()); diff != "" {
		t.Errorf("Count (-want, +got):\n%s", diff)
	}

	t.Run("polyphone", func(t *testing.T) {
		t.Parallel()

		expected := []summary{
			{Spelling: "行", Chars: []string{"行"}, Pinyin: "xing2", Translation: "to walk"},
			{Spelling: "行", Chars: []string{"行"}, Pinyin: "hang2", Translation: "row"},
		}
		if diff := cmp.Diff(expected, summarize(idx.Lookup("行"))); diff != "" {
			t.Errorf("Lookup (-want, +got):\n%s", diff)
		}
	})

	t.Run("multi character", func(t *testing.T) {
		t.Parallel()

		expected := []summary{
			{Spelling: "你好", Chars: []string{"你", "好"}, Pinyin: "ni3hao3", Translation: "hello"},
		}
		if diff := cmp.Diff(expected, summarize(idx.Lookup("你好"))); diff != "" {
			t.Errorf("Lookup (-want, +got):\n%s", diff)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		if got := idx.Lookup("你们"); got != nil {
			t.Errorf("Lookup: got %v, want nil", got)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		var spellings []string
		for _, list := range testutil.SampleWordLists() {
			for _, rec := range list {
				spellings = append(spellings, rec.Simplified)
			}
		}
		for _, s := range spellings {
			for _, w := range idx.Lookup(s) {
				if diff := cmp.Diff(s, w.Spelling()); diff != "" {
					t.Errorf("Spelling (-want, +got):\n%s", diff)
				}
			}
		}
	})

	t.Run("all", func(t *testing.T) {
		t.Parallel()

		var got []string
		for w := range idx.All() {
			got = append(got, w.Spelling()+":"+w.Pinyin)
		}
		expected := []string{
			"一一:yi1yi1",
			"你好:ni3hao3",
			"女子:nu:3zi3",
			"好:hao3",
			"好:hao4",
			"字:zi4",
			"行:xing2",
			"行:hang2",
			"谢谢:xie4xie5",
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("All (-want, +got):\n%s", diff)
		}
	})
}

func TestNewIndex_duplicates(t *testing.T) {
	t.Parallel()

	g := sampleGraph(t)
	line := "行\t行\txing2\txíng\tto walk\n"
	a, err := word.Parse(strings.NewReader(line), g)
	require.NoError(t, err)
	b, err := word.Parse(strings.NewReader(line), g)
	require.NoError(t, err)

	idx := word.NewIndex(a, b)
	got := idx.Lookup("行")
	require.Len(t, got, 2)
	if got[0] == got[1] {
		t.Errorf("duplicate lines share a Word")
	}
}

func TestIndex_nil(t *testing.T) {
	t.Parallel()

	var idx *word.Index
	if got := idx.Lookup("好"); got != nil {
		t.Errorf("Lookup: got %v, want nil", got)
	}
	if idx.Len() != 0 || idx.Count() != 0 {
		t.Errorf("nil index is not empty")
	}
}
