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
	"io"
	"iter"
	"slices"
)

// Index maps spellings to the words spelled that way. A spelling may have
// several words (e.g. for different readings). Every parsed Word is a
// distinct member even if its fields equal another's. An Index is read-only
// once built.
type Index struct {
	words map[string][]*Word

	// spellings holds all keys in sorted order.
	spellings []string

	count int
}

// NewIndex returns an Index of the given word lists. Words with the same
// spelling keep the order in which they are given.
func NewIndex(lists ...[]*Word) *Index {
	idx := &Index{
		words: map[string][]*Word{},
	}
	for _, list := range lists {
		for _, w := range list {
			s := w.Spelling()
			if _, ok := idx.words[s]; !ok {
				idx.spellings = append(idx.spellings, s)
			}
			idx.words[s] = append(idx.words[s], w)
			idx.count++
		}
	}
	slices.Sort(idx.spellings)
	return idx
}

// New reads word lists from the given readers and returns their Index.
func New(chars Characters, readers ...io.Reader) (*Index, error) {
	lists := make([][]*Word, 0, len(readers))
	for _, r := range readers {
		words, err := Parse(r, chars)
		if err != nil {
			return nil, err
		}
		lists = append(lists, words)
	}
	return NewIndex(lists...), nil
}

// Lookup returns the words with the given spelling. It returns nil if there
// are none.
func (idx *Index) Lookup(spelling string) []*Word {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.words[spelling])
}

// Len returns the number of distinct spellings.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.spellings)
}

// Count returns the total number of words.
func (idx *Index) Count() int {
	if idx == nil {
		return 0
	}
	return idx.count
}

// All returns an iterator over all words ordered by spelling.
func (idx *Index) All() iter.Seq[*Word] {
	return func(yield func(*Word) bool) {
		if idx == nil {
			return
		}
		for _, s := range idx.spellings {
			for _, w := range idx.words[s] {
				if !yield(w) {
					return
				}
			}
		}
	}
}
