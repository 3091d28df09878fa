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

package hanzi

import (
	"fmt"
	"io"

	"github.com/ianlewis/go-hanzi/char"
	"github.com/ianlewis/go-hanzi/internal/index"
	"github.com/ianlewis/go-hanzi/word"
)

// Catalog holds the character graph and word index. A Catalog is read-only
// and safe for concurrent use. A nil *Catalog finds nothing.
type Catalog struct {
	chars *char.Graph
	words *word.Index

	// compounds maps a character's hanzi to the characters using it as a
	// component or radical.
	compounds *index.Index[*char.Character]

	// containing maps a character's hanzi to the words containing it.
	containing *index.Index[*word.Word]
}

// Result is the result of a query.
type Result struct {
	// Term is the queried term.
	Term string

	// Character is the character named by the term or nil.
	Character *char.Character

	// Compounds are the characters using Character as a component or
	// radical.
	Compounds []*char.Character

	// ContainingWords are the words containing Character.
	ContainingWords []*word.Word

	// Words are the words spelled as the term.
	Words []*word.Word
}

// Found reports whether the query found a character or any word.
func (r *Result) Found() bool {
	return r.Character != nil || len(r.Words) > 0
}

// Stats are statistics about a Catalog.
type Stats struct {
	Characters int
	Unresolved int
	Spellings  int
	Words      int
}

// New reads the composition data from chars and then the word lists from
// words and returns the Catalog.
func New(chars io.Reader, words []io.Reader, options *Options) (*Catalog, error) {
	if options == nil {
		options = DefaultOptions
	}

	g, err := char.New(chars, &char.Options{Logger: options.logger()})
	if err != nil {
		return nil, err
	}

	idx, err := word.New(g, words...)
	if err != nil {
		return nil, err
	}

	return newCatalog(g, idx), nil
}

// newCatalog builds the reverse indexes for g and idx.
func newCatalog(g *char.Graph, idx *word.Index) *Catalog {
	var compounds []index.Entry[*char.Character]
	for ch := range g.All() {
		seen := map[*char.Character]bool{}
		refs := ch.Components
		if ch.Radical != nil {
			refs = append(refs[:len(refs):len(refs)], *ch.Radical)
		}
		for _, ref := range refs {
			c := ref.Character()
			if c == nil || seen[c] {
				continue
			}
			seen[c] = true
			compounds = append(compounds, index.Entry[*char.Character]{
				Key:   c.Hanzi,
				Value: ch,
			})
		}
	}

	var containing []index.Entry[*word.Word]
	for w := range idx.All() {
		seen := map[string]bool{}
		for _, c := range w.Chars {
			if seen[c.Hanzi] {
				continue
			}
			seen[c.Hanzi] = true
			containing = append(containing, index.Entry[*word.Word]{
				Key:   c.Hanzi,
				Value: w,
			})
		}
	}

	return &Catalog{
		chars:      g,
		words:      idx,
		compounds:  index.NewIndex(compounds),
		containing: index.NewIndex(containing),
	}
}

// Characters returns the character graph.
func (c *Catalog) Characters() *char.Graph {
	if c == nil {
		return nil
	}
	return c.chars
}

// Index returns the word index.
func (c *Catalog) Index() *word.Index {
	if c == nil {
		return nil
	}
	return c.words
}

// Character returns the character whose hanzi is term.
func (c *Catalog) Character(term string) (*char.Character, bool) {
	if c == nil {
		return nil, false
	}
	return c.chars.Lookup(term)
}

// Compounds returns the characters that have ch as a component or radical,
// ordered by hanzi. Only direct references count.
func (c *Catalog) Compounds(ch *char.Character) []*char.Character {
	if !c.owns(ch) {
		return nil
	}
	return c.compounds.Search(ch.Hanzi)
}

// ContainingWords returns the words containing ch, ordered by spelling.
func (c *Catalog) ContainingWords(ch *char.Character) []*word.Word {
	if !c.owns(ch) {
		return nil
	}
	return c.containing.Search(ch.Hanzi)
}

// Words returns the words spelled as term.
func (c *Catalog) Words(term string) []*word.Word {
	if c == nil {
		return nil
	}
	return c.words.Lookup(term)
}

// Query looks up term both as a character and as a word spelling. The two
// lookups are independent. Terms are matched exactly.
func (c *Catalog) Query(term string) *Result {
	r := &Result{
		Term:  term,
		Words: c.Words(term),
	}
	if ch, ok := c.Character(term); ok {
		r.Character = ch
		r.Compounds = c.Compounds(ch)
		r.ContainingWords = c.ContainingWords(ch)
	}
	return r
}

// Stats returns statistics about the catalog.
func (c *Catalog) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{
		Characters: c.chars.Len(),
		Unresolved: len(c.chars.Unresolved()),
		Spellings:  c.words.Len(),
		Words:      c.words.Count(),
	}
}

// owns reports whether ch is a character of c's graph.
func (c *Catalog) owns(ch *char.Character) bool {
	if c == nil || ch == nil {
		return false
	}
	got, ok := c.chars.Lookup(ch.Hanzi)
	return ok && got == ch
}

func (s Stats) String() string {
	return fmt.Sprintf("%d characters (%d unresolved references), %d words (%d spellings)",
		s.Characters, s.Unresolved, s.Words, s.Spellings)
}
