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
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// ErrDuplicate indicates a character appears more than once in the data.
var ErrDuplicate = errors.New("duplicate character")

// Role is the role of a reference within a character.
type Role string

const (
	// RoleComponent is a decomposition component.
	RoleComponent Role = "component"

	// RoleRadical is the radical.
	RoleRadical Role = "radical"
)

// Unresolved describes a reference to a character missing from the data.
type Unresolved struct {
	// Hanzi is the character holding the reference.
	Hanzi string

	// Ref is the missing character.
	Ref string

	Role Role
}

// Options are options for building a Graph.
type Options struct {
	// Logger receives a warning for every unresolved reference. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions is the default options for a Graph.
var DefaultOptions = &Options{}

// Graph is the set of known characters keyed by hanzi. A Graph is read-only
// once built.
type Graph struct {
	chars map[string]*Character

	// sorted holds all characters ordered by hanzi.
	sorted []*Character

	unresolved []Unresolved
}

// New reads composition data from r and returns the resolved Graph.
func New(r io.Reader, options *Options) (*Graph, error) {
	if options == nil {
		options = DefaultOptions
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Graph{
		chars: map[string]*Character{},
	}

	s := NewScanner(r)
	for s.Scan() {
		rec := s.Record()
		if _, ok := g.chars[rec.Hanzi]; ok {
			return nil, &ParseError{
				Line: s.Line(),
				Err:  fmt.Errorf("%w: %q", ErrDuplicate, rec.Hanzi),
			}
		}
		g.chars[rec.Hanzi] = newCharacter(rec)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading composition data: %w", err)
	}

	g.sorted = make([]*Character, 0, len(g.chars))
	for _, ch := range g.chars {
		g.sorted = append(g.sorted, ch)
	}
	slices.SortFunc(g.sorted, func(a, b *Character) int {
		return strings.Compare(a.Hanzi, b.Hanzi)
	})

	for _, ch := range g.sorted {
		g.resolve(ch, logger)
	}

	return g, nil
}

// newCharacter creates a Character with all references unresolved.
func newCharacter(rec *Record) *Character {
	ch := &Character{
		Hanzi:        rec.Hanzi,
		Strokes:      rec.Strokes,
		Cangjie:      rec.Cangjie,
		Verification: rec.Verification,
		Kind:         rec.Kind,
		Components:   []Ref{},
	}
	for _, part := range []Part{rec.First, rec.Second} {
		if rec.isRef(part.Hanzi) {
			ch.Components = append(ch.Components, UnresolvedRef(part.Hanzi))
		}
	}
	if rec.isRef(rec.Radical) {
		ref := UnresolvedRef(rec.Radical)
		ch.Radical = &ref
	}
	return ch
}

// resolve links ch's references to characters in g.
func (g *Graph) resolve(ch *Character, logger *slog.Logger) {
	for i, ref := range ch.Components {
		if c, ok := g.chars[ref.hanzi]; ok {
			ch.Components[i] = Resolved(c)
			continue
		}
		g.unresolvedRef(ch, ref.hanzi, RoleComponent, logger)
	}

	if ch.Radical == nil {
		return
	}
	if c, ok := g.chars[ch.Radical.hanzi]; ok {
		ref := Resolved(c)
		ch.Radical = &ref
		return
	}
	g.unresolvedRef(ch, ch.Radical.hanzi, RoleRadical, logger)
}

func (g *Graph) unresolvedRef(ch *Character, ref string, role Role, logger *slog.Logger) {
	logger.Warn("cannot find referenced character",
		slog.String("hanzi", ch.Hanzi),
		slog.String("ref", ref),
		slog.String("role", string(role)),
	)
	g.unresolved = append(g.unresolved, Unresolved{
		Hanzi: ch.Hanzi,
		Ref:   ref,
		Role:  role,
	})
}

// Lookup returns the character for the given hanzi.
func (g *Graph) Lookup(hanzi string) (*Character, bool) {
	if g == nil {
		return nil, false
	}
	ch, ok := g.chars[hanzi]
	return ch, ok
}

// Len returns the number of characters.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.sorted)
}

// All returns an iterator over all characters ordered by hanzi.
func (g *Graph) All() iter.Seq[*Character] {
	return func(yield func(*Character) bool) {
		if g == nil {
			return
		}
		for _, ch := range g.sorted {
			if !yield(ch) {
				return
			}
		}
	}
}

// Unresolved returns all references to characters missing from the data,
// ordered by the hanzi of the referring character.
func (g *Graph) Unresolved() []Unresolved {
	if g == nil {
		return nil
	}
	return slices.Clone(g.unresolved)
}
