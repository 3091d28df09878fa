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
	"github.com/ianlewis/go-hanzi/comp"
)

// Character is a single hanzi glyph.
type Character struct {
	Hanzi        string
	Strokes      int
	Cangjie      string
	Verification string
	Kind         comp.Kind

	// Components holds zero, one or two component references in
	// decomposition order.
	Components []Ref

	// Radical is nil when the character has no radical other than itself.
	Radical *Ref
}

// References reports whether c is one of ch's components or its radical.
// Characters are compared by identity.
func (ch *Character) References(c *Character) bool {
	if c == nil {
		return false
	}
	for _, ref := range ch.Components {
		if ref.char == c {
			return true
		}
	}
	return ch.Radical != nil && ch.Radical.char == c
}

// String returns the character's hanzi.
func (ch *Character) String() string {
	return ch.Hanzi
}

// Ref is a reference to a character. A resolved Ref links to a Character in
// the same Graph. An unresolved Ref only holds the hanzi of a character that
// is missing from the data.
type Ref struct {
	hanzi string
	char  *Character
}

// Resolved returns a Ref linking to c.
func Resolved(c *Character) Ref {
	return Ref{hanzi: c.Hanzi, char: c}
}

// UnresolvedRef returns a placeholder Ref for hanzi.
func UnresolvedRef(hanzi string) Ref {
	return Ref{hanzi: hanzi}
}

// Hanzi returns the referenced hanzi.
func (r Ref) Hanzi() string {
	return r.hanzi
}

// Character returns the referenced Character or nil if r is unresolved.
func (r Ref) Character() *Character {
	return r.char
}

// IsResolved reports whether r links to a Character.
func (r Ref) IsResolved() bool {
	return r.char != nil
}

func (r Ref) String() string {
	return r.hanzi
}
