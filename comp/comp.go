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

// Package comp implements the registry of composition kinds. A composition
// kind describes how the components of a character are arranged and is
// identified in the composition data by a single character code.
package comp

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates that a composition code is not registered.
var ErrUnknownKind = errors.New("unknown composition kind")

// Kind is a composition kind. The zero value is not a valid Kind.
type Kind byte

const (
	// Primitive characters are not decomposed any further.
	Primitive Kind = iota + 1

	// Horizontal characters are split into a left and right part.
	Horizontal

	// Vertical characters are split into a top and bottom part.
	Vertical

	// Inclusion characters have one part enclosing the other.
	Inclusion

	// VerticalTopRepetition characters repeat a part twice on top of another.
	VerticalTopRepetition

	// HorizontalLeftRightRepetition characters repeat a part on both sides of
	// another.
	HorizontalLeftRightRepetition

	// ThreeRepetition characters repeat a part three times.
	ThreeRepetition

	// FourRepetition characters repeat a part four times.
	FourRepetition

	// VerticalSeparated characters have a part split by another part.
	VerticalSeparated

	// Superposition characters have parts drawn over each other.
	Superposition

	// Unknown is used when the arrangement has not been classified.
	Unknown
)

type kindInfo struct {
	name string
	code string
}

var kinds = [...]kindInfo{
	Primitive:                     {"Primitive", "一"},
	Horizontal:                    {"Horizontal", "吅"},
	Vertical:                      {"Vertical", "吕"},
	Inclusion:                     {"Inclusion", "回"},
	VerticalTopRepetition:         {"VerticalTopRepetition", "咒"},
	HorizontalLeftRightRepetition: {"HorizontalLeftRightRepetition", "弼"},
	ThreeRepetition:               {"ThreeRepetition", "品"},
	FourRepetition:                {"FourRepetition", "叕"},
	VerticalSeparated:             {"VerticalSeparated", "冖"},
	Superposition:                 {"Superposition", "+"},
	Unknown:                       {"Unknown", "*"},
}

var byCode = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for k, info := range kinds {
		if info.code != "" {
			m[info.code] = Kind(k)
		}
	}
	return m
}()

// ByCode returns the Kind registered for the given code.
func ByCode(code string) (Kind, error) {
	k, ok := byCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, code)
	}
	return k, nil
}

// Kinds returns all registered kinds in declaration order.
func Kinds() []Kind {
	all := make([]Kind, 0, len(kinds)-1)
	for k := Primitive; k <= Unknown; k++ {
		all = append(all, k)
	}
	return all
}

// Valid reports whether k is a registered kind.
func (k Kind) Valid() bool {
	return k >= Primitive && k <= Unknown
}

// Code returns the code identifying k in the composition data.
func (k Kind) Code() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].code
}

// String returns the name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
	return kinds[k].name
}
