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

// Package char implements reading character composition data.
//
// Composition data is a tab separated text file with one character per line.
// Each line has exactly ten fields:
//  1. The character itself.
//  2. The number of strokes.
//  3. The composition kind code (see package comp).
//  4. The first part and 5. its number of strokes.
//  6. The second part and 7. its number of strokes.
//  8. The Cangjie input code.
//  9. A verification marker.
//  10. The radical.
//
// A part or radical equal to the character itself or to the placeholder "*"
// is not a real reference and is dropped.
//
// A Graph is built in two passes. The first pass reads every record. The
// second pass links component and radical references to the characters they
// name. References to characters missing from the data are kept as
// unresolved Refs and reported by Graph.Unresolved.
package char
