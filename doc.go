// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hanzi implements an in-memory reference of Chinese characters and
// words in pure Go.
//
// A Catalog is loaded from several files:
//  1. A composition data file (ccd.tsv) describing each character: its
//     stroke count, how it decomposes into components, its radical and its
//     Cangjie code. See package char.
//  2. Six word list files (hsk1.tsv to hsk6.tsv) with the spelling,
//     pronunciation and translation of words. See package word.
//
// Files may be compressed with gzip or dictzip and may be read from a local
// directory or an http(s) base URL.
//
// A Catalog answers two independent lookups for a term: the character named
// by the term, along with the characters it is a part of and the words it
// appears in, and the words spelled as the term.
package hanzi
