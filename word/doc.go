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

// Package word implements reading word lists.
//
// A word list is a tab separated text file with one word per line. Each line
// has exactly five fields:
//  1. The simplified spelling.
//  2. The traditional spelling.
//  3. The pinyin with tone numbers (e.g. "ni3hao3").
//  4. The pinyin with tone marks (e.g. "nǐhǎo").
//  5. The translation.
//
// Every character of a word's spelling must be present in the character
// Graph the word list is read against.
package word
