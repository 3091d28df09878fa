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

package index

import (
	"slices"
	"sort"
	"strings"
)

// Entry is a value stored under a key.
type Entry[V any] struct {
	Key   string
	Value V
}

// Index is a generic sorted array multimap. It is read-only once created.
type Index[V any] struct {
	// entries are sorted by key. Entries with equal keys keep the order they
	// were given in.
	entries []Entry[V]
}

// NewIndex creates an index from the given entries.
func NewIndex[V any](entries []Entry[V]) *Index[V] {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry[V]) int {
		return strings.Compare(a.Key, b.Key)
	})

	return &Index[V]{
		entries: sorted,
	}
}

// Search performs a binary search over the index and returns the values
// stored under key.
func (idx *Index[V]) Search(key string) []V {
	if idx == nil {
		return nil
	}

	i, found := sort.Find(len(idx.entries), func(i int) int {
		return strings.Compare(key, idx.entries[i].Key)
	})
	if !found {
		return nil
	}

	var values []V
	for j := i; j < len(idx.entries) && idx.entries[j].Key == key; j++ {
		values = append(values, idx.entries[j].Value)
	}
	return values
}

// Len returns the number of entries.
func (idx *Index[V]) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}
