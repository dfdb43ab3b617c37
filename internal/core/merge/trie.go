// Copyright 2026 The Identities Authors
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

package merge

import (
	"sort"

	"identities.dev/go/internal/core/adt"
)

// trieNode is a scratch node used only while Build is assembling a Graph. A
// vector is inserted one Group at a time; the position that is the last
// Group of some vector is always kept in a distinct trieNode from a position
// that some other vector merely passes through, even when the Group is
// identical (see the terminal field on trieKey below). Without that split, a
// single node could not simultaneously be a sink for the first vector and
// carry successors for the second.
type trieNode[V adt.Ident[V]] struct {
	group    adt.Group[V]
	children map[trieKey]*trieNode[V]
	order    []trieKey // insertion order of children, for deterministic descent
}

type trieKey struct {
	value    string
	terminal bool
}

func newTrieNode[V adt.Ident[V]](group adt.Group[V]) *trieNode[V] {
	return &trieNode[V]{group: group, children: map[trieKey]*trieNode[V]{}}
}

// insert walks vec from its first Group, extending t with whatever positions
// don't already exist.
func (t *trieNode[V]) insert(vec adt.Vector[V]) {
	cur := t
	for i, group := range vec {
		last := i == len(vec)-1
		key := trieKey{value: adt.GroupKey(group), terminal: last}
		child, ok := cur.children[key]
		if !ok {
			child = newTrieNode[V](group)
			cur.children[key] = child
			cur.order = append(cur.order, key)
		}
		cur = child
	}
}

// sortedChildren returns t's children in a fixed, content-derived order
// (insertion order depends on input vector order, which must not leak into
// the constructed Graph's handle numbering — Merge(a, b) and Merge(b, a)
// must produce identical Graphs, not merely equal ones).
func (t *trieNode[V]) sortedChildren() []*trieNode[V] {
	keys := make([]trieKey, len(t.order))
	copy(keys, t.order)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].value != keys[j].value {
			return keys[i].value < keys[j].value
		}
		return !keys[i].terminal && keys[j].terminal
	})
	out := make([]*trieNode[V], len(keys))
	for i, k := range keys {
		out[i] = t.children[k]
	}
	return out
}
