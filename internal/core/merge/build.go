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

// Package merge holds the construction engine shared by every operation
// that produces a new Identities value from a set of Vectors: Contracted,
// Merge, and (via internal/core/edit) Init, Snoc, Conj and Submerge all
// bottom out in Build.
//
// Build runs in two passes. The first inserts every Vector into a trie
// rooted at a synthetic top level, so that any two Vectors sharing a
// literal prefix walk the same chain of trie nodes — this is the "prefix
// convergence permits successor divergence" half of the safety rule in
// DESIGN.md: a trie node's position is reached by exactly one set of
// ancestors, so giving it multiple children can never fabricate a
// lineage that wasn't already present in the input.
//
// The second pass processes the trie bottom-up and content-addresses each
// node by (Group, resolved successor-handle set): adt.GroupKey and
// adt.SuccKey render that pair canonically, and the digest of the result
// (github.com/opencontainers/go-digest) is the map key an existing Graph
// node is looked up by before a new one is appended. Successor-handle sets
// themselves are deduplicated and sorted through internal/intset, pooled one
// Set per trie depth and cleared (never reallocated) between sibling trie
// nodes at that depth, which keeps Handle ordering canonical for SuccKey
// without paying an allocation per node.
// Two trie nodes only ever collapse into one Graph node when their entire
// downstream structure already matches byte-for-byte, which is the
// "successor convergence permits predecessor divergence" half of the same
// rule — merging them can only remove duplicated storage for an identical
// continuation, never introduce a combination that didn't already exist on
// both sides. Because Build never merges two nodes whose successor sets
// differ, it never performs the one merge the safety rule forbids (pre-
// diverges and post-diverges at once), so graphs it produces satisfy I6 by
// construction rather than by a runtime backtracking search.
package merge

import (
	"sort"

	digest "github.com/opencontainers/go-digest"

	"identities.dev/go/internal/core/adt"
	"identities.dev/go/internal/intset"
)

// Build constructs the minimal, safely-shared Graph representing exactly
// the distinct Vectors in vs (I4: duplicate Vectors collapse to one before
// any sharing decision is made). The result satisfies I1-I6 by
// construction; see the package doc for why.
func Build[V adt.Ident[V]](vs []adt.Vector[V]) *adt.Graph[V] {
	distinct := dedupVectors(vs)
	if len(distinct) == 0 {
		return adt.Empty[V]()
	}

	top := newTrieNode[V](nil)
	for _, v := range distinct {
		top.insert(v)
	}

	b := &builder[V]{byKey: map[digest.Digest]adt.Handle{}}
	children := top.sortedChildren()
	rootSet := b.setAt(0)
	for _, c := range children {
		rootSet.Add(b.resolve(c, 1))
	}

	return &adt.Graph[V]{Nodes: b.nodes, Roots: rootSet.Slice()}
}

// builder accumulates the Graph's node arena while the trie is walked
// bottom-up. byKey is the content-address table enforcing I3: a Group plus
// an already-resolved successor set is looked up before a new node is ever
// appended. succPool holds one reusable intset.Set per trie depth: a trie
// node's children are resolved (and may recurse to greater depths) before
// its own successor set is filled, so sibling subtrees at the same depth
// can share one Set — cleared and refilled, never reallocated — while
// distinct depths need independent, simultaneously-live Sets.
type builder[V adt.Ident[V]] struct {
	nodes    []adt.Node[V]
	byKey    map[digest.Digest]adt.Handle
	succPool []*intset.Set[adt.Handle]
}

// setAt returns the pooled Set for depth, clearing it for reuse (or
// allocating it on first use at that depth).
func (b *builder[V]) setAt(depth int) *intset.Set[adt.Handle] {
	for len(b.succPool) <= depth {
		b.succPool = append(b.succPool, intset.New[adt.Handle](8))
	}
	s := b.succPool[depth]
	s.Clear()
	return s
}

// resolve returns the Handle for t, building and interning it (and all of
// its descendants) on first visit. Because t belongs to a trie — a tree,
// not a DAG — resolve visits each trie node exactly once; no memo keyed on
// *trieNode is needed. depth indexes the pooled successor Set this call
// fills; recursive calls use depth+1, since t's children's own successor
// sets must stay alive independently of t's while they're being resolved.
func (b *builder[V]) resolve(t *trieNode[V], depth int) adt.Handle {
	children := t.sortedChildren()
	succSet := b.setAt(depth)
	for _, c := range children {
		succSet.Add(b.resolve(c, depth+1))
	}
	succ := succSet.Slice()

	key := digest.FromString(adt.GroupKey(t.group) + "\x00" + adt.SuccKey(succ))
	if h, ok := b.byKey[key]; ok {
		return h
	}
	h := adt.Handle(len(b.nodes))
	b.nodes = append(b.nodes, adt.Node[V]{Group: t.group, Succ: succ})
	b.byKey[key] = h
	return h
}

// dedupVectors removes duplicate Vectors (I4), keeping a deterministic
// representative order so Build's output does not depend on vs's order.
func dedupVectors[V adt.Ident[V]](vs []adt.Vector[V]) []adt.Vector[V] {
	type keyed struct {
		key string
		v   adt.Vector[V]
	}
	seen := map[string]bool{}
	ks := make([]keyed, 0, len(vs))
	for _, v := range vs {
		k := vectorKey(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		ks = append(ks, keyed{key: k, v: v})
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	out := make([]adt.Vector[V], len(ks))
	for i, k := range ks {
		out[i] = k.v
	}
	return out
}

func vectorKey[V any](v adt.Vector[V]) string {
	s := ""
	for _, g := range v {
		s += adt.GroupKey(g) + "\x01"
	}
	return s
}
