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

// Package subsume answers the question internal/core/merge's Build is
// designed to never have to ask at runtime: would sharing a node here
// change the set of Vectors represented? Build sidesteps the question by
// construction (see its package doc), but the predicates here give that
// argument a checkable form, both for unit tests on small hand-built
// Graphs and as a post-hoc auditor callable from merge tests on the
// outputs of Build itself.
package subsume

import "identities.dev/go/internal/core/adt"

// Bisimilar reports whether node a (in ga) and node b (in gb) represent
// exactly the same downstream structure: equal Groups, and successor sets
// that can be paired up one-to-one such that every pair is itself
// Bisimilar. Two sink nodes (no successors) with equal Groups are always
// Bisimilar.
//
// This is the condition Build's content-addressing relies on when it
// collapses two trie nodes into one Graph node: collapsing is only ever
// done when Bisimilar already holds, which is why it can never fabricate a
// path that wasn't present in either input.
func Bisimilar[V adt.Ident[V]](ga *adt.Graph[V], a adt.Handle, gb *adt.Graph[V], b adt.Handle) bool {
	return bisim(ga, a, gb, b, map[[2]adt.Handle]bool{})
}

func bisim[V adt.Ident[V]](ga *adt.Graph[V], a adt.Handle, gb *adt.Graph[V], b adt.Handle, seen map[[2]adt.Handle]bool) bool {
	key := [2]adt.Handle{a, b}
	if v, ok := seen[key]; ok {
		return v
	}
	// Assume true while recursing so a cycle (which should not occur in a
	// well-formed acyclic Graph, I1) can't cause infinite recursion.
	seen[key] = true

	na, nb := ga.Node(a), gb.Node(b)
	if !groupEqual(na.Group, nb.Group) || len(na.Succ) != len(nb.Succ) {
		seen[key] = false
		return false
	}
	matched := make([]bool, len(nb.Succ))
	for _, sa := range na.Succ {
		found := false
		for j, sb := range nb.Succ {
			if matched[j] {
				continue
			}
			if bisim(ga, sa, gb, sb, seen) {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			seen[key] = false
			return false
		}
	}
	return true
}

func groupEqual[V adt.Ident[V]](a, b adt.Group[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Compare(b[i]) != 0 {
			return false
		}
	}
	return true
}

// SuffixSafe reports whether coalescing candidate p (in ga) with candidate
// q (in gb) is safe from the successor side: they converge immediately
// (Bisimilar downstream) or both are sinks. It is the forward half of the
// merge-safety rule: if the paths leaving p and q diverge in any way that
// isn't itself already a safe, fully-resolved match, refuse.
func SuffixSafe[V adt.Ident[V]](ga *adt.Graph[V], p adt.Handle, gb *adt.Graph[V], q adt.Handle) bool {
	return Bisimilar(ga, p, gb, q)
}

// PrefixSafe reports whether coalescing candidate p (in ga) with candidate
// q (in gb) is safe from the predecessor side: p and q are both roots (no
// predecessor, trivially converged), or every predecessor pairing of p and
// q is itself PrefixSafe-or-Bisimilar. pred{a,b} map each Handle to its
// direct predecessors within its own Graph.
func PrefixSafe[V adt.Ident[V]](ga *adt.Graph[V], preda map[adt.Handle][]adt.Handle, p adt.Handle, gb *adt.Graph[V], predb map[adt.Handle][]adt.Handle, q adt.Handle) bool {
	pp, qp := preda[p], predb[q]
	if len(pp) == 0 && len(qp) == 0 {
		return true
	}
	if len(pp) != len(qp) {
		return false
	}
	matched := make([]bool, len(qp))
	for _, pa := range pp {
		found := false
		for j, pb := range qp {
			if matched[j] {
				continue
			}
			if Bisimilar(ga, pa, gb, pb) || PrefixSafe(ga, preda, pa, gb, predb, pb) {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Predecessors builds the direct-predecessor index for g: for every
// Handle, the Handles of nodes that name it as a successor. PrefixSafe
// needs this because Graph itself only stores forward edges.
func Predecessors[V adt.Ident[V]](g *adt.Graph[V]) map[adt.Handle][]adt.Handle {
	preds := make(map[adt.Handle][]adt.Handle, len(g.Nodes))
	for i := range g.Nodes {
		for _, s := range g.Nodes[i].Succ {
			preds[s] = append(preds[s], adt.Handle(i))
		}
	}
	return preds
}
