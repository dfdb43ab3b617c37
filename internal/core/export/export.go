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

// Package export projects a Graph back out into the explicit Vector set it
// represents, and derives the small statistics (Breadth, Depth) defined
// directly in terms of that set. It is the read side of the DAG: nothing
// here ever allocates a new Graph node.
package export

import (
	"fmt"
	"sort"
	"strings"

	"identities.dev/go/internal/core/adt"
)

// Expand enumerates every root-to-sink Vector represented by g. Each node
// is visited once regardless of how many roots or branch points reach it —
// tails are memoised per Handle — so cost is proportional to the size of
// the output, not to the number of paths revisited during the walk.
func Expand[V adt.Ident[V]](g *adt.Graph[V]) []adt.Vector[V] {
	if g.IsEmpty() {
		return nil
	}
	memo := make(map[adt.Handle][]adt.Vector[V], len(g.Nodes))
	var resolve func(h adt.Handle) []adt.Vector[V]
	resolve = func(h adt.Handle) []adt.Vector[V] {
		if tails, ok := memo[h]; ok {
			return tails
		}
		n := g.Node(h)
		var tails []adt.Vector[V]
		if len(n.Succ) == 0 {
			tails = []adt.Vector[V]{{n.Group}}
		} else {
			for _, c := range n.Succ {
				for _, childTail := range resolve(c) {
					v := make(adt.Vector[V], 0, 1+len(childTail))
					v = append(v, n.Group)
					v = append(v, childTail...)
					tails = append(tails, v)
				}
			}
		}
		memo[h] = tails
		return tails
	}

	var out []adt.Vector[V]
	for _, r := range g.Roots {
		out = append(out, resolve(r)...)
	}
	return out
}

// Breadth is the number of distinct Vectors g represents.
func Breadth[V adt.Ident[V]](g *adt.Graph[V]) int {
	return len(Expand(g))
}

// Depth is the length (in Groups) of the longest Vector g represents, or 0
// for the empty Graph.
func Depth[V adt.Ident[V]](g *adt.Graph[V]) int {
	max := 0
	for _, v := range Expand(g) {
		if len(v) > max {
			max = len(v)
		}
	}
	return max
}

// StorageSize is the total identifier-occurrence count across g's node
// arena. It is exposed here too (Graph itself already provides it) so
// callers that only import export — the read-side API surface — don't also
// need internal/core/adt.
func StorageSize[V adt.Ident[V]](g *adt.Graph[V]) int {
	return g.StorageSize()
}

// vectorKeys returns the canonical, sortable key for every Vector in g, one
// per entry of Expand(g). Equal and Show both reduce to this: since I4
// guarantees no Graph represents the same Vector twice, the key multiset is
// always a key set.
func vectorKeys[V adt.Ident[V]](g *adt.Graph[V]) []string {
	vs := Expand(g)
	keys := make([]string, len(vs))
	for i, v := range vs {
		var b strings.Builder
		for _, grp := range v {
			b.WriteString(adt.GroupKey(grp))
			b.WriteByte('\x01')
		}
		keys[i] = b.String()
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether a and b represent exactly the same set of Vectors.
// Per the data model, two Graphs may be structurally different yet equal —
// equality is defined over the represented set, not the arena shape.
func Equal[V adt.Ident[V]](a, b *adt.Graph[V]) bool {
	ka, kb := vectorKeys(a), vectorKeys(b)
	if len(ka) != len(kb) {
		return false
	}
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}
	return true
}

// Show renders g as a sorted, brace-delimited literal of its Vectors, e.g.
// "{[1,2,3],[1,4]}". It is meant for diagnostics and golden tests, not for
// round-tripping.
func Show[V adt.Ident[V]](g *adt.Graph[V]) string {
	vs := Expand(g)
	repr := make([]string, len(vs))
	for i, v := range vs {
		groups := make([]string, len(v))
		for j, grp := range v {
			elems := make([]string, len(grp))
			for k, e := range grp {
				elems[k] = fmtValue(e)
			}
			groups[j] = strings.Join(elems, " ")
		}
		repr[i] = "[" + strings.Join(groups, ",") + "]"
	}
	sort.Strings(repr)
	return "{" + strings.Join(repr, ",") + "}"
}

// ShowDAG renders g's arena directly, one line per node in arena order,
// e.g. "h0: [1] -> h1\nh1: [2 3] -> (sink)", preceded by a "roots: ..."
// line. Unlike Show, it exposes the sharing structure itself rather than
// the Vector set it represents — meant for debugging merge decisions, the
// same role the teacher's dual-mode CreateMermaidGraph plays for its own
// evaluator graph alongside its plain-value rendering.
func ShowDAG[V adt.Ident[V]](g *adt.Graph[V]) string {
	var b strings.Builder
	roots := make([]string, len(g.Roots))
	for i, r := range g.Roots {
		roots[i] = fmt.Sprintf("h%d", r)
	}
	fmt.Fprintf(&b, "roots: %s\n", strings.Join(roots, ", "))
	for h := range g.Nodes {
		n := &g.Nodes[h]
		elems := make([]string, len(n.Group))
		for i, e := range n.Group {
			elems[i] = fmtValue(e)
		}
		succ := make([]string, len(n.Succ))
		for i, s := range n.Succ {
			succ[i] = fmt.Sprintf("h%d", s)
		}
		fmt.Fprintf(&b, "h%d: [%s] -> ", h, strings.Join(elems, " "))
		if len(succ) == 0 {
			b.WriteString("(sink)\n")
		} else {
			fmt.Fprintf(&b, "%s\n", strings.Join(succ, ", "))
		}
	}
	return b.String()
}

func fmtValue[V any](v V) string {
	if s, ok := any(v).(interface{ String() string }); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
