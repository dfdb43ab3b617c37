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

// Package edit implements the four structural editing operations (init,
// snoc, conj, submerge) in terms of internal/core/export.Expand and
// internal/core/merge.Build: expand to the explicit Vector set, transform
// it, rebuild. This is simpler and easier to trust than a direct
// graph-splicing implementation (the design notes hint that init admits a
// single-traversal graph form; DESIGN.md records why expand-then-rebuild
// was chosen instead, for every operation including init, given that the
// data model's own non-goals already license materialising the Vector
// set).
package edit

import (
	"identities.dev/go/internal/core/adt"
	"identities.dev/go/internal/core/export"
	"identities.dev/go/internal/core/merge"
)

// Init drops the last Group from every Vector, discarding any Vector that
// had only one Group (it would become empty, which Vector forbids). The
// second return value is false iff g was already empty, mirroring the
// source's None/Some(empty) distinction.
func Init[V adt.Ident[V]](g *adt.Graph[V]) (*adt.Graph[V], bool) {
	if g.IsEmpty() {
		return nil, false
	}
	vs := export.Expand(g)
	out := make([]adt.Vector[V], 0, len(vs))
	for _, v := range vs {
		if len(v) < 2 {
			continue
		}
		out = append(out, v[:len(v)-1])
	}
	return merge.Build(out), true
}

// Snoc (:+) appends a fresh singleton Group [x] after the last Group of
// every Vector. On the empty Identities it yields single(x).
func Snoc[V adt.Ident[V]](g *adt.Graph[V], x V) *adt.Graph[V] {
	vs := export.Expand(g)
	if len(vs) == 0 {
		return merge.Build([]adt.Vector[V]{{adt.Group[V]{x}}})
	}
	out := make([]adt.Vector[V], len(vs))
	for i, v := range vs {
		nv := make(adt.Vector[V], len(v), len(v)+1)
		copy(nv, v)
		out[i] = append(nv, adt.Group[V]{x})
	}
	return merge.Build(out)
}

// Conj (:≻) appends x into the last Group of every Vector. On the empty
// Identities it yields a single Vector with one Group [x].
func Conj[V adt.Ident[V]](g *adt.Graph[V], x V) *adt.Graph[V] {
	vs := export.Expand(g)
	if len(vs) == 0 {
		return merge.Build([]adt.Vector[V]{{adt.Group[V]{x}}})
	}
	out := make([]adt.Vector[V], len(vs))
	for i, v := range vs {
		nv := make(adt.Vector[V], len(v))
		copy(nv, v)
		last := nv[len(nv)-1]
		grp := make(adt.Group[V], len(last), len(last)+1)
		copy(grp, last)
		nv[len(nv)-1] = append(grp, x)
		out[i] = nv
	}
	return merge.Build(out)
}

// Submerge inserts a fresh singleton Group [x] immediately before the last
// Group of every Vector. On the empty Identities it is the identity.
func Submerge[V adt.Ident[V]](g *adt.Graph[V], x V) *adt.Graph[V] {
	vs := export.Expand(g)
	if len(vs) == 0 {
		return g
	}
	out := make([]adt.Vector[V], len(vs))
	for i, v := range vs {
		nv := make(adt.Vector[V], 0, len(v)+1)
		nv = append(nv, v[:len(v)-1]...)
		nv = append(nv, adt.Group[V]{x})
		nv = append(nv, v[len(v)-1])
		out[i] = nv
	}
	return merge.Build(out)
}
