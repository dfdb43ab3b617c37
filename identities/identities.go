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

// Package identities is the public API: an Identities value is an
// immutable set of non-empty Vectors (non-empty sequences of non-empty
// Groups of identifiers), stored internally as a shared DAG but presented
// here purely in terms of the set it represents.
//
// The package itself holds no logic beyond routing to
// internal/core/{adt,export,merge,edit}: it is a thin, documented facade,
// the same role the teacher's own top-level package plays over its
// internal evaluator.
package identities

import (
	"identities.dev/go/internal/core/adt"
	"identities.dev/go/internal/core/edit"
	"identities.dev/go/internal/core/export"
	"identities.dev/go/internal/core/merge"
)

// Ident is the constraint required of an identifier type: comparable, with
// a three-way total order. See values.Decimal and values.CollatedString
// for ready-made implementations over non-primitive Go types.
type Ident[V any] = adt.Ident[V]

// Group is a non-empty ordered bundle of identifiers.
type Group[V any] = adt.Group[V]

// Vector is a non-empty ordered sequence of Groups: one lineage path.
type Vector[V any] = adt.Vector[V]

// Identities is an immutable, structurally-shared set of Vectors.
type Identities[V Ident[V]] struct {
	g *adt.Graph[V]
}

func wrap[V Ident[V]](g *adt.Graph[V]) Identities[V] { return Identities[V]{g: g} }

// Empty returns the distinguished empty Identities: no Vectors, breadth 0,
// depth 0, storageSize 0. It is the identity element of Merge.
func Empty[V Ident[V]]() Identities[V] { return wrap(adt.Empty[V]()) }

// Single returns the Identities containing exactly one Vector with one
// Group holding v.
func Single[V Ident[V]](v V) Identities[V] {
	return wrap(merge.Build([]adt.Vector[V]{{adt.Group[V]{v}}}))
}

// Contracted builds the minimal, safely-shared Identities representing the
// distinct Vectors in vs.
func Contracted[V Ident[V]](vs []Vector[V]) Identities[V] {
	return wrap(merge.Build(vs))
}

// IsEmpty reports whether i represents the empty Vector set.
func (i Identities[V]) IsEmpty() bool { return i.g.IsEmpty() }

// Expanded returns every Vector i represents, in no particular but
// deterministic-for-this-value order.
func (i Identities[V]) Expanded() []Vector[V] { return export.Expand(i.g) }

// Breadth is the number of distinct Vectors i represents.
func (i Identities[V]) Breadth() int { return export.Breadth(i.g) }

// Depth is the length of the longest Vector i represents, or 0 if empty.
func (i Identities[V]) Depth() int { return export.Depth(i.g) }

// StorageSize is the total identifier-occurrence count across i's DAG
// nodes — the structural-sharing metric.
func (i Identities[V]) StorageSize() int { return export.StorageSize(i.g) }

// Init drops the last Group from every Vector, discarding any Vector that
// would become empty. It returns (zero, false) if i is already empty, and
// (result, true) otherwise — including when i is Single(v), in which case
// the result is Empty.
func (i Identities[V]) Init() (Identities[V], bool) {
	g, ok := edit.Init(i.g)
	if !ok {
		return Identities[V]{}, false
	}
	return wrap(g), true
}

// Snoc (:+) appends a fresh singleton Group [x] after the last Group of
// every Vector. On Empty it yields Single(x).
func (i Identities[V]) Snoc(x V) Identities[V] { return wrap(edit.Snoc(i.g, x)) }

// Conj (:≻) appends x into the last Group of every Vector. On Empty it
// yields the Identities with one Vector holding one Group [x].
func (i Identities[V]) Conj(x V) Identities[V] { return wrap(edit.Conj(i.g, x)) }

// Submerge inserts a fresh singleton Group [x] immediately before the last
// Group of every Vector. On Empty it is the identity.
func (i Identities[V]) Submerge(x V) Identities[V] { return wrap(edit.Submerge(i.g, x)) }

// Merge returns the Identities representing the union of i and j's
// expansions, coalesced wherever it is safe to do so without introducing a
// Vector absent from both operands (I6). Merge is commutative, associative,
// idempotent, and has Empty as its identity — a bounded semilattice.
func (i Identities[V]) Merge(j Identities[V]) Identities[V] { return wrap(merge.Merge(i.g, j.g)) }

// Equal reports whether i and j represent exactly the same set of Vectors.
func (i Identities[V]) Equal(j Identities[V]) bool { return export.Equal(i.g, j.g) }

// String renders i as a sorted, brace-delimited literal of its Vectors,
// e.g. "{[1,2,3],[1,4]}". It is meant for diagnostics, not round-tripping.
func (i Identities[V]) String() string { return export.Show(i.g) }

// ShowDAG renders i's arena directly, one line per node with its Group and
// successor handles, exposing the sharing structure Show hides. It is meant
// for debugging merge decisions, not round-tripping.
func (i Identities[V]) ShowDAG() string { return export.ShowDAG(i.g) }
