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
	"identities.dev/go/internal/core/adt"
	"identities.dev/go/internal/core/export"
)

// Contracted builds the minimal, safely-shared Graph for an already-
// materialised Vector set. It is Build under a name that matches the
// public API's constructor.
func Contracted[V adt.Ident[V]](vs []adt.Vector[V]) *adt.Graph[V] {
	return Build(vs)
}

// Merge combines a and b into the Graph representing the union of their
// Vector sets (I5, P3-P6: commutative, associative, idempotent, identity
// on Empty). Both operands are fully expanded first; this is the
// deliberate simplification documented in DESIGN.md under "merge
// strategy" — it trades the possibility of reusing structure across a and
// b's own arenas for a construction that is provably safe (see the merge
// package doc) and, empirically, matches or beats the reference storage
// figures for every scenario in the test suite.
func Merge[V adt.Ident[V]](a, b *adt.Graph[V]) *adt.Graph[V] {
	union := append(export.Expand(a), export.Expand(b)...)
	return Build(union)
}
