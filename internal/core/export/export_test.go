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

package export_test

import (
	"testing"

	"identities.dev/go/internal/core/adt"
	"identities.dev/go/internal/core/export"
	"identities.dev/go/internal/core/merge"
	"identities.dev/go/internal/testutil"
)

func group(ns ...int) adt.Group[testutil.Int] {
	g := make(adt.Group[testutil.Int], len(ns))
	for i, n := range ns {
		g[i] = testutil.Int(n)
	}
	return g
}

func vec(groups ...adt.Group[testutil.Int]) adt.Vector[testutil.Int] {
	return adt.Vector[testutil.Int](groups)
}

func TestExpandOnEmpty(t *testing.T) {
	g := adt.Empty[testutil.Int]()
	if got := export.Expand(g); got != nil {
		t.Fatalf("Expand(empty) = %v, want nil", got)
	}
	if export.Breadth(g) != 0 || export.Depth(g) != 0 {
		t.Fatalf("breadth/depth of empty graph must both be 0")
	}
}

func TestExpandRoundTrips(t *testing.T) {
	vs := []adt.Vector[testutil.Int]{
		vec(group(1), group(2), group(3)),
		vec(group(1), group(4)),
		vec(group(5)),
	}
	g := merge.Build(vs)
	if got, want := export.Breadth(g), 3; got != want {
		t.Fatalf("breadth = %d, want %d", got, want)
	}
	if got, want := export.Depth(g), 3; got != want {
		t.Fatalf("depth = %d, want %d", got, want)
	}
	if !export.Equal(merge.Build(export.Expand(g)), g) {
		t.Fatalf("rebuilding from Expand output changed the represented set")
	}
}

func TestShowIsSortedAndBraceDelimited(t *testing.T) {
	g := merge.Build([]adt.Vector[testutil.Int]{vec(group(2)), vec(group(1))})
	if got, want := export.Show(g), "{[1],[2]}"; got != want {
		t.Fatalf("Show() = %q, want %q", got, want)
	}
}

func TestShowDAGListsNodesAndRoots(t *testing.T) {
	g := merge.Build([]adt.Vector[testutil.Int]{vec(group(2)), vec(group(1))})
	want := "roots: h0, h1\nh0: [1] -> (sink)\nh1: [2] -> (sink)\n"
	if got := export.ShowDAG(g); got != want {
		t.Fatalf("ShowDAG() = %q, want %q", got, want)
	}
}

func TestEqualIgnoresArenaShape(t *testing.T) {
	a := merge.Build([]adt.Vector[testutil.Int]{vec(group(1), group(2))})
	// The same Vector [1],[2] with the opposite arena order from Build's,
	// which resolves (and so numbers) the sink [2] before [1].
	b := &adt.Graph[testutil.Int]{
		Nodes: []adt.Node[testutil.Int]{{Group: group(1), Succ: []adt.Handle{1}}, {Group: group(2)}},
		Roots: []adt.Handle{0},
	}
	if !export.Equal(a, b) {
		t.Fatalf("Equal must hold between structurally-different but set-equal graphs")
	}
}
