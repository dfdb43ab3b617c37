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
	"fmt"
	"testing"

	"github.com/kr/pretty"

	"identities.dev/go/internal/core/adt"
	"identities.dev/go/internal/core/export"
	"identities.dev/go/internal/core/subsume"
	"identities.dev/go/internal/testutil"
)

func vec(ns ...int) adt.Vector[testutil.Int] {
	v := make(adt.Vector[testutil.Int], len(ns))
	for i, n := range ns {
		v[i] = adt.Group[testutil.Int]{testutil.Int(n)}
	}
	return v
}

// storageSizeCases is §8's normative battery, S1-S9 (S10 is a formula over a
// family of inputs and is checked separately by TestS10Family).
func storageSizeCases() []struct {
	name string
	vs   []adt.Vector[testutil.Int]
	want int
} {
	return []struct {
		name string
		vs   []adt.Vector[testutil.Int]
		want int
	}{
		{"S1_pure_suffix_share", []adt.Vector[testutil.Int]{vec(1, 2, 3, 4, 5), vec(8, 9, 3, 4, 5)}, 7},
		{"S2_prefix_divergence_suffix", []adt.Vector[testutil.Int]{vec(1, 2, 3, 4, 5), vec(1, 2, 6, 4, 5)}, 6},
		{"S3_reverse_no_coalesce", []adt.Vector[testutil.Int]{vec(1, 2, 3, 4, 5), vec(5, 4, 3, 2, 1)}, 10},
		{"S4_four_vectors", []adt.Vector[testutil.Int]{vec(1, 2, 3, 4, 5), vec(7, 8, 9, 4, 5), vec(11, 12, 3, 13, 5), vec(15, 17, 9, 4, 5)}, 14},
		{"S5_three_vectors", []adt.Vector[testutil.Int]{vec(1, 2, 3, 4, 5), vec(6, 7, 3, 4, 8), vec(9, 10, 3, 4, 8)}, 12},
		{"S6_double_prefix_pair", []adt.Vector[testutil.Int]{vec(1, 2, 6, 7, 8), vec(3, 4, 6, 7, 8), vec(1, 2, 6, 9, 10), vec(3, 4, 6, 9, 10)}, 9},
		{"S7_mismatched_length_no_force", []adt.Vector[testutil.Int]{vec(1, 2, 3, 4), vec(6, 7, 3)}, 7},
		{"S8_misaligned_substring", []adt.Vector[testutil.Int]{vec(1, 2, 3, 4, 5, 6), vec(6, 7, 3, 4, 5)}, 11},
		{"S9_shared_prefix_then_split", []adt.Vector[testutil.Int]{vec(1, 2, 3, 4, 5), vec(7, 2, 6, 8, 10), vec(7, 2, 11, 13, 15)}, 13},
	}
}

func TestStorageSizeScenarios(t *testing.T) {
	for _, tc := range storageSizeCases() {
		t.Run(tc.name, func(t *testing.T) {
			g := Build(tc.vs)
			if got := g.StorageSize(); got != tc.want {
				t.Fatalf("storageSize = %d, want %d", got, tc.want)
			}
			if err := subsume.VerifyNoSpuriousPaths(g, tc.vs); err != nil {
				t.Fatal(err)
			}
		})
	}
}

// TestS10Family checks the general formula: for init=[1..k] and m distinct
// ends, merging {init ++ [e] ++ [init[0]] : e in ends} costs k+m+1.
func TestS10Family(t *testing.T) {
	for _, tc := range []struct{ k, m int }{{3, 2}, {5, 4}, {1, 3}, {4, 1}} {
		t.Run(fmt.Sprintf("k=%d_m=%d", tc.k, tc.m), func(t *testing.T) {
			init := make([]int, tc.k)
			for i := range init {
				init[i] = i + 1
			}
			var vs []adt.Vector[testutil.Int]
			for e := 0; e < tc.m; e++ {
				ns := append(append([]int{}, init...), 1000+e, init[0])
				vs = append(vs, vec(ns...))
			}
			g := Build(vs)
			want := tc.k + tc.m + 1
			if got := g.StorageSize(); got != want {
				t.Fatalf("storageSize = %d, want %d (k=%d m=%d)", got, want, tc.k, tc.m)
			}
		})
	}
}

// TestOpenQuestionDoublySharedScenario is the discrepancy flagged in §9:
// the source asserts the ideal is 10 but its own implementation produced
// 11. Build achieves the ideal value: the trie gives [1,2] and [3,4] one
// branch point each into {6,8}, and hash-consing shares the two tails
// [6,7,8] and [8,9,10] between them, while VerifyNoSpuriousPaths confirms
// no extra vector is represented.
func TestOpenQuestionDoublySharedScenario(t *testing.T) {
	vs := []adt.Vector[testutil.Int]{
		vec(1, 2, 6, 7, 8),
		vec(3, 4, 6, 7, 8),
		vec(1, 2, 8, 9, 10),
		vec(3, 4, 8, 9, 10),
	}
	g := Build(vs)
	if got := g.StorageSize(); got != 10 {
		t.Fatalf("storageSize = %d, want 10 (ideal; 11 would still be acceptable per spec, but this construction achieves 10)\nnode arena: %# v", got, pretty.Formatter(g.Nodes))
	}
	if err := subsume.VerifyNoSpuriousPaths(g, vs); err != nil {
		t.Fatal(err)
	}
}

func TestMergeCommutative(t *testing.T) {
	a := Build([]adt.Vector[testutil.Int]{vec(1, 2, 3)})
	b := Build([]adt.Vector[testutil.Int]{vec(1, 2, 4), vec(5)})
	ab := Merge(a, b)
	ba := Merge(b, a)
	if !export.Equal(ab, ba) {
		t.Fatalf("merge(a,b) != merge(b,a): %s vs %s", export.Show(ab), export.Show(ba))
	}
	if ab.StorageSize() != ba.StorageSize() {
		t.Fatalf("storageSize differs under argument order: %d vs %d", ab.StorageSize(), ba.StorageSize())
	}
}

func TestMergeAssociative(t *testing.T) {
	a := Build([]adt.Vector[testutil.Int]{vec(1, 2)})
	b := Build([]adt.Vector[testutil.Int]{vec(1, 3)})
	c := Build([]adt.Vector[testutil.Int]{vec(9)})
	left := Merge(Merge(a, b), c)
	right := Merge(a, Merge(b, c))
	if !export.Equal(left, right) {
		t.Fatalf("merge not associative: %s vs %s", export.Show(left), export.Show(right))
	}
}

func TestMergeIdentityAndIdempotent(t *testing.T) {
	a := Build([]adt.Vector[testutil.Int]{vec(1, 2, 3), vec(4)})
	empty := adt.Empty[testutil.Int]()

	if got := Merge(a, empty); !export.Equal(got, a) {
		t.Fatalf("merge(a, empty) = %s, want %s", export.Show(got), export.Show(a))
	}
	if got := Merge(a, a); !export.Equal(got, a) {
		t.Fatalf("merge(a, a) = %s, want %s", export.Show(got), export.Show(a))
	}
}

func TestBuildDedupesVectors(t *testing.T) {
	g := Build([]adt.Vector[testutil.Int]{vec(1, 2), vec(1, 2), vec(3)})
	if got := export.Breadth(g); got != 2 {
		t.Fatalf("breadth = %d, want 2", got)
	}
}
