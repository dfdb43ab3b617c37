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

package subsume

import (
	"fmt"
	"sort"

	"identities.dev/go/internal/core/adt"
	"identities.dev/go/internal/core/export"
)

// VerifyNoSpuriousPaths re-derives result's Vector set via export.Expand and
// compares it against want (which callers typically obtain as the union of
// the operands' own expansions). It is the literal form of I6: a merge
// result must represent exactly the union it was asked to represent, no
// more paths and no fewer. internal/core/merge's tests call this on the
// Build output of each storage-size scenario and of the doubly-shared
// scenario; it is not on Build's hot path.
func VerifyNoSpuriousPaths[V adt.Ident[V]](result *adt.Graph[V], want []adt.Vector[V]) error {
	got := export.Expand(result)
	gotKeys := vectorKeySet(got)
	wantKeys := vectorKeySet(want)

	var extra, missing []string
	for k := range gotKeys {
		if !wantKeys[k] {
			extra = append(extra, k)
		}
	}
	for k := range wantKeys {
		if !gotKeys[k] {
			missing = append(missing, k)
		}
	}
	if len(extra) == 0 && len(missing) == 0 {
		return nil
	}
	sort.Strings(extra)
	sort.Strings(missing)
	return fmt.Errorf("spurious paths: %d unexpected, %d missing (extra=%v missing=%v)", len(extra), len(missing), extra, missing)
}

func vectorKeySet[V any](vs []adt.Vector[V]) map[string]bool {
	out := make(map[string]bool, len(vs))
	for _, v := range vs {
		s := ""
		for _, g := range v {
			s += adt.GroupKey(g) + "\x01"
		}
		out[s] = true
	}
	return out
}
