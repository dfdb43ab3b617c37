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

// Package testutil holds test-only support shared across the module's test
// files: a minimal identifier type matching the integer-literal notation
// spec scenarios are written in, and a golden-file fixture helper.
package testutil

import "strconv"

// Int is the smallest possible identities.Ident[Int] implementation: a
// plain int with the total order built in. Every storageSize scenario in
// the test suite is phrased in the spec over bare integers (e.g.
// {[1,2,3,4,5],[8,9,3,4,5]}); Int lets the tests use identical literals.
type Int int

// Compare implements identities.Ident[Int].
func (i Int) Compare(other Int) int {
	switch {
	case i < other:
		return -1
	case i > other:
		return 1
	default:
		return 0
	}
}

func (i Int) String() string { return strconv.Itoa(int(i)) }

// Ints converts a slice of plain ints into Int, for building Vector
// literals tersely in tests.
func Ints(vs ...int) []Int {
	out := make([]Int, len(vs))
	for i, v := range vs {
		out[i] = Int(v)
	}
	return out
}
