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

// Package values offers identifier types for identities.Identities beyond
// Go's built-in ordered primitives: Decimal for arbitrary-precision
// numeric identifiers, and CollatedString for locale-aware string
// ordering.
package values

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is an arbitrary-precision decimal identifier. It satisfies
// identities.Ident[Decimal]: comparable (it holds only a string) with a
// numeric — not lexicographic — Compare, backed by apd.Decimal the same
// way the teacher's own numeric literals are.
//
// apd.Decimal itself embeds a big.Int and so is not a comparable Go type;
// Decimal stores the canonical decimal string instead and reparses on
// Compare, trading a little CPU for the ability to be used as a map key
// and a type argument satisfying `comparable`.
type Decimal struct {
	repr string
}

// NewDecimal parses s (e.g. "3.14", "-2E10") into a Decimal. The value is
// reduced (trailing zeros stripped) before being stored, so that "1" and
// "1.0" produce the same Decimal and therefore compare equal both via
// Compare and via ==, as identities.Ident requires.
func NewDecimal(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("values: invalid decimal %q: %w", s, err)
	}
	var reduced apd.Decimal
	if _, err := apd.BaseContext.Reduce(&reduced, d); err == nil {
		d = &reduced
	}
	return Decimal{repr: d.Text('G')}, nil
}

// MustDecimal is NewDecimal, panicking on error; for literals in tests and
// fixtures.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Compare returns -1, 0, or 1 as d is numerically less than, equal to, or
// greater than other, regardless of how each was formatted (e.g. "1.0"
// equals "1").
func (d Decimal) Compare(other Decimal) int {
	da, _, err := apd.NewFromString(d.repr)
	if err != nil {
		panic(fmt.Errorf("values: corrupt Decimal %q: %w", d.repr, err))
	}
	db, _, err := apd.NewFromString(other.repr)
	if err != nil {
		panic(fmt.Errorf("values: corrupt Decimal %q: %w", other.repr, err))
	}
	return da.Cmp(db)
}

// String returns d's canonical decimal representation.
func (d Decimal) String() string { return d.repr }
