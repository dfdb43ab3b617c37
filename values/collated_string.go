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

package values

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CollatedString is a string identifier ordered by a locale's collation
// rules rather than by byte value — so, for example, "café" sorts next to
// "cafe" under language.French even though they differ byte-for-byte. The
// teacher's own localisation layer (cmd/.../root.go) links golang.org/x/text
// as its message localizer; CollatedString draws on the same module's
// collate subpackage for ordering instead of display.
//
// Two CollatedStrings compare using the Tag they were constructed with; it
// is the caller's responsibility to only mix values built from the same
// Tag within one Identities[CollatedString], since Compare uses the
// receiver's collator.
type CollatedString struct {
	tag language.Tag
	s   string
}

// NewCollatedString returns a CollatedString that compares under tag's
// collation rules.
func NewCollatedString(tag language.Tag, s string) CollatedString {
	return CollatedString{tag: tag, s: s}
}

// Compare orders c and other using a Collator for c's Tag.
func (c CollatedString) Compare(other CollatedString) int {
	return collate.New(c.tag).CompareString(c.s, other.s)
}

// String returns the underlying text.
func (c CollatedString) String() string { return c.s }
