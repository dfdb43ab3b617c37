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

package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// envUpdate mirrors the teacher's CUE_UPDATE convention, renamed to this
// module's domain.
const envUpdate = "IDENTITIES_UPDATE"

// UpdateGoldenFiles reports whether golden output mismatches should be
// rewritten in place rather than failing the test.
var UpdateGoldenFiles = os.Getenv(envUpdate) != ""

// GoldenTest drives every .txtar fixture under Root through f, comparing
// whatever f writes to c.Golden() against the archive's "out" section and,
// with IDENTITIES_UPDATE set, rewriting that section to match.
type GoldenTest struct {
	Root string
}

// Case is one .txtar fixture: Archive.Files holds every section, including
// the reserved "out" one that Golden is checked against.
type Case struct {
	*testing.T
	Archive *txtar.Archive
	Name    string

	path string
	got  bytes.Buffer
}

// Golden returns a writer whose final contents are compared against the
// fixture's "out" section.
func (c *Case) Golden() *bytes.Buffer { return &c.got }

// Run walks g.Root for *.txtar files and calls f once per file.
func (g *GoldenTest) Run(t *testing.T, f func(c *Case)) {
	t.Helper()
	entries, err := filepath.Glob(filepath.Join(g.Root, "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range entries {
		path := path
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			ar := txtar.Parse(data)

			var outIdx = -1
			for i, fl := range ar.Files {
				if fl.Name == "out" {
					outIdx = i
					break
				}
			}

			c := &Case{T: t, Archive: ar, Name: name, path: path}
			f(c)

			want := ""
			if outIdx >= 0 {
				want = string(ar.Files[outIdx].Data)
			}
			got := c.got.String()

			if got == want {
				return
			}
			if UpdateGoldenFiles {
				newFile := txtar.File{Name: "out", Data: []byte(got)}
				if outIdx >= 0 {
					ar.Files[outIdx] = newFile
				} else {
					ar.Files = append(ar.Files, newFile)
				}
				if err := os.WriteFile(path, txtar.Format(ar), 0o644); err != nil {
					t.Fatal(err)
				}
				return
			}
			t.Errorf("golden mismatch (-want +got):\n%s", cmp.Diff(want, got))
		})
	}
}

// File returns the contents of the named section, or nil if absent.
func (c *Case) File(name string) []byte {
	for _, f := range c.Archive.Files {
		if f.Name == name {
			return f.Data
		}
	}
	return nil
}
