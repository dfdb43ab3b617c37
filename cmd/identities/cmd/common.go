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

package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"identities.dev/go/encoding/identityfile"
	"identities.dev/go/identities"
)

// token is the identifier type every subcommand operates over: the plain
// string found in a fixture file, ordered lexically. Fixtures that need a
// different ordering (numeric, collated) are a library concern — see
// identities.dev/go/values — and out of scope for this generic file tool.
type token string

func (t token) Compare(other token) int { return strings.Compare(string(t), string(other)) }

func parseToken(s string) (token, error) { return token(s), nil }

func showToken(t token) string { return string(t) }

// loadFile reads path as a vector-set YAML document and returns the
// resulting Identities value.
func loadFile(path string) (identities.Identities[token], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return identities.Identities[token]{}, fmt.Errorf("identities: %w", err)
	}
	vs, err := identityfile.DecodeYAML(data, parseToken)
	if err != nil {
		return identities.Identities[token]{}, fmt.Errorf("identities: %s: %w", path, err)
	}
	id := identities.Contracted(vs)
	if verbose {
		log.Printf("loaded %s: breadth=%d storageSize=%d", path, id.Breadth(), id.StorageSize())
	}
	return id, nil
}
