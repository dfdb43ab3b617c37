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

// Package identityfile converts between on-disk fixtures and Vector sets.
// It supports a plain YAML encoding (one document, a list of Vectors, each
// a list of Groups, each a list of string tokens) and txtar archives of
// such documents — the same "one archive, many named sections, each
// decoded independently" shape internal/cuetxtar uses for golden CUE
// fixtures in the teacher pack, here applied to vector-set fixtures
// instead of CUE source files.
//
// Because Vector is generic over the identifier type V, callers supply a
// Parse function translating each YAML string token into a V.
package identityfile

import (
	"fmt"

	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"identities.dev/go/identities"
)

// document is the YAML wire shape: a list of vectors, each a list of
// groups, each a list of string tokens.
type document [][][]string

// Parse converts a string token into an identifier value.
type Parse[V identities.Ident[V]] func(token string) (V, error)

// DecodeYAML parses data as a YAML document and converts it to a Vector
// set using parse.
func DecodeYAML[V identities.Ident[V]](data []byte, parse Parse[V]) ([]identities.Vector[V], error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("identityfile: decode yaml: %w", err)
	}
	return convert(doc, parse)
}

// EncodeYAML renders a Vector set back to its YAML wire form, using show to
// turn each identifier into its string token.
func EncodeYAML[V identities.Ident[V]](vs []identities.Vector[V], show func(V) string) ([]byte, error) {
	doc := make(document, len(vs))
	for i, v := range vs {
		groups := make([][]string, len(v))
		for j, g := range v {
			tokens := make([]string, len(g))
			for k, id := range g {
				tokens[k] = show(id)
			}
			groups[j] = tokens
		}
		doc[i] = groups
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("identityfile: encode yaml: %w", err)
	}
	return out, nil
}

// Archive is a parsed txtar fixture: each file's content decoded
// independently as a YAML document, keyed by its archive-relative name.
type Archive[V identities.Ident[V]] struct {
	Comment string
	Files   map[string][]identities.Vector[V]
}

// DecodeTxtar parses data as a txtar archive and decodes every file as a
// YAML vector-set document.
func DecodeTxtar[V identities.Ident[V]](data []byte, parse Parse[V]) (*Archive[V], error) {
	ar := txtar.Parse(data)
	out := &Archive[V]{Comment: string(ar.Comment), Files: make(map[string][]identities.Vector[V], len(ar.Files))}
	for _, f := range ar.Files {
		vs, err := DecodeYAML(f.Data, parse)
		if err != nil {
			return nil, fmt.Errorf("identityfile: file %q: %w", f.Name, err)
		}
		out.Files[f.Name] = vs
	}
	return out, nil
}

func convert[V identities.Ident[V]](doc document, parse Parse[V]) ([]identities.Vector[V], error) {
	vs := make([]identities.Vector[V], len(doc))
	for i, vec := range doc {
		if len(vec) == 0 {
			return nil, fmt.Errorf("identityfile: vector %d is empty", i)
		}
		v := make(identities.Vector[V], len(vec))
		for j, grp := range vec {
			if len(grp) == 0 {
				return nil, fmt.Errorf("identityfile: vector %d group %d is empty", i, j)
			}
			g := make(identities.Group[V], len(grp))
			for k, tok := range grp {
				id, err := parse(tok)
				if err != nil {
					return nil, fmt.Errorf("identityfile: vector %d group %d token %d: %w", i, j, k, err)
				}
				g[k] = id
			}
			v[j] = g
		}
		vs[i] = v
	}
	return vs, nil
}
