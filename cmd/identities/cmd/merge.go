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
	"github.com/spf13/cobra"

	"identities.dev/go/encoding/identityfile"
	"identities.dev/go/identities"
)

func newMergeCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <file>...",
		Short: "merge two or more vector-set fixtures and print the union",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc := identities.Empty[token]()
			for _, path := range args {
				id, err := loadFile(path)
				if err != nil {
					return err
				}
				acc = acc.Merge(id)
			}
			out, err := identityfile.EncodeYAML(acc.Expanded(), showToken)
			if err != nil {
				return err
			}
			_, err = c.Stdout().Write(out)
			return err
		},
	}
}
