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
)

func newShowCmd(c *Command) *cobra.Command {
	var dag bool

	sc := &cobra.Command{
		Use:   "show <file>",
		Short: "print a fixture's canonical {[..],[..]} literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := loadFile(args[0])
			if err != nil {
				return err
			}
			out := id.String()
			if dag {
				out = id.ShowDAG()
			}
			_, err = c.Printer().Fprintln(c.Stdout(), out)
			return err
		},
	}
	sc.Flags().BoolVar(&dag, "dag", false, "print the node-list DAG form instead of the vector-set literal")
	return sc
}
