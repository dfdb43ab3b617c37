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

func newStatsCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "print breadth, depth and storageSize for a fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := loadFile(args[0])
			if err != nil {
				return err
			}
			_, err = c.Printer().Fprintf(c.Stdout(), "breadth=%d depth=%d storageSize=%d\n",
				id.Breadth(), id.Depth(), id.StorageSize())
			return err
		},
	}
}
