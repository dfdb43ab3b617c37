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

// Package cmd implements the identities command-line tool's subcommands.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Command wraps the active cobra.Command the way the running invocation
// needs it: every subcommand reaches stdout/stderr and its localized
// printer through this, never through bare os.Stdout.
type Command struct {
	*cobra.Command

	root *cobra.Command

	// id correlates every log line this invocation prints, independent of
	// which subcommand ran. Main sets it as the log prefix, so it appears on
	// verbose loading lines and on the error line, and a report mentioning
	// only a UUID can still be matched to output.
	id uuid.UUID

	printer *message.Printer
}

// Printer returns the localized printer for writing user-facing output.
// The tool only ships English messages today; routing output through a
// message.Printer from the start avoids an awkward retrofit if that
// changes.
func (c *Command) Printer() *message.Printer { return c.printer }

// Stdout returns the writer subcommands must use for their primary output.
func (c *Command) Stdout() io.Writer { return c.OutOrStdout() }

// New builds the root "identities" command with every subcommand attached.
func New(args []string) *Command {
	root := &cobra.Command{
		Use:           "identities",
		Short:         "inspect and combine vector-set fixtures",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	c := &Command{
		Command: root,
		root:    root,
		id:      uuid.New(),
		printer: message.NewPrinter(language.English),
	}

	addGlobalFlags(root.PersistentFlags())

	for _, sub := range []*cobra.Command{
		newExpandCmd(c),
		newMergeCmd(c),
		newShowCmd(c),
		newStatsCmd(c),
	} {
		root.AddCommand(sub)
	}

	root.SetArgs(args)
	return c
}

// Main runs the tool with os.Args and returns a process exit code.
func Main() int {
	c := New(os.Args[1:])
	log.SetPrefix(fmt.Sprintf("identities[%s] ", c.id))
	log.SetFlags(0)

	if err := c.Command.Execute(); err != nil {
		log.Printf("error: %v", err)
		return 1
	}
	return 0
}
