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

import "github.com/spf13/pflag"

const flagVerbose = "verbose"

// verbose is bound directly to the --verbose/-v persistent flag: every
// subcommand shares one root invocation, so there is exactly one value per
// process, never per-subcommand state to thread through.
var verbose bool

func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolVarP(&verbose, flagVerbose, "v", false, "log each loaded fixture's path and breadth")
}
