// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Root is the swiss command with every subcommand registered.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:     "swiss",
		Short:   "Pair and score Swiss-system tournaments",
		Version: version(),
		Args:    cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case cmd.Flag("trace").Changed:
				logrus.SetLevel(logrus.TraceLevel)
			case cmd.Flag("verbose").Changed:
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP("help", "h", false, "Show Help Information")
	flags.BoolP("version", "v", false, "Show Swiss's Version")
	flags.Bool("verbose", false, "Log pairing decisions")
	flags.BoolP("trace", "t", false, "Show Trace Information")

	root.SetVersionTemplate("swiss {{.Version}}\n")

	root.AddCommand(Run(), Simulate(), Rounds(), Config())
	return root
}

// version is the module version the binary was built from, when known.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "v0.0.0-dev"
	}

	return info.Main.Version
}
