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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/pkg/config"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "rps [guide]",
		Short: "Score a Rock, Paper, Scissors strategy guide",
		Long: heredoc.Doc(`rps scores a Rock, Paper, Scissors strategy guide. Each line
			of the guide is a round: the opponent's move (A, B or C) and
			the player's symbol (X, Y or Z) separated by a space.

			The guide is scored twice. First reading X, Y and Z as the
			player's move, and then reading them as the outcome the player
			should aim for. Both totals are printed, in that order.

			Running rps without a command is the same as running rps score.`),
		Args: cobra.MaximumNArgs(1),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: runScore,
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show rps's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("progress", "p", false, "Show a spinner while scoring")
	root.PersistentFlags().String("config", config.File, "Path to the configuration file")

	root.Flags().StringP("format", "f", "", "Output format of the totals (text or yaml)")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Score())
	root.AddCommand(Explain())
	root.AddCommand(Config())
	root.AddCommand(Completion())

	return root
}
