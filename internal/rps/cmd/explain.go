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
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/pkg/guide"
)

func Explain() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [guide]",
		Short: "Show how every round of a strategy guide is scored",
		Long: heredoc.Doc(`explain prints a table with one row for every round of the
			strategy guide. The first group of columns reads the player's
			symbol as a move: the move, the round's result and its score.
			The second group reads it as an outcome: the outcome, the move
			needed to reach it and its score.`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			lines, err := loadGuide(cmd, args, conf)
			if err != nil {
				return err
			}

			entries, totals, err := guide.Explain(lines)
			if err != nil {
				return err
			}

			return guide.Report(cmd.OutOrStdout(), entries, totals)
		},
	}
}
