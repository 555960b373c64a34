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
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/rps/pkg/config"
	"laptudirm.com/x/rps/pkg/guide"
)

// rps score
func Score() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [guide]",
		Short: "Print the total score of a strategy guide",
		Long: heredoc.Doc(`score prints the total score of the given strategy guide
			under both of its readings: first with X, Y and Z as the move
			to throw, then with X, Y and Z as the outcome to aim for.

			If no guide is given, the input from the configuration file is
			used, which defaults to challenge.in in the current directory.
			Use - to read the guide from stdin. Blank lines are skipped.`),
		Args: cobra.MaximumNArgs(1),
		RunE: runScore,
	}

	cmd.Flags().StringP("format", "f", "", "Output format of the totals (text or yaml)")

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if format, _ := cmd.Flags().GetString("format"); format != "" {
		conf.Format = format
	}

	if err := conf.Validate(); err != nil {
		return err
	}

	lines, err := loadGuide(cmd, args, conf)
	if err != nil {
		return err
	}

	totals, err := guide.Tally(lines)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch conf.Format {
	case config.FormatYAML:
		data, err := yaml.Marshal(totals)
		if err != nil {
			return err
		}

		_, err = out.Write(data)
		return err

	default:
		_, err = fmt.Fprintln(out, totals)
		return err
	}
}
