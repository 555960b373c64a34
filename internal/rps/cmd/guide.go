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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/internal/util"
	"laptudirm.com/x/rps/pkg/config"
	"laptudirm.com/x/rps/pkg/guide"
)

// loadConfig reads the configuration file named by the --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}

	return config.Load(path)
}

// loadGuide reads the guide named in args, falling back to the configured
// input. The path "-" reads the guide from stdin.
func loadGuide(cmd *cobra.Command, args []string, conf config.Config) ([]string, error) {
	path := conf.Input
	if len(args) > 0 {
		path = args[0]
	}

	progress := conf.Progress
	if flag := cmd.Flag("progress"); flag.Changed {
		progress, _ = cmd.Flags().GetBool("progress")
	}

	if progress {
		util.StartSpinner(cmd.ErrOrStderr(), "scoring "+path)
		defer util.PauseSpinner()
	}

	logrus.WithField("guide", path).Debug("reading strategy guide")
	if path == "-" {
		return guide.Read(cmd.InOrStdin())
	}

	return guide.Load(path)
}
