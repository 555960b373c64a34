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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the score command.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DefaultInput is the guide read when no path is given.
const DefaultInput = "challenge.in"

var (
	// Directory is the path to the directory where rps looks for its
	// configuration.
	Directory = filepath.Join(xdg.ConfigHome, "rps")

	// File is the path to the configuration file.
	File = filepath.Join(Directory, "config.yaml")
)

type Config struct {
	// Guide to score when none is given on the command line.
	Input string `yaml:"input"`

	// Format of the printed totals, text or yaml.
	Format string `yaml:"format"`

	// Show a spinner while scoring.
	Progress bool `yaml:"progress"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Input:  DefaultInput,
		Format: FormatText,
	}
}

// Load reads the configuration file at path. A missing file is not an
// error: the defaults are returned instead. Unset fields keep their
// default values.
func Load(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("path", path).Debug("no config file, using defaults")
		return config, nil
	} else if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that the configuration's values are supported.
func (config Config) Validate() error {
	switch config.Format {
	case FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q", config.Format)
	}
}

// Dump returns the configuration encoded as yaml.
func (config Config) Dump() ([]byte, error) {
	return yaml.Marshal(config)
}
