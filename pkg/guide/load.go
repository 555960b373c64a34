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

// Package guide scores a Rock, Paper, Scissors strategy guide. Every line
// of a guide is a round made of an opponent symbol and a player symbol,
// and the guide is scored under two different readings of the player's
// symbol: as the move to throw, or as the outcome to aim for.
package guide

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrUnavailable is returned when a guide can't be read.
	ErrUnavailable = errors.New("guide unavailable")

	// ErrMalformedRound is returned for lines which are not of the
	// form "<opponent> <player>".
	ErrMalformedRound = errors.New("malformed round")

	// ErrUnknownSymbol is returned for symbols outside the guide's alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Load reads the guide at the given path and returns its lines.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	lines := split(string(data))
	logrus.WithField("path", path).Debugf("loaded guide with %d lines", len(lines))
	return lines, nil
}

// Read reads a whole guide from the given reader and returns its lines.
func Read(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return split(string(data)), nil
}

func split(data string) []string {
	if data == "" {
		return nil
	}

	data = strings.ReplaceAll(data, "\r\n", "\n")
	return strings.Split(data, "\n")
}
