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

package guide

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rps/pkg/game"
)

// ScoreByMove scores a round reading the player's symbol as the move to
// throw: the move's score plus the score of the resulting outcome.
func ScoreByMove(round Round) (int, error) {
	opponent, err := OpponentMove(round.Opponent)
	if err != nil {
		return 0, err
	}

	player, err := PlayerMove(round.Player)
	if err != nil {
		return 0, err
	}

	return player.Score() + game.Play(player, opponent).Score(), nil
}

// ScoreByOutcome scores a round reading the player's symbol as the outcome
// to aim for: the outcome's score plus the score of the move reaching it.
func ScoreByOutcome(round Round) (int, error) {
	opponent, err := OpponentMove(round.Opponent)
	if err != nil {
		return 0, err
	}

	want, err := DesiredOutcome(round.Player)
	if err != nil {
		return 0, err
	}

	return want.Score() + game.MoveFor(opponent, want).Score(), nil
}

// Totals are the scores of a whole guide under both readings.
type Totals struct {
	ByMove    int `yaml:"by-move"`
	ByOutcome int `yaml:"by-outcome"`
}

// String returns both totals separated by a space.
func (totals Totals) String() string {
	return fmt.Sprintf("%d %d", totals.ByMove, totals.ByOutcome)
}

// Entry is the detailed scoring of a single round.
type Entry struct {
	Round Round

	// player's symbol read as a move
	Move        game.Move
	MoveOutcome game.Outcome
	MoveScore   int

	// player's symbol read as an outcome
	Outcome      game.Outcome
	OutcomeMove  game.Move
	OutcomeScore int
}

// Tally scores every round in the given lines and returns the totals.
// Blank lines are skipped. A malformed line fails the whole guide.
func Tally(lines []string) (Totals, error) {
	var totals Totals
	err := walk(lines, func(entry Entry) {
		totals.ByMove += entry.MoveScore
		totals.ByOutcome += entry.OutcomeScore
	})
	if err != nil {
		return Totals{}, err
	}

	return totals, nil
}

// Explain is like Tally but also returns the scoring of each round.
func Explain(lines []string) ([]Entry, Totals, error) {
	var entries []Entry
	var totals Totals
	err := walk(lines, func(entry Entry) {
		entries = append(entries, entry)
		totals.ByMove += entry.MoveScore
		totals.ByOutcome += entry.OutcomeScore
	})
	if err != nil {
		return nil, Totals{}, err
	}

	return entries, totals, nil
}

func walk(lines []string, fn func(Entry)) error {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		round, err := ParseRound(line, i+1)
		if err != nil {
			return err
		}

		entry, err := score(round)
		if err != nil {
			return fmt.Errorf("line %d: %w", round.Line, err)
		}

		logrus.WithFields(logrus.Fields{
			"line":       round.Line,
			"round":      round.String(),
			"by-move":    entry.MoveScore,
			"by-outcome": entry.OutcomeScore,
		}).Trace("scored round")

		fn(entry)
	}

	return nil
}

func score(round Round) (Entry, error) {
	entry := Entry{Round: round}

	var err error
	if entry.MoveScore, err = ScoreByMove(round); err != nil {
		return Entry{}, err
	}

	if entry.OutcomeScore, err = ScoreByOutcome(round); err != nil {
		return Entry{}, err
	}

	// both symbols are known to be valid from here on
	opponent, _ := OpponentMove(round.Opponent)
	entry.Move, _ = PlayerMove(round.Player)
	entry.Outcome, _ = DesiredOutcome(round.Player)

	entry.MoveOutcome = game.Play(entry.Move, opponent)
	entry.OutcomeMove = game.MoveFor(opponent, entry.Outcome)
	return entry, nil
}
