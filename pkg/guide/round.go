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

	"laptudirm.com/x/rps/pkg/game"
)

// Round is a single line of a strategy guide.
type Round struct {
	Line int // 1-based line number in the guide

	Opponent byte // one of A, B, C
	Player   byte // one of X, Y, Z
}

// String returns the round as it appears in the guide.
func (round Round) String() string {
	return string([]byte{round.Opponent, ' ', round.Player})
}

// ParseRound parses the n-th line of a guide into a Round.
func ParseRound(line string, n int) (Round, error) {
	line = strings.TrimSpace(line)
	if len(line) != 3 || line[1] != ' ' {
		return Round{}, fmt.Errorf("line %d: %w: %q", n, ErrMalformedRound, line)
	}

	return Round{
		Line:     n,
		Opponent: line[0],
		Player:   line[2],
	}, nil
}

// OpponentMove decodes the opponent's symbol.
func OpponentMove(symbol byte) (game.Move, error) {
	switch symbol {
	case 'A':
		return game.Rock, nil
	case 'B':
		return game.Paper, nil
	case 'C':
		return game.Scissors, nil
	default:
		return 0, fmt.Errorf("%w: opponent %q", ErrUnknownSymbol, symbol)
	}
}

// PlayerMove decodes the player's symbol as the move to throw.
func PlayerMove(symbol byte) (game.Move, error) {
	switch symbol {
	case 'X':
		return game.Rock, nil
	case 'Y':
		return game.Paper, nil
	case 'Z':
		return game.Scissors, nil
	default:
		return 0, fmt.Errorf("%w: player %q", ErrUnknownSymbol, symbol)
	}
}

// DesiredOutcome decodes the player's symbol as the outcome to aim for.
func DesiredOutcome(symbol byte) (game.Outcome, error) {
	switch symbol {
	case 'X':
		return game.Loss, nil
	case 'Y':
		return game.Draw, nil
	case 'Z':
		return game.Win, nil
	default:
		return 0, fmt.Errorf("%w: player %q", ErrUnknownSymbol, symbol)
	}
}
