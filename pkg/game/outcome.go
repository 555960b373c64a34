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

package game

// Outcome represents the result of a round from the player's perspective.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

// OutcomeN is the number of different outcomes.
const OutcomeN = 3

var outcomeScore = [OutcomeN]int{
	Loss: 0,
	Draw: 3,
	Win:  6,
}

// Score returns the points awarded for the given Outcome.
func (outcome Outcome) Score() int {
	return outcomeScore[outcome]
}

// IsValid reports whether the Outcome is one of Loss, Draw or Win.
func (outcome Outcome) IsValid() bool {
	return outcome >= Loss && outcome < OutcomeN
}

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case Win:
		return "Win"
	case Draw:
		return "Draw"
	case Loss:
		return "Loss"
	default:
		return "?"
	}
}

// Play returns the Outcome of a round in which the player threw player
// and their opponent threw opponent.
func Play(player, opponent Move) Outcome {
	switch {
	case player == opponent:
		return Draw
	case player.Beats() == opponent:
		return Win
	default:
		return Loss
	}
}

// MoveFor returns the unique Move which, thrown against opponent, ends
// the round with the wanted Outcome.
func MoveFor(opponent Move, want Outcome) Move {
	switch want {
	case Win:
		return opponent.LosesTo()
	case Loss:
		return opponent.Beats()
	default:
		return opponent
	}
}
