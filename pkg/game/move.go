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

// Package game implements the moves and outcomes of a single round of
// Rock, Paper, Scissors, along with the cyclic relation between moves.
package game

// Move represents one of the three shapes a player can throw.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// MoveN is the number of different moves.
const MoveN = 3

// moveScore maps each Move to the points it is worth when played.
var moveScore = [MoveN]int{
	Rock:     1,
	Paper:    2,
	Scissors: 3,
}

// beats maps each Move to the Move it defeats.
var beats = [MoveN]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// losesTo maps each Move to the Move which defeats it.
var losesTo = [MoveN]Move{
	Rock:     Paper,
	Paper:    Scissors,
	Scissors: Rock,
}

// Score returns the points awarded for playing the given Move.
func (move Move) Score() int {
	return moveScore[move]
}

// Beats returns the Move which is defeated by the given Move.
func (move Move) Beats() Move {
	return beats[move]
}

// LosesTo returns the Move which defeats the given Move.
func (move Move) LosesTo() Move {
	return losesTo[move]
}

// IsValid reports whether the Move is one of Rock, Paper or Scissors.
func (move Move) IsValid() bool {
	return move >= Rock && move < MoveN
}

// String returns a string representation of the given Move.
func (move Move) String() string {
	switch move {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "?"
	}
}
