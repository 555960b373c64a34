package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var moves = [MoveN]Move{Rock, Paper, Scissors}
var outcomes = [OutcomeN]Outcome{Loss, Draw, Win}

func TestScores(t *testing.T) {
	assert.Equal(t, 1, Rock.Score())
	assert.Equal(t, 2, Paper.Score())
	assert.Equal(t, 3, Scissors.Score())

	assert.Equal(t, 0, Loss.Score())
	assert.Equal(t, 3, Draw.Score())
	assert.Equal(t, 6, Win.Score())
}

func TestBeatsRelation(t *testing.T) {
	assert.Equal(t, Scissors, Rock.Beats())
	assert.Equal(t, Paper, Scissors.Beats())
	assert.Equal(t, Rock, Paper.Beats())

	for _, move := range moves {
		assert.Equal(t, move, move.Beats().LosesTo(), "%s", move)
		assert.Equal(t, move, move.LosesTo().Beats(), "%s", move)
		assert.NotEqual(t, move, move.Beats(), "%s", move)
	}
}

func TestPlay(t *testing.T) {
	tests := []struct {
		player, opponent Move
		want             Outcome
	}{
		{Rock, Rock, Draw},
		{Rock, Paper, Loss},
		{Rock, Scissors, Win},
		{Paper, Rock, Win},
		{Paper, Paper, Draw},
		{Paper, Scissors, Loss},
		{Scissors, Rock, Loss},
		{Scissors, Paper, Win},
		{Scissors, Scissors, Draw},
	}

	for _, tt := range tests {
		got := Play(tt.player, tt.opponent)
		assert.Equal(t, tt.want, got, "Play(%s, %s)", tt.player, tt.opponent)
	}
}

func TestMoveForRoundTrip(t *testing.T) {
	for _, opponent := range moves {
		for _, want := range outcomes {
			move := MoveFor(opponent, want)
			assert.True(t, move.IsValid())
			assert.Equal(t, want, Play(move, opponent), "MoveFor(%s, %s) = %s", opponent, want, move)

			// no other move gives the same outcome
			for _, other := range moves {
				if other != move {
					assert.NotEqual(t, want, Play(other, opponent))
				}
			}
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "Scissors", Scissors.String())
	assert.Equal(t, "?", Move(7).String())
	assert.Equal(t, "Draw", Draw.String())
	assert.Equal(t, "?", Outcome(-1).String())
	assert.False(t, Move(3).IsValid())
	assert.False(t, Outcome(3).IsValid())
}
