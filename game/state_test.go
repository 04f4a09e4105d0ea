package game_test

import (
	"testing"

	"tourney/game"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseTeam_accepts_only_wire_literals(t *testing.T) {
	one, err := game.ParseTeam("ONE")
	require.NoError(t, err)
	assert.Equal(t, game.TeamOne, one)

	two, err := game.ParseTeam("TWO")
	require.NoError(t, err)
	assert.Equal(t, game.TeamTwo, two)

	_, err = game.ParseTeam("THREE")
	assert.Error(t, err)
}

func Test_Opponent_flips_between_the_two_teams(t *testing.T) {
	assert.Equal(t, game.TeamTwo, game.TeamOne.Opponent())
	assert.Equal(t, game.TeamOne, game.TeamTwo.Opponent())
}

func Test_CurrentTeam_alternates_from_the_start_team(t *testing.T) {
	// Arrange
	state := game.State{Turn: 0, StartTeam: lo.ToPtr(game.TeamTwo)}

	// Act & Assert: even turns belong to the start team, odd turns to
	// the opponent.
	team, ok := state.CurrentTeam()
	require.True(t, ok)
	assert.Equal(t, game.TeamTwo, team)

	state.Turn = 3
	team, ok = state.CurrentTeam()
	require.True(t, ok)
	assert.Equal(t, game.TeamOne, team)
}

func Test_CurrentTeam_is_underivable_without_a_start_team(t *testing.T) {
	// Arrange
	state := game.State{Turn: 4}

	// Act
	_, ok := state.CurrentTeam()

	// Assert
	assert.False(t, ok)
}

func Test_PositionsOf_filters_by_team(t *testing.T) {
	// Arrange
	board := game.NewBoard(map[game.Vec]game.Piece{
		{X: 0, Y: 0}: {Type: game.Herzmuschel, Team: game.TeamOne, Count: 1},
		{X: 7, Y: 7}: {Type: game.Robbe, Team: game.TeamTwo, Count: 2},
	})

	// Act
	positions := board.PositionsOf(game.TeamTwo)

	// Assert
	require.Len(t, positions, 1)
	assert.Equal(t, game.Vec{X: 7, Y: 7}, positions[0])
	assert.Equal(t, 2, board.Len())
}
