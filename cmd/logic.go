package main

import (
	"log/slog"
	"math/rand"

	"tourney/client"
	"tourney/game"
)

// randomLogic is a placeholder strategy: it moves a random own piece to a
// random neighboring field. It knows nothing about move legality; the
// server rejects bad moves and that is acceptable for a smoke-test bot.
type randomLogic struct {
	client.BaseDelegate
	log *slog.Logger
}

func newRandomLogic(log *slog.Logger) *randomLogic {
	return &randomLogic{log: log}
}

var directions = []game.Vec{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

func (l *randomLogic) OnWelcome(team game.Team) {
	l.log.Info("Playing as", "team", team.String())
}

func (l *randomLogic) RequestMove(state game.State, team game.Team) game.Move {
	positions := state.Board.PositionsOf(team)
	if len(positions) == 0 {
		l.log.Warn("No own pieces on the board, passing a null move")
		return game.Move{}
	}

	for range 64 {
		from := positions[rand.Intn(len(positions))]
		to := from.Add(directions[rand.Intn(len(directions))])
		if to.InBounds() {
			move := game.Move{From: from, To: to}
			l.log.Info("Chose move", "move", move.String(), "turn", state.Turn)
			return move
		}
	}
	return game.Move{From: positions[0], To: positions[0]}
}
