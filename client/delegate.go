//go:generate go run go.uber.org/mock/mockgen -source=delegate.go -destination=mocks/mock_delegate.go -package=mocks
package client

import (
	"tourney/game"
	"tourney/protocol"
)

// Delegate implements the player's behaviour, usually employing some
// custom move selection strategy. Only RequestMove carries the game
// logic; embed BaseDelegate to default the notifications to no-ops.
type Delegate interface {
	// OnWelcome is invoked when the server assigns the client its team.
	OnWelcome(team game.Team)
	// OnStateUpdate is invoked whenever a new game state arrives.
	OnStateUpdate(state game.State)
	// OnGameEnd is invoked when the game ends.
	OnGameEnd(result protocol.GameResult, team game.Team)
	// RequestMove must choose a move for the given state and team. It is
	// called synchronously: the session reads nothing further until it
	// returns, and the remote peer enforces its own turn-time budget.
	RequestMove(state game.State, team game.Team) game.Move
}

// BaseDelegate provides no-op notification handlers.
type BaseDelegate struct{}

func (BaseDelegate) OnWelcome(game.Team) {}

func (BaseDelegate) OnStateUpdate(game.State) {}

func (BaseDelegate) OnGameEnd(protocol.GameResult, game.Team) {}
