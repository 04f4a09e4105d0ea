// Package protocol maps generic document trees onto typed protocol
// messages and back. The concrete tag and attribute names in this package
// are a fixed contract with the remote peer and must not be changed.
package protocol

import (
	"fmt"

	"tourney/element"
	"tourney/game"
)

// Envelope is the outermost tag left open for the whole session.
const Envelope = "protocol"

// Event is an inbound message from the server.
type Event interface {
	// RoomID returns the game instance the event belongs to. It is empty
	// for events that are not correlated to a room.
	RoomID() string
}

// Joined announces that a room has been entered.
type Joined struct {
	Room string
}

func (e Joined) RoomID() string { return e.Room }

// Left announces that the room has been torn down and the session should
// close.
type Left struct {
	Room string
}

func (e Left) RoomID() string { return e.Room }

// RoomMessage carries a game payload addressed to a room.
type RoomMessage struct {
	Room    string
	Payload Payload
}

func (e RoomMessage) RoomID() string { return e.Room }

// Payload is the data of a room message.
type Payload interface {
	fmt.Stringer
	isPayload()
}

// Welcome assigns the client its team.
type Welcome struct {
	Team game.Team
}

func (Welcome) isPayload() {}

func (p Welcome) String() string { return fmt.Sprintf("Welcome (team: %s)", p.Team) }

// Memento carries a full game state snapshot.
type Memento struct {
	State game.State
}

func (Memento) isPayload() {}

func (p Memento) String() string { return fmt.Sprintf("Memento (turn: %d)", p.State.Turn) }

// MoveRequest asks the client to answer with a move.
type MoveRequest struct{}

func (MoveRequest) isPayload() {}

func (MoveRequest) String() string { return "MoveRequest" }

// Result carries the final game outcome.
type Result struct {
	Result GameResult
}

func (Result) isPayload() {}

func (p Result) String() string { return p.Result.String() }

// DecodeEvent converts a top-level document into a typed event.
// Unrecognized tags and discriminator values yield an
// UnknownElementError carrying the raw element; a payload with the
// discriminator "error" yields a ServerError with the peer's message.
func DecodeEvent(el *element.Element) (Event, error) {
	switch el.Name {
	case "joined":
		room, err := requireAttr(el, "roomId")
		if err != nil {
			return nil, err
		}
		return Joined{Room: room}, nil

	case "left":
		room, err := requireAttr(el, "roomId")
		if err != nil {
			return nil, err
		}
		return Left{Room: room}, nil

	case "room":
		room, err := requireAttr(el, "roomId")
		if err != nil {
			return nil, err
		}
		data, err := requireChild(el, "data")
		if err != nil {
			return nil, err
		}
		payload, err := decodePayload(data)
		if err != nil {
			return nil, err
		}
		return RoomMessage{Room: room, Payload: payload}, nil

	default:
		return nil, &UnknownElementError{Element: *el}
	}
}

func decodePayload(data *element.Element) (Payload, error) {
	class, err := requireAttr(data, "class")
	if err != nil {
		return nil, err
	}

	switch class {
	case "welcomeMessage":
		team, err := teamAttr(data, "color")
		if err != nil {
			return nil, err
		}
		return Welcome{Team: team}, nil

	case "memento":
		stateEl, err := requireChild(data, "state")
		if err != nil {
			return nil, err
		}
		state, err := DecodeState(stateEl)
		if err != nil {
			return nil, err
		}
		return Memento{State: state}, nil

	case "moveRequest":
		return MoveRequest{}, nil

	case "result":
		result, err := DecodeGameResult(data)
		if err != nil {
			return nil, err
		}
		return Result{Result: result}, nil

	case "error":
		message, err := requireAttr(data, "message")
		if err != nil {
			return nil, err
		}
		return nil, &ServerError{Message: message}

	default:
		return nil, &UnknownElementError{Element: *data}
	}
}
