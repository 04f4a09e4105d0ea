package protocol

import (
	"strconv"

	"tourney/element"
	"tourney/game"
)

// Request is an outbound message to the server. The set is closed: the
// session state machine can only construct these shapes, so encoding is
// unconditional.
type Request interface {
	isRequest()
}

// Join enters the matchmaking queue.
type Join struct{}

func (Join) isRequest() {}

// JoinPrepared joins a prearranged game using a reservation code.
type JoinPrepared struct {
	ReservationCode string
}

func (JoinPrepared) isRequest() {}

// RoomRequest answers a move request in a room.
type RoomRequest struct {
	Room string
	Move game.Move
}

func (RoomRequest) isRequest() {}

// EncodeRequest converts a request into its document tree.
func EncodeRequest(req Request) element.Element {
	switch r := req.(type) {
	case JoinPrepared:
		return element.Element{
			Name:  "joinPrepared",
			Attrs: map[string]string{"reservationCode": r.ReservationCode},
		}
	case RoomRequest:
		return element.Element{
			Name:  "room",
			Attrs: map[string]string{"roomId": r.Room},
			Children: []element.Element{{
				Name:  "data",
				Attrs: map[string]string{"class": "move"},
				Children: []element.Element{
					encodeVec("from", r.Move.From),
					encodeVec("to", r.Move.To),
				},
			}},
		}
	default:
		return element.Element{Name: "join"}
	}
}

// CloseConnection is the notice written right before the envelope is
// closed at session end.
func CloseConnection() element.Element {
	return element.Element{Name: "sc.protocol.CloseConnection"}
}

func encodeVec(name string, v game.Vec) element.Element {
	return element.Element{
		Name: name,
		Attrs: map[string]string{
			"x": strconv.Itoa(v.X),
			"y": strconv.Itoa(v.Y),
		},
	}
}
