package protocol

import (
	"strconv"
	"strings"

	"tourney/element"
	"tourney/game"
)

// Field-level conversion helpers. Every required attribute or child that
// is absent, and every value that fails to parse, surfaces as a
// MalformedError so the event loop can drop the message and move on.

func requireAttr(el *element.Element, key string) (string, error) {
	v, ok := el.Attr(key)
	if !ok {
		return "", malformedf("no attribute %q in <%s>", key, el.Name)
	}
	return v, nil
}

func requireChild(el *element.Element, name string) (*element.Element, error) {
	c, ok := el.Child(name)
	if !ok {
		return nil, malformedf("no <%s> in <%s>", name, el.Name)
	}
	return c, nil
}

func intAttr(el *element.Element, key string) (int, error) {
	raw, err := requireAttr(el, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, malformedf("attribute %q of <%s> is not an integer: %q", key, el.Name, raw)
	}
	return n, nil
}

func teamAttr(el *element.Element, key string) (game.Team, error) {
	raw, err := requireAttr(el, key)
	if err != nil {
		return 0, err
	}
	team, err := game.ParseTeam(raw)
	if err != nil {
		return 0, malformedf("attribute %q of <%s>: %v", key, el.Name, err)
	}
	return team, nil
}

func decodeVec(el *element.Element) (game.Vec, error) {
	x, err := intAttr(el, "x")
	if err != nil {
		return game.Vec{}, err
	}
	y, err := intAttr(el, "y")
	if err != nil {
		return game.Vec{}, err
	}
	return game.Vec{X: x, Y: y}, nil
}

func decodePiece(el *element.Element) (game.Piece, error) {
	rawType, err := requireAttr(el, "type")
	if err != nil {
		return game.Piece{}, err
	}
	pieceType, err := game.ParsePieceType(rawType)
	if err != nil {
		return game.Piece{}, malformedf("attribute %q of <%s>: %v", "type", el.Name, err)
	}
	team, err := teamAttr(el, "team")
	if err != nil {
		return game.Piece{}, err
	}
	count, err := intAttr(el, "count")
	if err != nil {
		return game.Piece{}, err
	}
	return game.Piece{Type: pieceType, Team: team, Count: count}, nil
}

func decodeBoard(el *element.Element) (game.Board, error) {
	pieces, err := requireChild(el, "pieces")
	if err != nil {
		return game.Board{}, err
	}
	occupancy := make(map[game.Vec]game.Piece)
	for _, entry := range pieces.ChildrenNamed("entry") {
		coords, err := requireChild(entry, "coords")
		if err != nil {
			return game.Board{}, err
		}
		at, err := decodeVec(coords)
		if err != nil {
			return game.Board{}, err
		}
		pieceEl, err := requireChild(entry, "piece")
		if err != nil {
			return game.Board{}, err
		}
		piece, err := decodePiece(pieceEl)
		if err != nil {
			return game.Board{}, err
		}
		occupancy[at] = piece
	}
	return game.NewBoard(occupancy), nil
}

func decodeMove(el *element.Element) (game.Move, error) {
	fromEl, err := requireChild(el, "from")
	if err != nil {
		return game.Move{}, err
	}
	from, err := decodeVec(fromEl)
	if err != nil {
		return game.Move{}, err
	}
	toEl, err := requireChild(el, "to")
	if err != nil {
		return game.Move{}, err
	}
	to, err := decodeVec(toEl)
	if err != nil {
		return game.Move{}, err
	}
	return game.Move{From: from, To: to}, nil
}

// DecodeState converts a <state> element into a snapshot.
func DecodeState(el *element.Element) (game.State, error) {
	turn, err := intAttr(el, "turn")
	if err != nil {
		return game.State{}, err
	}

	boardEl, err := requireChild(el, "board")
	if err != nil {
		return game.State{}, err
	}
	board, err := decodeBoard(boardEl)
	if err != nil {
		return game.State{}, err
	}

	ambersEl, err := requireChild(el, "ambers")
	if err != nil {
		return game.State{}, err
	}
	ambers := make(map[game.Team]int)
	for _, entry := range ambersEl.ChildrenNamed("entry") {
		teamEl, err := requireChild(entry, "team")
		if err != nil {
			return game.State{}, err
		}
		team, err := game.ParseTeam(strings.TrimSpace(teamEl.Content))
		if err != nil {
			return game.State{}, malformedf("<team> in <%s>: %v", entry.Name, err)
		}
		countEl, err := requireChild(entry, "int")
		if err != nil {
			return game.State{}, err
		}
		count, err := strconv.Atoi(strings.TrimSpace(countEl.Content))
		if err != nil {
			return game.State{}, malformedf("<int> in <%s> is not an integer: %q", entry.Name, countEl.Content)
		}
		ambers[team] = count
	}

	state := game.State{Turn: turn, Board: board, Ambers: ambers}

	// lastMove and startTeam are optional; unparsable values are dropped
	// rather than failing the whole snapshot.
	if moveEl, ok := el.Child("lastMove"); ok {
		if move, err := decodeMove(moveEl); err == nil {
			state.LastMove = &move
		}
	}
	if teamEl, ok := el.Child("startTeam"); ok {
		if team, err := game.ParseTeam(strings.TrimSpace(teamEl.Content)); err == nil {
			state.StartTeam = &team
		}
	}
	return state, nil
}
