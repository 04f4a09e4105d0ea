package game

import "fmt"

// Size is the side length of the square board.
const Size = 8

// Vec is a board position or offset.
type Vec struct {
	X int
	Y int
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// InBounds reports whether v lies on the board.
func (v Vec) InBounds() bool {
	return v.X >= 0 && v.X < Size && v.Y >= 0 && v.Y < Size
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// PieceType identifies the kind of a (topmost) piece. The wire literals
// are part of the external protocol contract.
type PieceType int

const (
	Herzmuschel PieceType = iota
	Moewe
	Seestern
	Robbe
)

var pieceTypeNames = [...]string{"Herzmuschel", "Moewe", "Seestern", "Robbe"}

func (p PieceType) String() string {
	if p < 0 || int(p) >= len(pieceTypeNames) {
		return fmt.Sprintf("PieceType(%d)", int(p))
	}
	return pieceTypeNames[p]
}

// ParsePieceType converts a wire literal into a PieceType.
func ParsePieceType(s string) (PieceType, error) {
	for i, name := range pieceTypeNames {
		if s == name {
			return PieceType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown piece type %q", s)
}

// Piece is a placeable figure (or stack of figures) on the board.
type Piece struct {
	// Type of the topmost piece.
	Type PieceType
	// Team owning the piece.
	Team Team
	// Count of stacked figures.
	Count int
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s x%d", p.Team, p.Type, p.Count)
}

// Board holds the occupied fields. The zero value is an empty board.
type Board struct {
	pieces map[Vec]Piece
}

// NewBoard builds a board from the given occupancy.
func NewBoard(pieces map[Vec]Piece) Board {
	cp := make(map[Vec]Piece, len(pieces))
	for v, p := range pieces {
		cp[v] = p
	}
	return Board{pieces: cp}
}

// PieceAt returns the piece on the given field.
func (b Board) PieceAt(at Vec) (Piece, bool) {
	p, ok := b.pieces[at]
	return p, ok
}

// Pieces returns a copy of the occupancy.
func (b Board) Pieces() map[Vec]Piece {
	cp := make(map[Vec]Piece, len(b.pieces))
	for v, p := range b.pieces {
		cp[v] = p
	}
	return cp
}

// PositionsOf returns the occupied fields of one team.
func (b Board) PositionsOf(team Team) []Vec {
	var out []Vec
	for v, p := range b.pieces {
		if p.Team == team {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of occupied fields.
func (b Board) Len() int {
	return len(b.pieces)
}
