package game

import "fmt"

// Move transfers the piece on From to To.
type Move struct {
	From Vec
	To   Vec
}

func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", m.From, m.To)
}

// State is a snapshot of the game at one point in time. Snapshots are
// replaced wholesale when the server sends a new one; they are never
// mutated in place.
type State struct {
	// Turn counts moves played so far, starting at zero.
	Turn int
	// Board is the current occupancy.
	Board Board
	// Ambers holds the collected ambers per team.
	Ambers map[Team]int
	// LastMove is the most recent move, if any.
	LastMove *Move
	// StartTeam is the team that moved first, if known.
	StartTeam *Team
}

// CurrentTeam derives the team to move from the turn counter and the
// starting team. It is not derivable when the starting team is unknown.
func (s *State) CurrentTeam() (Team, bool) {
	if s.StartTeam == nil {
		return 0, false
	}
	if s.Turn%2 == 0 {
		return *s.StartTeam, true
	}
	return s.StartTeam.Opponent(), true
}
