package game

import "fmt"

// Team identifies one of the two players. The wire literals "ONE" and
// "TWO" are part of the external protocol contract.
type Team int

const (
	TeamOne Team = iota
	TeamTwo
)

func (t Team) String() string {
	if t == TeamTwo {
		return "TWO"
	}
	return "ONE"
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamOne {
		return TeamTwo
	}
	return TeamOne
}

// ParseTeam converts a wire literal into a Team.
func ParseTeam(s string) (Team, error) {
	switch s {
	case "ONE":
		return TeamOne, nil
	case "TWO":
		return TeamTwo, nil
	default:
		return 0, fmt.Errorf("unknown team %q", s)
	}
}
