package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"tourney/element"
	"tourney/game"
)

// Player identifies a participant in the result table. The name is empty
// when the server omits it (the winner entry usually does).
type Player struct {
	Name string
	Team game.Team
}

func (p Player) String() string {
	if p.Name == "" {
		return p.Team.String()
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Team)
}

// ScoreAggregation describes how a score fragment is combined across
// games when the server ranks players.
type ScoreAggregation int

const (
	Sum ScoreAggregation = iota
	Average
)

func (a ScoreAggregation) String() string {
	if a == Average {
		return "AVERAGE"
	}
	return "SUM"
}

// ParseScoreAggregation converts a wire literal into a ScoreAggregation.
func ParseScoreAggregation(s string) (ScoreAggregation, error) {
	switch s {
	case "SUM":
		return Sum, nil
	case "AVERAGE":
		return Average, nil
	default:
		return 0, fmt.Errorf("unknown aggregation %q", s)
	}
}

// ScoreCause explains how a player's score came about.
type ScoreCause int

const (
	Regular ScoreCause = iota
	LeftCause
	RuleViolation
	SoftTimeout
	HardTimeout
	UnknownCause
)

var scoreCauseNames = [...]string{"REGULAR", "LEFT", "RULE_VIOLATION", "SOFT_TIMEOUT", "HARD_TIMEOUT", "UNKNOWN"}

func (c ScoreCause) String() string {
	if c < 0 || int(c) >= len(scoreCauseNames) {
		return "UNKNOWN"
	}
	return scoreCauseNames[c]
}

// ParseScoreCause converts a wire literal into a ScoreCause.
func ParseScoreCause(s string) (ScoreCause, error) {
	for i, name := range scoreCauseNames {
		if s == name {
			return ScoreCause(i), nil
		}
	}
	return 0, fmt.Errorf("unknown score cause %q", s)
}

// Score is one player's row in the result table. The meaning of each part
// is given by the definition fragment at the same index.
type Score struct {
	Cause  ScoreCause
	Reason string
	Parts  []int
}

// ScoreFragment describes one column of the result table.
type ScoreFragment struct {
	Name               string
	Aggregation        ScoreAggregation
	RelevantForRanking bool
}

// ScoreDefinition lists the columns of the result table.
type ScoreDefinition struct {
	Fragments []ScoreFragment
}

// GameResult is the final outcome of a game as reported by the server.
// Scoring aggregation semantics are opaque to the client; the values are
// carried through for the caller.
type GameResult struct {
	Definition ScoreDefinition
	Scores     map[Player]Score
	Winner     *Player
}

func (r *GameResult) String() string {
	winner := "none"
	if r.Winner != nil {
		winner = r.Winner.Team.String()
	}
	return fmt.Sprintf("GameResult (winner: %s)", winner)
}

func decodePlayer(el *element.Element) (Player, error) {
	team, err := teamAttr(el, "team")
	if err != nil {
		return Player{}, err
	}
	name, _ := el.Attr("name")
	return Player{Name: name, Team: team}, nil
}

func decodeScore(el *element.Element) (Score, error) {
	rawCause, err := requireAttr(el, "cause")
	if err != nil {
		return Score{}, err
	}
	cause, err := ParseScoreCause(rawCause)
	if err != nil {
		return Score{}, malformedf("attribute %q of <%s>: %v", "cause", el.Name, err)
	}
	reason, err := requireAttr(el, "reason")
	if err != nil {
		return Score{}, err
	}
	var parts []int
	for _, partEl := range el.ChildrenNamed("part") {
		part, err := strconv.Atoi(strings.TrimSpace(partEl.Content))
		if err != nil {
			return Score{}, malformedf("<part> in <%s> is not an integer: %q", el.Name, partEl.Content)
		}
		parts = append(parts, part)
	}
	return Score{Cause: cause, Reason: reason, Parts: parts}, nil
}

func decodeScoreDefinition(el *element.Element) (ScoreDefinition, error) {
	var fragments []ScoreFragment
	for _, fragEl := range el.ChildrenNamed("fragment") {
		name, err := requireAttr(fragEl, "name")
		if err != nil {
			return ScoreDefinition{}, err
		}
		aggEl, err := requireChild(fragEl, "aggregation")
		if err != nil {
			return ScoreDefinition{}, err
		}
		agg, err := ParseScoreAggregation(strings.TrimSpace(aggEl.Content))
		if err != nil {
			return ScoreDefinition{}, malformedf("<aggregation> in <%s>: %v", fragEl.Name, err)
		}
		relevantEl, err := requireChild(fragEl, "relevantForRanking")
		if err != nil {
			return ScoreDefinition{}, err
		}
		relevant, err := strconv.ParseBool(strings.TrimSpace(relevantEl.Content))
		if err != nil {
			return ScoreDefinition{}, malformedf("<relevantForRanking> in <%s> is not a bool: %q", fragEl.Name, relevantEl.Content)
		}
		fragments = append(fragments, ScoreFragment{Name: name, Aggregation: agg, RelevantForRanking: relevant})
	}
	return ScoreDefinition{Fragments: fragments}, nil
}

// DecodeGameResult converts a result payload element.
func DecodeGameResult(el *element.Element) (GameResult, error) {
	defEl, err := requireChild(el, "definition")
	if err != nil {
		return GameResult{}, err
	}
	definition, err := decodeScoreDefinition(defEl)
	if err != nil {
		return GameResult{}, err
	}

	scoresEl, err := requireChild(el, "scores")
	if err != nil {
		return GameResult{}, err
	}
	scores := make(map[Player]Score)
	for _, entry := range scoresEl.ChildrenNamed("entry") {
		playerEl, err := requireChild(entry, "player")
		if err != nil {
			return GameResult{}, err
		}
		player, err := decodePlayer(playerEl)
		if err != nil {
			return GameResult{}, err
		}
		scoreEl, err := requireChild(entry, "score")
		if err != nil {
			return GameResult{}, err
		}
		score, err := decodeScore(scoreEl)
		if err != nil {
			return GameResult{}, err
		}
		scores[player] = score
	}

	result := GameResult{Definition: definition, Scores: scores}

	// The winner entry is optional; a draw has none.
	if winnerEl, ok := el.Child("winner"); ok {
		if winner, err := decodePlayer(winnerEl); err == nil {
			result.Winner = &winner
		}
	}
	return result, nil
}
