package protocol_test

import (
	"testing"

	"tourney/game"
	"tourney/protocol"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DecodeGameResult_builds_full_result_table(t *testing.T) {
	// Arrange: fixture taken from a real end-of-game message.
	el := mustParse(t, `
		<data class="result">
			<definition>
				<fragment name="Siegpunkte">
					<aggregation>SUM</aggregation>
					<relevantForRanking>true</relevantForRanking>
				</fragment>
				<fragment name="Punkte">
					<aggregation>AVERAGE</aggregation>
					<relevantForRanking>true</relevantForRanking>
				</fragment>
			</definition>
			<scores>
				<entry>
					<player name="rad" team="ONE"/>
					<score cause="REGULAR" reason="">
						<part>2</part>
						<part>27</part>
					</score>
				</entry>
				<entry>
					<player name="blues" team="TWO"/>
					<score cause="LEFT" reason="Player left">
						<part>0</part>
						<part>15</part>
					</score>
				</entry>
			</scores>
			<winner team="ONE"/>
		</data>`)

	// Act
	result, err := protocol.DecodeGameResult(&el)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, protocol.ScoreDefinition{Fragments: []protocol.ScoreFragment{
		{Name: "Siegpunkte", Aggregation: protocol.Sum, RelevantForRanking: true},
		{Name: "Punkte", Aggregation: protocol.Average, RelevantForRanking: true},
	}}, result.Definition)

	assert.Equal(t, map[protocol.Player]protocol.Score{
		{Name: "rad", Team: game.TeamOne}:   {Cause: protocol.Regular, Reason: "", Parts: []int{2, 27}},
		{Name: "blues", Team: game.TeamTwo}: {Cause: protocol.LeftCause, Reason: "Player left", Parts: []int{0, 15}},
	}, result.Scores)

	assert.Equal(t, lo.ToPtr(protocol.Player{Team: game.TeamOne}), result.Winner)
	assert.Equal(t, "GameResult (winner: ONE)", result.String())
}

func Test_DecodeGameResult_treats_missing_winner_as_draw(t *testing.T) {
	// Arrange
	el := mustParse(t, `
		<data class="result">
			<definition></definition>
			<scores></scores>
		</data>`)

	// Act
	result, err := protocol.DecodeGameResult(&el)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, result.Winner)
	assert.Equal(t, "GameResult (winner: none)", result.String())
}

func Test_DecodeGameResult_fails_on_unknown_score_cause(t *testing.T) {
	// Arrange
	el := mustParse(t, `
		<data class="result">
			<definition></definition>
			<scores>
				<entry>
					<player team="ONE"/>
					<score cause="COSMIC_RAY" reason=""><part>1</part></score>
				</entry>
			</scores>
		</data>`)

	// Act
	_, err := protocol.DecodeGameResult(&el)

	// Assert
	var malformed *protocol.MalformedError
	assert.ErrorAs(t, err, &malformed)
}

func Test_ParseScoreCause_covers_all_wire_literals(t *testing.T) {
	for _, literal := range []string{"REGULAR", "LEFT", "RULE_VIOLATION", "SOFT_TIMEOUT", "HARD_TIMEOUT", "UNKNOWN"} {
		cause, err := protocol.ParseScoreCause(literal)
		require.NoError(t, err)
		assert.Equal(t, literal, cause.String())
	}
}
