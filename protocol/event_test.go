package protocol_test

import (
	"testing"

	"tourney/element"
	"tourney/game"
	"tourney/protocol"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) element.Element {
	t.Helper()
	el, err := element.Parse(s)
	require.NoError(t, err)
	return el
}

func Test_DecodeEvent_maps_joined_and_left_by_tag_name(t *testing.T) {
	// Arrange
	joined := mustParse(t, `<joined roomId="abc"/>`)
	left := mustParse(t, `<left roomId="abc"/>`)

	// Act
	joinedEvent, err1 := protocol.DecodeEvent(&joined)
	leftEvent, err2 := protocol.DecodeEvent(&left)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, protocol.Joined{Room: "abc"}, joinedEvent)
	assert.Equal(t, protocol.Left{Room: "abc"}, leftEvent)
}

func Test_DecodeEvent_selects_welcome_payload_by_discriminator(t *testing.T) {
	// Arrange
	el := mustParse(t, `<room roomId="r"><data class="welcomeMessage" color="TWO"/></room>`)

	// Act
	event, err := protocol.DecodeEvent(&el)

	// Assert
	require.NoError(t, err)
	msg, ok := event.(protocol.RoomMessage)
	require.True(t, ok)
	assert.Equal(t, "r", msg.RoomID())
	assert.Equal(t, protocol.Welcome{Team: game.TeamTwo}, msg.Payload)
}

func Test_DecodeEvent_decodes_memento_state_snapshot(t *testing.T) {
	// Arrange: fixture mirrors the server's memento shape.
	el := mustParse(t, `
		<room roomId="r">
			<data class="memento">
				<state turn="3">
					<board>
						<pieces>
							<entry>
								<coords x="2" y="5"/>
								<piece type="Herzmuschel" team="TWO" count="1"/>
							</entry>
						</pieces>
					</board>
					<ambers>
						<entry><team>ONE</team><int>1</int></entry>
						<entry><team>TWO</team><int>0</int></entry>
					</ambers>
					<startTeam>ONE</startTeam>
				</state>
			</data>
		</room>`)

	// Act
	event, err := protocol.DecodeEvent(&el)

	// Assert
	require.NoError(t, err)
	memento, ok := event.(protocol.RoomMessage).Payload.(protocol.Memento)
	require.True(t, ok)

	expected := game.State{
		Turn: 3,
		Board: game.NewBoard(map[game.Vec]game.Piece{
			{X: 2, Y: 5}: {Type: game.Herzmuschel, Team: game.TeamTwo, Count: 1},
		}),
		Ambers:    map[game.Team]int{game.TeamOne: 1, game.TeamTwo: 0},
		StartTeam: lo.ToPtr(game.TeamOne),
	}
	assert.Equal(t, expected, memento.State)

	team, ok := memento.State.CurrentTeam()
	require.True(t, ok)
	assert.Equal(t, game.TeamTwo, team)
}

func Test_DecodeEvent_keeps_last_move_when_present(t *testing.T) {
	// Arrange
	el := mustParse(t, `
		<room roomId="r">
			<data class="memento">
				<state turn="1">
					<board><pieces></pieces></board>
					<ambers></ambers>
					<lastMove><from x="0" y="3"/><to x="1" y="3"/></lastMove>
				</state>
			</data>
		</room>`)

	// Act
	event, err := protocol.DecodeEvent(&el)

	// Assert
	require.NoError(t, err)
	memento := event.(protocol.RoomMessage).Payload.(protocol.Memento)
	require.NotNil(t, memento.State.LastMove)
	assert.Equal(t, game.Move{From: game.Vec{X: 0, Y: 3}, To: game.Vec{X: 1, Y: 3}}, *memento.State.LastMove)
	assert.Nil(t, memento.State.StartTeam)
}

func Test_DecodeEvent_maps_move_request(t *testing.T) {
	// Arrange
	el := mustParse(t, `<room roomId="r"><data class="moveRequest"/></room>`)

	// Act
	event, err := protocol.DecodeEvent(&el)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, protocol.MoveRequest{}, event.(protocol.RoomMessage).Payload)
}

func Test_DecodeEvent_surfaces_server_signaled_errors(t *testing.T) {
	// Arrange
	el := mustParse(t, `<room roomId="r"><data class="error" message="rule violated"/></room>`)

	// Act
	_, err := protocol.DecodeEvent(&el)

	// Assert
	var serverErr *protocol.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "rule violated", serverErr.Message)
}

func Test_DecodeEvent_retains_raw_element_for_unknown_discriminator(t *testing.T) {
	// Arrange
	el := mustParse(t, `<room roomId="r"><data class="paused" turn="4"/></room>`)

	// Act
	_, err := protocol.DecodeEvent(&el)

	// Assert
	var unknown *protocol.UnknownElementError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "data", unknown.Element.Name)
	assert.Equal(t, "paused", unknown.Element.Attrs["class"])
}

func Test_DecodeEvent_rejects_unknown_top_level_tag(t *testing.T) {
	// Arrange
	el := mustParse(t, `<ping/>`)

	// Act
	_, err := protocol.DecodeEvent(&el)

	// Assert
	var unknown *protocol.UnknownElementError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ping", unknown.Element.Name)
}

func Test_DecodeEvent_reports_missing_required_fields_as_malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "room without id", input: `<room><data class="moveRequest"/></room>`},
		{name: "room without data", input: `<room roomId="r"/>`},
		{name: "welcome without color", input: `<room roomId="r"><data class="welcomeMessage"/></room>`},
		{name: "memento without state", input: `<room roomId="r"><data class="memento"/></room>`},
		{name: "state with unparsable turn", input: `<room roomId="r"><data class="memento"><state turn="x"><board><pieces/></board><ambers/></state></data></room>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			el := mustParse(t, tc.input)

			_, err := protocol.DecodeEvent(&el)

			var malformed *protocol.MalformedError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}
