// Package client owns one connection to the tournament server: it
// performs the join handshake, decodes server events, dispatches them to
// the delegate and writes the chosen moves back, preserving the
// protocol's strict request/response ordering.
package client

import (
	"bufio"
	"context"
	"encoding/xml"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"tourney/element"
	"tourney/errors"
	"tourney/game"
	"tourney/protocol"

	"github.com/google/uuid"
)

// Phase is a session lifecycle stage. Transitions are strictly linear;
// there is no way back and no reconnects.
type Phase int

const (
	Connecting Phase = iota
	Handshaking
	Active
	Closing
	Terminated
)

var phaseNames = [...]string{"Connecting", "Handshaking", "Active", "Closing", "Terminated"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// DebugMode substitutes the process standard streams for either side of
// the connection to ease debugging.
type DebugMode struct {
	Reader bool
	Writer bool
}

// Client drives a single game session. It is not safe for concurrent
// use; the protocol is a single logical thread of control and never has
// more than one outstanding move request.
type Client struct {
	log         *slog.Logger
	delegate    Delegate
	debug       DebugMode
	reservation string
	closeGrace  time.Duration

	phase  Phase
	room   string
	team   *game.Team
	state  *game.State
	result *protocol.GameResult
}

// New creates a client around the given delegate. reservation may be
// empty to join the public queue. closeGrace is slept in the Closing
// phase so the peer can observe the close notice before teardown.
func New(log *slog.Logger, delegate Delegate, debug DebugMode, reservation string, closeGrace time.Duration) *Client {
	return &Client{
		log:         log.With("session", uuid.New().String()),
		delegate:    delegate,
		debug:       debug,
		reservation: reservation,
		closeGrace:  closeGrace,
		phase:       Connecting,
	}
}

// Phase returns the current lifecycle stage.
func (c *Client) Phase() Phase {
	return c.phase
}

// Team returns the team assigned by the server, if the welcome message
// has arrived.
func (c *Client) Team() (game.Team, bool) {
	if c.team == nil {
		return 0, false
	}
	return *c.team, true
}

// Reservation returns the configured reservation code, if any.
func (c *Client) Reservation() (string, bool) {
	return c.reservation, c.reservation != ""
}

// Room returns the id of the game room the session was placed into.
func (c *Client) Room() (string, bool) {
	return c.room, c.room != ""
}

// Connect dials the server over TCP and blocks until the session
// terminates. ctx bounds the dial only; the session itself has no
// cancellation beyond termination.
func (c *Client) Connect(ctx context.Context, host string, port int) (protocol.GameResult, error) {
	address := net.JoinHostPort(host, strconv.Itoa(port))
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return protocol.GameResult{}, fmt.Errorf("connecting to %s: %w", address, err)
	}
	defer func() {
		_ = conn.Close()
	}()
	c.log.Info("Connected", "address", address)

	var r io.Reader = conn
	var w io.Writer = conn
	if c.debug.Reader {
		r = os.Stdin
	}
	if c.debug.Writer {
		w = os.Stdout
	}
	return c.Run(r, w)
}

// Run executes the session over the given duplex stream and returns the
// final game result. It never partially succeeds: either a result was
// received or the error says why not.
func (c *Client) Run(r io.Reader, w io.Writer) (protocol.GameResult, error) {
	reader := element.NewReader(r, c.log)
	writer := bufio.NewWriter(w)

	// Connecting: open the envelope (left unterminated for the whole
	// session) and send the join request.
	if _, err := io.WriteString(writer, "<"+protocol.Envelope+">"); err != nil {
		return protocol.GameResult{}, fmt.Errorf("opening envelope: %w", err)
	}
	var join protocol.Request = protocol.Join{}
	if c.reservation != "" {
		join = protocol.JoinPrepared{ReservationCode: c.reservation}
	}
	joinEl := protocol.EncodeRequest(join)
	c.log.Info("Sending join request", "request", joinEl.String())
	if err := c.send(writer, joinEl); err != nil {
		return protocol.GameResult{}, err
	}

	// Handshaking: scan raw tokens until the peer opens its own
	// envelope. Stray text is ignored.
	c.phase = Handshaking
	if err := c.awaitEnvelope(reader); err != nil {
		return protocol.GameResult{}, err
	}
	c.log.Info("Performed handshake")

	c.phase = Active
	if err := c.eventLoop(reader, writer); err != nil {
		return protocol.GameResult{}, err
	}

	// Closing: give the peer a moment to observe the close notice.
	time.Sleep(c.closeGrace)
	c.phase = Terminated

	if c.result == nil {
		return protocol.GameResult{}, errors.ErrNoResult
	}
	return *c.result, nil
}

func (c *Client) awaitEnvelope(reader *element.Reader) error {
	for {
		tok, err := reader.Token()
		if err != nil {
			if stderrors.Is(err, io.EOF) {
				return errors.ErrHandshakeEOF
			}
			return fmt.Errorf("reading handshake: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == protocol.Envelope {
				return nil
			}
			c.log.Warn("Unexpected element during handshake", "name", t.Name.Local)
		case xml.CharData:
			// Ignorable filler before the envelope.
		default:
			c.log.Warn("Unexpected token during handshake")
		}
	}
}

// eventLoop decodes and dispatches events until the peer tears the room
// down. Recoverable decode failures are logged and skipped: dropping one
// unreadable message is strictly better than disconnecting.
func (c *Client) eventLoop(reader *element.Reader, writer *bufio.Writer) error {
	for {
		doc, err := reader.ReadDocument()
		if err != nil {
			return fmt.Errorf("reading event: %w", err)
		}
		c.log.Debug("Got event", "event", doc.String())

		event, err := protocol.DecodeEvent(&doc)
		if err != nil {
			var unknown *protocol.UnknownElementError
			var serverErr *protocol.ServerError
			switch {
			case stderrors.As(err, &unknown):
				c.log.Warn("Got unknown element", "element", unknown.Element.String())
			case stderrors.As(err, &serverErr):
				c.log.Error("Server error", "message", serverErr.Message)
			default:
				c.log.Warn("Error while decoding event", "error", err)
			}
			continue
		}

		switch e := event.(type) {
		case protocol.Joined:
			c.room = e.Room
			c.log.Info("Joined room", "room", e.Room)

		case protocol.Left:
			c.log.Info("Left room", "room", e.Room)
			if err := c.send(writer, protocol.CloseConnection()); err != nil {
				return err
			}
			if _, err := io.WriteString(writer, "</"+protocol.Envelope+">"); err != nil {
				return fmt.Errorf("closing envelope: %w", err)
			}
			if err := writer.Flush(); err != nil {
				return fmt.Errorf("closing envelope: %w", err)
			}
			c.log.Debug("Wrote close connection")
			c.phase = Closing
			return nil

		case protocol.RoomMessage:
			if c.room == "" {
				c.room = e.Room
			}
			if err := c.handleRoomMessage(e, writer); err != nil {
				return err
			}
		}
	}
}

func (c *Client) handleRoomMessage(msg protocol.RoomMessage, writer *bufio.Writer) error {
	c.log.Debug("Got room message", "room", msg.Room, "payload", msg.Payload.String())

	switch p := msg.Payload.(type) {
	case protocol.Welcome:
		team := p.Team
		c.team = &team
		c.delegate.OnWelcome(team)

	case protocol.Memento:
		state := p.State
		c.state = &state
		c.log.Info("State updated", "turn", state.Turn, "pieces", state.Board.Len())
		c.delegate.OnStateUpdate(state)

	case protocol.MoveRequest:
		// The peer must never request a move before a usable state
		// exists; this is a hard contract, not a recoverable glitch.
		if c.state == nil {
			return fmt.Errorf("%w: no state available at move request", errors.ErrProtocolInvariant)
		}
		team, ok := c.state.CurrentTeam()
		if !ok {
			return fmt.Errorf("%w: no team derivable at move request", errors.ErrProtocolInvariant)
		}
		move := c.delegate.RequestMove(*c.state, team)
		c.log.Info("Sending move", "move", move.String(), "room", msg.Room)
		return c.send(writer, protocol.EncodeRequest(protocol.RoomRequest{Room: msg.Room, Move: move}))

	case protocol.Result:
		if c.team == nil {
			return fmt.Errorf("%w: game result before welcome", errors.ErrProtocolInvariant)
		}
		result := p.Result
		c.result = &result
		c.delegate.OnGameEnd(result, *c.team)
	}
	return nil
}

func (c *Client) send(writer *bufio.Writer, el element.Element) error {
	if err := el.Write(writer); err != nil {
		return fmt.Errorf("writing <%s>: %w", el.Name, err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("writing <%s>: %w", el.Name, err)
	}
	return nil
}
