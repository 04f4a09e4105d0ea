package errors

import "fmt"

var (
	// ErrNoResult means the session terminated without ever receiving a
	// game result.
	ErrNoResult = fmt.Errorf("session ended without a game result")
	// ErrProtocolInvariant marks fatal violations of the turn-taking
	// contract by the peer. Wrapped with detail at the raise site.
	ErrProtocolInvariant = fmt.Errorf("protocol invariant violated")
	// ErrHandshakeEOF means the peer closed the stream before
	// acknowledging the session envelope.
	ErrHandshakeEOF = fmt.Errorf("stream closed during handshake")
)
