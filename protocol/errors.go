package protocol

import (
	"fmt"

	"tourney/element"
)

// MalformedError reports a structurally valid message with a missing or
// unparsable field. The message is dropped; the session continues.
type MalformedError struct {
	reason string
}

func (e *MalformedError) Error() string {
	return "malformed message: " + e.reason
}

func malformedf(format string, args ...any) error {
	return &MalformedError{reason: fmt.Sprintf(format, args...)}
}

// UnknownElementError reports an unrecognized tag or discriminator value.
// The raw element is retained for diagnostics; the session continues.
type UnknownElementError struct {
	Element element.Element
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("unknown element <%s>", e.Element.Name)
}

// ServerError is an explicit error payload signaled by the peer.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return "server error: " + e.Message
}
