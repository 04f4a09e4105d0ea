// Package element provides a generic in-memory tree representation of an
// XML document, together with an incremental reader and writer.
//
// A Reader wraps a single token stream: each call to ReadDocument consumes
// exactly one complete top-level document and leaves the stream positioned
// at the next sibling. This is what allows protocol messages to be decoded
// one by one from inside a long-lived envelope tag.
package element

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// Element is a deserialized XML node. Children are exclusively owned by
// their parent; there is no back-reference, so upward traversal is
// intentionally unsupported.
type Element struct {
	// Name is the tag name.
	Name string
	// Content is the concatenation of all character data directly inside
	// the node, regardless of how the tokenizer fragmented it.
	Content string
	// Attrs maps attribute keys to values. Order is not preserved.
	Attrs map[string]string
	// Children holds the child nodes in document order.
	Children []Element
}

// Attr returns the value of the attribute with the given key.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.Attrs[key]
	return v, ok
}

// Child returns the first child with the given tag name.
func (e *Element) Child(name string) (*Element, bool) {
	for i := range e.Children {
		if e.Children[i].Name == name {
			return &e.Children[i], true
		}
	}
	return nil, false
}

// ChildrenNamed returns all children with the given tag name, in order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for i := range e.Children {
		if e.Children[i].Name == name {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// String renders the element as XML. Used for diagnostics.
func (e *Element) String() string {
	var sb strings.Builder
	if err := e.Write(&sb); err != nil {
		return fmt.Sprintf("<!-- unrenderable %s: %v -->", e.Name, err)
	}
	return sb.String()
}

// Write serializes the element to w. A node with no children and empty
// content becomes a single self-closing tag. Attribute and text values are
// escaped; attributes are emitted in sorted key order so output is
// deterministic.
//
// Re-parsing the output reproduces the name, attributes, concatenated
// content and ordered children. The original segmentation of character
// data is not preserved, only its concatenation.
func (e *Element) Write(w io.Writer) error {
	if _, err := io.WriteString(w, "<"+e.Name); err != nil {
		return err
	}
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := io.WriteString(w, " "+k+"=\""); err != nil {
			return err
		}
		if err := xml.EscapeText(w, []byte(e.Attrs[k])); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\""); err != nil {
			return err
		}
	}

	if len(e.Children) == 0 && e.Content == "" {
		_, err := io.WriteString(w, "/>")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if e.Content != "" {
		if err := xml.EscapeText(w, []byte(e.Content)); err != nil {
			return err
		}
	}
	for i := range e.Children {
		if err := e.Children[i].Write(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+e.Name+">")
	return err
}

// Reader pulls documents off a low-level XML token stream.
type Reader struct {
	dec *xml.Decoder
	log *slog.Logger
}

// NewReader wraps r in a token stream.
func NewReader(r io.Reader, log *slog.Logger) *Reader {
	return &Reader{dec: xml.NewDecoder(r), log: log}
}

// Token returns the next raw token from the stream. The session handshake
// scans tokens below the document level, so the raw stream stays exposed.
func (r *Reader) Token() (xml.Token, error) {
	return r.dec.Token()
}

// ReadDocument consumes tokens until exactly one top-level element has
// been fully closed and returns it.
//
// A closing token with no element under construction is structurally
// invalid but tolerated: it is logged and skipped so that the stream stays
// usable. The envelope's own close tag arrives exactly this way at the end
// of a session. Character data outside any node is ignored for the same
// reason.
//
// io.EOF is returned when the stream ends between documents. An unclosed
// document at end of stream is a distinct, non-recoverable error.
func (r *Reader) ReadDocument() (Element, error) {
	var stack []Element

	for {
		tok, err := r.dec.Token()
		if err != nil {
			if err == io.EOF && len(stack) > 0 {
				return Element{}, fmt.Errorf("stream ended inside <%s>: %w", stack[len(stack)-1].Name, io.ErrUnexpectedEOF)
			}
			return Element{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := Element{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				node.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					node.Attrs[a.Name.Local] = a.Value
				}
			}
			stack = append(stack, node)

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			stack[len(stack)-1].Content += string(t)

		case xml.EndElement:
			if len(stack) == 0 {
				r.log.Warn("Closing tag without an open element, skipping", "name", t.Name.Local)
				continue
			}
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return node, nil
			}
			parent := &stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
	}
}

// Parse reads a single document from s.
func Parse(s string) (Element, error) {
	r := NewReader(strings.NewReader(s), slog.New(slog.DiscardHandler))
	return r.ReadDocument()
}
