package outline

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Syntax holds the host conventions for bullets and header properties.
type Syntax struct {
	// Bullet starts an outline entry. A line made of the bullet alone is the
	// placeholder root that opens every rendered outline.
	Bullet string
	// Separator splits a header line into key and value.
	Separator string
}

// DefaultSyntax matches Logseq: "- " bullets and "key:: value" properties.
var DefaultSyntax = Syntax{Bullet: "-", Separator: "::"}

// maxLineSize bounds a single line; journal pages with pasted blocks can
// exceed bufio's 64KiB default.
const maxLineSize = 4 << 20

func (s Syntax) bulletPrefix() string {
	return s.Bullet + " "
}

// Parse reads a document with DefaultSyntax.
func Parse(r io.Reader) (Document, error) {
	return DefaultSyntax.Parse(r)
}

// ParseString is a convenience wrapper around Parse.
func ParseString(text string) (Document, error) {
	return DefaultSyntax.Parse(strings.NewReader(text))
}

type parseState int

const (
	beforeOutline parseState = iota
	inOutline
)

// Parse reads r line by line. Header lines become metadata until the first
// line starting with the bullet; from there on, a line starting with
// "bullet + space" opens a new entry and any other line (blank lines too)
// continues the current one.
func (s Syntax) Parse(r io.Reader) (Document, error) {
	var (
		doc     Document
		state   = beforeOutline
		current strings.Builder
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		lineNo++

		switch state {
		case beforeOutline:
			switch {
			case strings.HasPrefix(line, s.Bullet):
				state = inOutline
				current.WriteString(line)
			case line == "":
				// separator between header and outline
			default:
				key, value, ok := strings.Cut(line, s.Separator)
				if !ok {
					return Document{}, &ParseError{Line: lineNo, Text: line, Err: ErrMalformedMetadata}
				}
				doc.Set(strings.TrimSpace(key), strings.TrimSpace(value))
			}

		case inOutline:
			if strings.HasPrefix(line, s.bulletPrefix()) {
				doc.AppendRaw(current.String())
				current.Reset()
				current.WriteString(line)
				continue
			}
			current.WriteByte('\n')
			current.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("failed to read outline: %w", err)
	}

	if state == inOutline {
		doc.AppendRaw(current.String())
	}
	return doc, nil
}

// Format renders doc: one line per metadata entry, a blank line, then the
// outline. A placeholder bullet is emitted before the first entry unless the
// outline is empty or already starts with it.
func (s Syntax) Format(doc Document) string {
	var buf bytes.Buffer
	for _, e := range doc.Metadata {
		buf.WriteString(e.Key)
		buf.WriteString(s.Separator)
		if e.Value != "" {
			buf.WriteByte(' ')
			buf.WriteString(e.Value)
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')

	for i, entry := range doc.Outline {
		if i == 0 && entry != s.Bullet {
			buf.WriteString(s.Bullet)
			buf.WriteByte('\n')
		}
		buf.WriteString(entry)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Entry returns text as a bullet in this syntax.
func (s Syntax) Entry(text string) string {
	return s.bulletPrefix() + text
}
