// Package render turns a fetched document into terminal text: either a
// tag-stripped, entity-decoded approximation or a line-numbered source
// dump.
package render

import (
	"fmt"
	"io"
	"strings"
)

// entities is the full set of decoded character references. Anything
// else passes through literally.
var entities = map[string]string{
	"lt": "<",
	"gt": ">",
}

// Show writes a text approximation of body. A left-to-right scan keeps
// an in-tag flag toggled by '<' and '>' and emits characters only
// outside tags. An '&' starts an entity lookup wherever it appears —
// including between '<' and '>', which matches the historical scan
// order of this renderer: the entity check runs before the tag flag is
// consulted. An unknown entity is emitted literally; an '&' with no
// terminating ';' emits the rest of the input verbatim and ends the
// scan.
func Show(w io.Writer, body string) error {
	var out strings.Builder
	inTag := false
	for i := 0; i < len(body); {
		switch c := body[i]; {
		case c == '<':
			inTag = true
			i++
		case c == '>':
			inTag = false
			i++
		case c == '&':
			semi := strings.IndexByte(body[i:], ';')
			if semi < 0 {
				out.WriteString(body[i:])
				i = len(body)
				break
			}
			if decoded, ok := entities[body[i+1:i+semi]]; ok {
				out.WriteString(decoded)
			} else {
				out.WriteString(body[i : i+semi+1])
			}
			i += semi + 1
		default:
			if !inTag {
				out.WriteByte(c)
			}
			i++
		}
	}
	_, err := io.WriteString(w, out.String())
	return err
}

// ShowSource writes every line of body prefixed with a right-aligned
// width-6 line number starting at 1. No tag stripping, no entity
// decoding.
func ShowSource(w io.Writer, body string) error {
	var out strings.Builder
	lines := strings.Split(body, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		fmt.Fprintf(&out, "%6d %s\n", i+1, strings.TrimSuffix(line, "\r"))
	}
	_, err := io.WriteString(w, out.String())
	return err
}
