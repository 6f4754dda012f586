// Package wire holds the HTTP/1.1 response reading primitives shared
// by the webx protocol engine. Everything reads from a caller-owned
// bufio.Reader and never consumes past what it parses, so the same
// reader can carry the next response on a reused connection.
package wire

import (
	"bufio"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrBadStatusLine = errors.New("wire: malformed status line")
	ErrBadHeader     = errors.New("wire: malformed header line")
	ErrLineTooLong   = errors.New("wire: line too long")
)

// maxLineBytes bounds a single status or header line.
const maxLineBytes = 8 << 10

// Header is one response's header block. Names are lowercased and
// values trimmed at read time; later occurrences of a repeated name
// overwrite earlier ones.
type Header map[string]string

func (h Header) Get(name string) string { return h[strings.ToLower(name)] }

func (h Header) Has(name string) bool {
	_, ok := h[strings.ToLower(name)]
	return ok
}

// ReadStatusLine consumes one line and returns the numeric status code.
// The protocol version and reason phrase are parsed and discarded.
func ReadStatusLine(br *bufio.Reader) (int, error) {
	line, err := readLine(br)
	if err != nil {
		return 0, err
	}
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return 0, ErrBadStatusLine
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrBadStatusLine
	}
	return code, nil
}

// ReadHeaders consumes header lines up to and including the blank
// terminator. Each line splits once on the first colon.
func ReadHeaders(br *bufio.Reader) (Header, error) {
	h := make(Header)
	for {
		line, err := readLine(br)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return h, nil
		}
		i := strings.IndexByte(line, ':')
		if i <= 0 {
			return nil, ErrBadHeader
		}
		name := strings.ToLower(line[:i])
		h[name] = strings.TrimSpace(line[i+1:])
	}
}

func readLine(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '\n' {
			break
		}
		if b != '\r' {
			sb.WriteByte(b)
		}
		if sb.Len() > maxLineBytes {
			return "", ErrLineTooLong
		}
	}
	return sb.String(), nil
}
