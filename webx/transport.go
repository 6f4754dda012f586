package webx

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// DialFunc opens the raw duplex byte stream for one authority. The
// default implementation dials TCP and, for secure locators, layers a
// verified TLS client session on top. Tests substitute in-memory
// streams here.
type DialFunc func(host string, port uint16, secure bool) (io.ReadWriteCloser, error)

// conn is one cached transport: the raw stream plus the buffered
// reader and writer every exchange with its authority goes through.
// The reader must never consume past a response's declared length, or
// the next request on this connection starts mid-stream.
type conn struct {
	rwc io.ReadWriteCloser
	br  *bufio.Reader
	bw  *bufio.Writer
}

func newConn(rwc io.ReadWriteCloser) *conn {
	return &conn{rwc: rwc, br: bufio.NewReader(rwc), bw: bufio.NewWriter(rwc)}
}

// NetDialer returns the production DialFunc. TLS sessions use the host
// as server identity, the system trust roots, and no client
// certificate. A zero timeout blocks indefinitely.
func NetDialer(timeout time.Duration) DialFunc {
	return func(host string, port uint16, secure bool) (io.ReadWriteCloser, error) {
		d := net.Dialer{Timeout: timeout}
		addr := net.JoinHostPort(host, strconv.Itoa(int(port)))
		if !secure {
			c, err := d.Dial("tcp", addr)
			if err != nil {
				return nil, fmt.Errorf("%w: dial %s: %v", ErrConnect, addr, err)
			}
			return c, nil
		}
		cfg := &tls.Config{
			ServerName: host,
			NextProtos: []string{"http/1.1"},
		}
		td := tls.Dialer{NetDialer: &d, Config: cfg}
		c, err := td.Dial("tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("%w: tls %s: %v", ErrConnect, addr, err)
		}
		return c, nil
	}
}
