package webx

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"dqx0.com/go/browse/internal/obs"
	"dqx0.com/go/browse/webx/internal/wire"
)

// Fetch performs a single exchange for one locator. File locators read
// the whole file, data locators return their content verbatim (any
// media type is accepted), and network locators issue one GET on the
// authority's cached connection. Redirects are classified, not
// followed; see Load for the driver.
func (rc *RequestContext) Fetch(u URL) (*Response, error) {
	start := time.Now()
	switch u := u.(type) {
	case FileURL:
		b, err := os.ReadFile(u.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		if !utf8.Valid(b) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, u.Path)
		}
		return &Response{Body: string(b)}, nil
	case DataURL:
		return &Response{Body: u.Content}, nil
	case NetURL:
		resp, err := rc.roundTrip(u)
		if err != nil {
			rc.metricCounter("browse_requests_error_total", 1)
			return nil, err
		}
		rc.metricCounter("browse_requests_total", 1, obs.Label{Key: "scheme", Value: u.scheme()})
		rc.metricHistogram("browse_fetch_duration_ms", float64(time.Since(start).Milliseconds()),
			obs.Label{Key: "status", Value: strconv.Itoa(resp.StatusCode)})
		return resp, nil
	}
	return nil, fmt.Errorf("%w: fetch %T", ErrUnsupportedOperation, u)
}

func (rc *RequestContext) roundTrip(u NetURL) (*Response, error) {
	if rc.Throttle != nil {
		if err := rc.Throttle.Wait(context.Background(), u.Authority()); err != nil {
			return nil, fmt.Errorf("%w: throttle %s: %v", ErrConnect, u.Authority(), err)
		}
	}
	c, err := rc.getConn(u)
	if err != nil {
		return nil, err
	}

	rc.logf(obs.Debug, "GET %s", u)
	fmt.Fprintf(c.bw, "GET %s HTTP/1.1\r\n", u.Path)
	fmt.Fprintf(c.bw, "Host: %s\r\n", u.hostHeader())
	fmt.Fprint(c.bw, "Connection: keep-alive\r\n")
	fmt.Fprintf(c.bw, "User-Agent: %s\r\n", rc.userAgent())
	fmt.Fprint(c.bw, "\r\n")
	if err := c.bw.Flush(); err != nil {
		return nil, fmt.Errorf("%w: write request to %s: %v", ErrConnect, u.Authority(), err)
	}

	// The response is read from the same buffered reader the next
	// request on this connection will use, so framing is strictly
	// content-length: exactly the declared bytes and not one more.
	code, err := wire.ReadStatusLine(c.br)
	if err != nil {
		return nil, fmt.Errorf("read status line from %s: %w", u.Authority(), err)
	}
	hdr, err := wire.ReadHeaders(c.br)
	if err != nil {
		return nil, fmt.Errorf("read headers from %s: %w", u.Authority(), err)
	}
	if hdr.Has("transfer-encoding") || hdr.Has("content-encoding") {
		return nil, fmt.Errorf("%w: from %s", ErrUnsupportedEncoding, u.Authority())
	}
	cl := hdr.Get("content-length")
	if cl == "" {
		return nil, fmt.Errorf("%w: from %s", ErrMissingContentLength, u.Authority())
	}
	n, err := strconv.Atoi(cl)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: bad value %q", ErrMissingContentLength, cl)
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(c.br, body); err != nil {
		return nil, fmt.Errorf("%w: read body from %s: %v", ErrConnect, u.Authority(), err)
	}

	if redirectCode(code) {
		loc := hdr.Get("location")
		if loc == "" {
			return nil, fmt.Errorf("%w: status %d from %s", ErrMissingLocation, code, u.Authority())
		}
		return &Response{StatusCode: code, Location: loc}, nil
	}
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: body from %s", ErrInvalidEncoding, u.Authority())
	}
	return &Response{StatusCode: code, Body: string(body)}, nil
}
