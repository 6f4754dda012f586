package webx

import (
	"fmt"
	"strconv"
	"strings"
)

const viewSourcePrefix = "view-source:"

// URL is a parsed locator. Exactly three implementations exist: NetURL,
// FileURL and DataURL. All are comparable value types, so two URLs can
// be checked with == during redirect cycle detection. A URL is immutable
// once constructed; following a redirect produces a new value.
type URL interface {
	fmt.Stringer
	// viewSource reports whether the locator asked for a literal,
	// line-numbered dump instead of rendered text. Unexported so the
	// variant set stays closed.
	viewSource() bool
}

// NetURL is an http or https target.
type NetURL struct {
	Secure     bool
	ViewSource bool
	Host       string
	Port       uint16
	Path       string // always starts with "/"
}

// FileURL is a local filesystem target.
type FileURL struct {
	ViewSource bool
	Path       string
}

// DataURL is an inline document carried in the locator itself.
type DataURL struct {
	ViewSource bool
	MediaType  string
	Content    string
}

func (u NetURL) viewSource() bool  { return u.ViewSource }
func (u FileURL) viewSource() bool { return u.ViewSource }
func (u DataURL) viewSource() bool { return u.ViewSource }

// Authority is the connection cache key: host:port, never the path.
// Connections are shared across every path on the same authority.
func (u NetURL) Authority() string {
	return u.Host + ":" + strconv.Itoa(int(u.Port))
}

func (u NetURL) defaultPort() bool {
	return (!u.Secure && u.Port == 80) || (u.Secure && u.Port == 443)
}

// hostHeader is the Host header value: the port is included only when
// it differs from the scheme default.
func (u NetURL) hostHeader() string {
	if u.defaultPort() {
		return u.Host
	}
	return u.Authority()
}

func (u NetURL) scheme() string {
	if u.Secure {
		return "https"
	}
	return "http"
}

func (u NetURL) String() string {
	s := u.scheme() + "://" + u.hostHeader() + u.Path
	if u.ViewSource {
		return viewSourcePrefix + s
	}
	return s
}

func (u FileURL) String() string {
	s := "file://" + u.Path
	if u.ViewSource {
		return viewSourcePrefix + s
	}
	return s
}

func (u DataURL) String() string {
	s := "data:" + u.MediaType + "," + u.Content
	if u.ViewSource {
		return viewSourcePrefix + s
	}
	return s
}

// Parse turns a raw locator string into a URL. Accepted forms are
// [view-source:]http(s)://host[:port][/path], file://path and
// data:media-type,content. Any other scheme fails with
// ErrUnsupportedScheme.
func Parse(raw string) (URL, error) {
	vs := strings.HasPrefix(raw, viewSourcePrefix)
	rest := strings.TrimPrefix(raw, viewSourcePrefix)

	if after, ok := strings.CutPrefix(rest, "data:"); ok {
		mediaType, content, ok := strings.Cut(after, ",")
		if !ok {
			return nil, fmt.Errorf("%w: data locator without comma: %q", ErrBadLocator, raw)
		}
		return DataURL{ViewSource: vs, MediaType: mediaType, Content: content}, nil
	}
	if after, ok := strings.CutPrefix(rest, "file://"); ok {
		return FileURL{ViewSource: vs, Path: after}, nil
	}

	scheme, rest, ok := strings.Cut(rest, "://")
	if !ok {
		return nil, fmt.Errorf("%w: no scheme in %q", ErrBadLocator, raw)
	}
	var secure bool
	var port uint16
	switch scheme {
	case "http":
		port = 80
	case "https":
		secure, port = true, 443
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}

	host := rest
	path := "/"
	if h, p, ok := strings.Cut(rest, "/"); ok {
		host = h
		path = "/" + p
	}
	if h, p, ok := strings.Cut(host, ":"); ok {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: bad port %q in %q", ErrBadLocator, p, raw)
		}
		host = h
		port = uint16(n)
	}
	if host == "" {
		return nil, fmt.Errorf("%w: empty host in %q", ErrBadLocator, raw)
	}
	return NetURL{Secure: secure, ViewSource: vs, Host: host, Port: port, Path: path}, nil
}

// Follow resolves a redirect Location against the current URL. Only
// network locators can redirect. An absolute location (anything not
// starting with "/") is reparsed from scratch; a path is resolved on
// the same scheme and authority. ViewSource never survives a redirect.
func Follow(cur URL, location string) (URL, error) {
	n, ok := cur.(NetURL)
	if !ok {
		return nil, fmt.Errorf("%w: cannot follow a redirect from %s", ErrUnsupportedOperation, cur)
	}
	if !strings.HasPrefix(location, "/") {
		return Parse(location)
	}
	return NetURL{Secure: n.Secure, Host: n.Host, Port: n.Port, Path: location}, nil
}
