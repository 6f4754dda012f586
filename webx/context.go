package webx

import (
	"context"

	"dqx0.com/go/browse/internal/obs"
)

// DefaultUserAgent identifies the agent on the wire when the caller
// does not override it.
const DefaultUserAgent = "browse/0.1.0"

// Waiter throttles outbound requests per authority. A nil Waiter means
// no throttling.
type Waiter interface {
	Wait(ctx context.Context, key string) error
}

// RequestContext owns every live transport for the life of one run.
// Connections are keyed by authority (host:port) and shared across
// paths; once opened, a connection is reused for every later request
// to that authority. There is no eviction and no health check — the
// cache is sized for a one-shot CLI lifetime, and a connection the
// peer silently closed will surface as a parse failure on the next
// request. Not safe for concurrent use: there is exactly one logical
// caller per context.
type RequestContext struct {
	// UserAgent is sent verbatim in the User-Agent header.
	UserAgent string
	// MaxRedirects bounds one Load's redirect chain.
	MaxRedirects int
	// Dial opens new transports. Defaults to NetDialer(0).
	Dial DialFunc
	// Throttle, if set, is consulted before every network request.
	Throttle Waiter

	Logger obs.Logger
	Meter  obs.Meter

	conns map[string]*conn
}

// NewRequestContext returns a context with production defaults and an
// empty connection cache.
func NewRequestContext() *RequestContext {
	return &RequestContext{
		UserAgent:    DefaultUserAgent,
		MaxRedirects: 10,
		Dial:         NetDialer(0),
		conns:        make(map[string]*conn),
	}
}

// getConn returns the authority's cached transport, dialing it on
// first use. The context keeps exclusive ownership; callers borrow the
// connection for one request/response exchange and must not retain it.
func (rc *RequestContext) getConn(u NetURL) (*conn, error) {
	key := u.Authority()
	if c, ok := rc.conns[key]; ok {
		rc.metricCounter("browse_conn_reuse_total", 1)
		return c, nil
	}
	rwc, err := rc.dial()(u.Host, u.Port, u.Secure)
	if err != nil {
		rc.logf(obs.Error, "dial %s failed: %v", key, err)
		return nil, err
	}
	c := newConn(rwc)
	rc.conns[key] = c
	rc.logf(obs.Debug, "dialed %s (secure=%v)", key, u.Secure)
	rc.metricCounter("browse_conn_dial_total", 1, obs.Label{Key: "secure", Value: strconvBool(u.Secure)})
	return c, nil
}

func (rc *RequestContext) dial() DialFunc {
	if rc.Dial != nil {
		return rc.Dial
	}
	return NetDialer(0)
}

func (rc *RequestContext) userAgent() string {
	if rc.UserAgent != "" {
		return rc.UserAgent
	}
	return DefaultUserAgent
}

func (rc *RequestContext) maxRedirects() int {
	if rc.MaxRedirects > 0 {
		return rc.MaxRedirects
	}
	return 10
}

func (rc *RequestContext) logf(level obs.Level, format string, args ...interface{}) {
	lg := rc.Logger
	if lg == nil {
		lg = obs.NopLogger{}
	}
	lg.Logf(level, format, args...)
}

func (rc *RequestContext) metricCounter(name string, value float64, labels ...obs.Label) {
	m := rc.Meter
	if m == nil {
		m = obs.NopMeter{}
	}
	m.Counter(name, value, labels...)
}

func (rc *RequestContext) metricHistogram(name string, value float64, labels ...obs.Label) {
	m := rc.Meter
	if m == nil {
		m = obs.NopMeter{}
	}
	m.Histogram(name, value, labels...)
}

func strconvBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
