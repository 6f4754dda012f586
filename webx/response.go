package webx

// Response is the outcome of one fetch: either a final body or a
// redirect, never both. It is transient — built per request and
// consumed immediately by the redirect driver. StatusCode is zero for
// file and data locators, which have no wire exchange.
type Response struct {
	StatusCode int
	Body       string
	Location   string
}

// IsRedirect reports whether the response carries a redirect target
// instead of a body.
func (r *Response) IsRedirect() bool { return r.Location != "" }

// redirectCode reports whether a status demands a Location follow-up.
func redirectCode(code int) bool {
	switch code {
	case 301, 302, 303, 307, 308:
		return true
	}
	return false
}
