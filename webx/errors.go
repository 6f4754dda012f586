package webx

import "errors"

var (
	ErrBadLocator           = errors.New("webx: malformed locator")
	ErrUnsupportedScheme    = errors.New("webx: unsupported scheme")
	ErrUnsupportedOperation = errors.New("webx: unsupported operation")
	ErrConnect              = errors.New("webx: connect failed")
	ErrUnsupportedEncoding  = errors.New("webx: unsupported transfer or content encoding")
	ErrMissingContentLength = errors.New("webx: missing content-length")
	ErrMissingLocation      = errors.New("webx: redirect without location")
	ErrInvalidEncoding      = errors.New("webx: content is not valid UTF-8")
	ErrRedirectCycle        = errors.New("webx: redirect cycle")
	ErrTooManyRedirects     = errors.New("webx: too many redirects")
	ErrIO                   = errors.New("webx: file read failed")
)
