// Package webx implements a minimal HTTP/1.1 user agent aimed at
// learning, control, and embeddability in tools.
//
// Highlights
//   - Locators: a closed URL model over network (http/https), local
//     file, and inline data targets, with view-source support.
//   - Transport: plain TCP or TLS (SNI, system roots, no client cert)
//     behind one buffered duplex stream abstraction.
//   - Connection reuse: one cached keep-alive connection per authority
//     (host:port) for the life of a RequestContext.
//   - Protocol: GET only, content-length framed bodies only; chunked
//     and compressed responses are rejected, not decoded.
//   - Redirects: 301/302/303/307/308 followed with cycle detection and
//     a bounded chain length.
//
// Quick start:
//
//	u, err := webx.Parse("https://example.com/")
//	if err != nil { log.Fatal(err) }
//	rc := webx.NewRequestContext()
//	if err := rc.Load(os.Stdout, u); err != nil { log.Fatal(err) }
package webx
