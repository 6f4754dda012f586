package webx

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, raw string) URL {
	t.Helper()
	u, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", raw, err)
	}
	return u
}

func TestParse_DefaultPortAndPath(t *testing.T) {
	u := mustParse(t, "http://example.com")
	n, ok := u.(NetURL)
	if !ok {
		t.Fatalf("got %T, want NetURL", u)
	}
	if n.Secure {
		t.Fatal("Secure=true for http")
	}
	if n.Host != "example.com" || n.Port != 80 {
		t.Fatalf("authority=%s:%d", n.Host, n.Port)
	}
	if n.Path != "/" {
		t.Fatalf("path=%q, want /", n.Path)
	}
}

func TestParse_ExplicitPortAndPath(t *testing.T) {
	u := mustParse(t, "https://example.com:8443/a/b")
	n := u.(NetURL)
	if !n.Secure {
		t.Fatal("Secure=false for https")
	}
	if n.Port != 8443 {
		t.Fatalf("port=%d, want 8443", n.Port)
	}
	if n.Path != "/a/b" {
		t.Fatalf("path=%q, want /a/b", n.Path)
	}
}

func TestParse_Data(t *testing.T) {
	u := mustParse(t, "data:text/plain,hi")
	d, ok := u.(DataURL)
	if !ok {
		t.Fatalf("got %T, want DataURL", u)
	}
	if d.MediaType != "text/plain" || d.Content != "hi" {
		t.Fatalf("media=%q content=%q", d.MediaType, d.Content)
	}
}

func TestParse_DataCommaInContent(t *testing.T) {
	u := mustParse(t, "data:text/plain,a,b")
	if got := u.(DataURL).Content; got != "a,b" {
		t.Fatalf("content=%q, want a,b", got)
	}
}

func TestParse_ViewSourceFile(t *testing.T) {
	u := mustParse(t, "view-source:file:///tmp/x")
	f, ok := u.(FileURL)
	if !ok {
		t.Fatalf("got %T, want FileURL", u)
	}
	if !f.ViewSource {
		t.Fatal("ViewSource=false")
	}
	if f.Path != "/tmp/x" {
		t.Fatalf("path=%q", f.Path)
	}
}

func TestParse_UnsupportedScheme(t *testing.T) {
	if _, err := Parse("ftp://example.com/"); !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("err=%v, want ErrUnsupportedScheme", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, raw := range []string{"example.com", "data:nocomma", "http://:80/", "http://h:notaport/"} {
		if _, err := Parse(raw); !errors.Is(err, ErrBadLocator) {
			t.Fatalf("Parse(%q) err=%v, want ErrBadLocator", raw, err)
		}
	}
}

func TestFollow_PathOnSameAuthority(t *testing.T) {
	cur := mustParse(t, "http://a.com/x")
	next, err := Follow(cur, "/y")
	if err != nil {
		t.Fatalf("Follow error: %v", err)
	}
	want := NetURL{Host: "a.com", Port: 80, Path: "/y"}
	if next != URL(want) {
		t.Fatalf("next=%v, want %v", next, want)
	}
}

func TestFollow_Absolute(t *testing.T) {
	cur := mustParse(t, "http://a.com/x")
	next, err := Follow(cur, "http://b.com/z")
	if err != nil {
		t.Fatalf("Follow error: %v", err)
	}
	if next != mustParse(t, "http://b.com/z") {
		t.Fatalf("next=%v", next)
	}
}

func TestFollow_DropsViewSource(t *testing.T) {
	cur := mustParse(t, "view-source:https://a.com/x")
	next, err := Follow(cur, "/y")
	if err != nil {
		t.Fatalf("Follow error: %v", err)
	}
	n := next.(NetURL)
	if n.ViewSource {
		t.Fatal("ViewSource survived a redirect")
	}
	if !n.Secure || n.Port != 443 {
		t.Fatalf("scheme not preserved: %v", n)
	}
}

func TestFollow_NonNetwork(t *testing.T) {
	for _, raw := range []string{"file:///tmp/x", "data:text/plain,hi"} {
		if _, err := Follow(mustParse(t, raw), "/y"); !errors.Is(err, ErrUnsupportedOperation) {
			t.Fatalf("Follow on %q err=%v, want ErrUnsupportedOperation", raw, err)
		}
	}
}

func TestHostHeader(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"http://a.com/", "a.com"},
		{"https://a.com/", "a.com"},
		{"http://a.com:8080/", "a.com:8080"},
		{"https://a.com:80/", "a.com:80"},
	}
	for _, c := range cases {
		n := mustParse(t, c.raw).(NetURL)
		if got := n.hostHeader(); got != c.want {
			t.Fatalf("hostHeader(%s)=%q, want %q", c.raw, got, c.want)
		}
	}
}
