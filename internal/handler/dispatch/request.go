package dispatch

import (
	"net/url"
	"strings"
)

// Request is the routing view of an inbound request target.
type Request struct {
	Path  string
	Query map[string]string
}

// ParseTarget splits a raw request target into its path and decoded query
// parameters. It never fails: segments with broken escapes are kept verbatim,
// and a repeated key keeps its last value.
func ParseTarget(raw string) Request {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	raw = stripAuthority(raw)

	path, rawQuery, _ := strings.Cut(raw, "?")
	if path == "" {
		path = "/"
	}

	return Request{Path: path, Query: parseQuery(rawQuery)}
}

// stripAuthority reduces an absolute-form target (scheme://host/p?q) to /p?q.
func stripAuthority(raw string) string {
	if strings.HasPrefix(raw, "/") {
		return raw
	}
	_, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return raw
	}
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		return rest[i:]
	}
	return "/"
}

func parseQuery(rawQuery string) map[string]string {
	params := make(map[string]string)
	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		params[unescape(key)] = unescape(value)
	}
	return params
}

func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
