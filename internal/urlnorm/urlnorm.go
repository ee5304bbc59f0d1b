// Package urlnorm provides URL canonicalization helpers for route matching.
//
// Two URLs that differ only in scheme/host casing or in a trailing slash on
// the path are considered equivalent, so both sides of a comparison are run
// through Normalize before being compared.
package urlnorm

import (
	"net/url"
	"strings"
)

// Normalize canonicalizes a URL string for comparison.
// Scheme and host are lower-cased, a trailing slash on the path is dropped
// (a bare root path on an absolute URL collapses into the host), and any
// fragment is discarded. Relative URLs are normalized the same way minus the
// host handling. Unparsable input is returned unchanged.
func Normalize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	switch {
	case u.Path == "/" && u.Host != "":
		// http://x.test/ and http://x.test are the same resource
		u.Path = ""
	case len(u.Path) > 1:
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	return u.String()
}

// Path returns the path component of a URL, query string and fragment
// stripped. Unparsable input falls back to a textual split at the first
// '?' or '#'.
func Path(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexAny(raw, "?#"); i >= 0 {
			return raw[:i]
		}
		return raw
	}
	return u.Path
}

// Query returns the decoded query parameters of a URL.
// Unparsable input yields an empty set.
func Query(raw string) url.Values {
	u, err := url.Parse(raw)
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}
