// Package uripath percent-encodes and decodes URI paths segment by segment.
package uripath

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Encode percent-encodes every "/"-separated segment of p, leaving the
// separators themselves intact. The result is safe to embed as the path of
// a URI.
func Encode(p string) string {
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// Decode percent-decodes p. It reports ok == false when p contains a
// malformed escape sequence or does not decode to valid UTF-8.
func Decode(p string) (string, bool) {
	decoded, err := url.PathUnescape(p)
	if err != nil || !utf8.ValidString(decoded) {
		return "", false
	}
	return decoded, true
}
