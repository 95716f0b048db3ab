// Package httprange resolves HTTP Range headers against a resource of known size.
//
// Only single byte ranges are supported. A header carrying a comma-separated
// range list is a recognized-but-rejected input: RFC 7233 allows it, but
// multi-range responses complicate serving for very little practical gain, so
// the package rejects them by design rather than leaving them unimplemented.
// The unit must be "bytes", the only range unit defined by HTTP/1.1.
//
// Every failure mode (wrong unit, range list, non-numeric field, offset beyond
// the resource) collapses to the same absent result. Callers that care about
// the distinction between a malformed header and an unsatisfiable one have to
// re-derive it themselves; in practice both are answered with 416.
package httprange

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive [Start, End] byte interval within a resource.
type Range struct {
	Start int64
	End   int64
}

// Resolve parses a Range header value of the form "bytes=<spec>" and computes
// the interval to serve from a resource of size bytes. It reports ok == false
// when no satisfiable single range can be derived from the header.
//
// The three accepted spec forms are "start-end", "start-" and "-suffixLength".
// A suffix of exactly size resolves to the whole resource. End offsets are
// validated against the resource size but not against the start offset, so
// "bytes=100-50" resolves to the inverted interval (100, 50); callers that
// cannot serve an inverted range must reject it themselves.
func Resolve(header string, size int64) (Range, bool) {
	unit, spec, found := strings.Cut(header, "=")
	if !found || unit != "bytes" || strings.Contains(spec, ",") {
		return Range{}, false
	}

	first, rest, found := strings.Cut(spec, "-")
	if !found {
		return Range{}, false
	}

	if first == "" {
		// The "-n" suffix form: the last n bytes of the resource.
		n, err := strconv.ParseInt(rest, 10, 64)
		if err != nil || n < 0 || n > size {
			return Range{}, false
		}
		return Range{Start: size - n, End: size - 1}, true
	}

	start, err := strconv.ParseInt(first, 10, 64)
	if err != nil || start < 0 || start >= size {
		return Range{}, false
	}
	if rest == "" {
		// The "n-" form: from n to the end of the resource.
		return Range{Start: start, End: size - 1}, true
	}
	end, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || end < 0 || end >= size {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Length returns the number of bytes covered by the range.
func (r Range) Length() int64 {
	return r.End - r.Start + 1
}

// ContentRange returns the Content-Range header value for a 206 response
// serving this range out of a resource of size bytes.
func (r Range) ContentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, size)
}
