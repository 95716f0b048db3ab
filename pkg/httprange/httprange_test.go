package httprange

import (
	"fmt"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		header string
		size   int64
		want   Range
		ok     bool
	}{
		{
			name:   "start and end",
			header: "bytes=0-499",
			size:   500,
			want:   Range{0, 499},
			ok:     true,
		},
		{
			name:   "open end from zero",
			header: "bytes=0-",
			size:   500,
			want:   Range{0, 499},
			ok:     true,
		},
		{
			name:   "open end from offset",
			header: "bytes=299-",
			size:   500,
			want:   Range{299, 499},
			ok:     true,
		},
		{
			name:   "suffix equal to size",
			header: "bytes=-500",
			size:   500,
			want:   Range{0, 499},
			ok:     true,
		},
		{
			name:   "suffix shorter than size",
			header: "bytes=-300",
			size:   500,
			want:   Range{200, 499},
			ok:     true,
		},
		{
			name:   "start equal to size",
			header: "bytes=500-",
			size:   500,
			ok:     false,
		},
		{
			name:   "suffix longer than size",
			header: "bytes=-501",
			size:   500,
			ok:     false,
		},
		{
			name:   "end equal to size",
			header: "bytes=0-500",
			size:   500,
			ok:     false,
		},
		{
			name:   "missing equals",
			header: "bytes 0-499",
			size:   500,
			ok:     false,
		},
		{
			name:   "wrong unit",
			header: "items=0-499",
			size:   500,
			ok:     false,
		},
		{
			name:   "multi range rejected",
			header: "bytes=0-99,200-299",
			size:   500,
			ok:     false,
		},
		{
			name:   "missing dash",
			header: "bytes=100",
			size:   500,
			ok:     false,
		},
		{
			name:   "empty spec",
			header: "bytes=",
			size:   500,
			ok:     false,
		},
		{
			name:   "non numeric start",
			header: "bytes=abc-",
			size:   500,
			ok:     false,
		},
		{
			name:   "non numeric end",
			header: "bytes=0-xyz",
			size:   500,
			ok:     false,
		},
		{
			name:   "negative end after dash",
			header: "bytes=0--5",
			size:   500,
			ok:     false,
		},
		{
			name:   "zero size start form",
			header: "bytes=0-",
			size:   0,
			ok:     false,
		},
		{
			name:   "zero size suffix form",
			header: "bytes=-1",
			size:   0,
			ok:     false,
		},
		{
			// End offsets are checked against size, not against start.
			// This pins down the current behavior for inverted intervals.
			name:   "inverted range preserved",
			header: "bytes=100-50",
			size:   500,
			want:   Range{100, 50},
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.header, tt.size)
			if ok != tt.ok {
				t.Fatalf("Resolve(%q, %d) ok = %v, want %v", tt.header, tt.size, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve(%q, %d) = %v, want %v", tt.header, tt.size, got, tt.want)
			}
		})
	}
}

func TestResolveOpenEnd(t *testing.T) {
	// For every valid start offset, "start-" covers the rest of the resource.
	const size = 64
	for start := int64(0); start < size; start++ {
		header := fmt.Sprintf("bytes=%d-", start)
		got, ok := Resolve(header, size)
		if !ok {
			t.Fatalf("Resolve(%q, %d) not ok", header, size)
		}
		if want := (Range{start, size - 1}); got != want {
			t.Fatalf("Resolve(%q, %d) = %v, want %v", header, size, got, want)
		}
	}
}

func TestRangeHelpers(t *testing.T) {
	r, ok := Resolve("bytes=100-500", 4707476)
	if !ok {
		t.Fatal("Resolve not ok")
	}
	if r.Length() != 401 {
		t.Errorf("Length() = %d, want 401", r.Length())
	}
	if got, want := r.ContentRange(4707476), "bytes 100-500/4707476"; got != want {
		t.Errorf("ContentRange() = %q, want %q", got, want)
	}
}
