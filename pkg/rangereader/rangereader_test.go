package rangereader

import (
	"io"
	"strings"
	"testing"
)

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		budget  int64
		want    string
		wantErr error
	}{
		{
			name:    "budget below input",
			input:   "some file content",
			budget:  4,
			want:    "some",
			wantErr: io.EOF,
		},
		{
			name:    "budget equal to input",
			input:   "12345",
			budget:  5,
			want:    "12345",
			wantErr: io.EOF,
		},
		{
			name:   "budget above input",
			input:  "short",
			budget: 100,
			want:   "short",
		},
		{
			name:    "zero budget",
			input:   "never read",
			budget:  0,
			want:    "",
			wantErr: io.EOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &closeTracker{Reader: strings.NewReader(tt.input)}
			r := New(src, tt.budget)

			buf := make([]byte, len(tt.input)+1)
			n, err := r.Read(buf)
			if err != tt.wantErr {
				t.Fatalf("Read() error = %v, want %v", err, tt.wantErr)
			}
			if got := string(buf[:n]); got != tt.want {
				t.Errorf("Read() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClosesAtBudget(t *testing.T) {
	src := &closeTracker{Reader: strings.NewReader("0123456789")}
	r := New(src, 4)

	if _, err := io.ReadAll(r); err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !src.closed {
		t.Error("source not closed after budget was spent")
	}
	// Drained reader keeps reporting EOF.
	if _, err := r.Read(make([]byte, 1)); err != io.EOF {
		t.Errorf("Read() after EOF = %v, want io.EOF", err)
	}
}

func TestClosesOnShortSource(t *testing.T) {
	src := &closeTracker{Reader: strings.NewReader("ab")}
	r := New(src, 10)

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "ab" {
		t.Errorf("ReadAll() = %q, want %q", got, "ab")
	}
	if !src.closed {
		t.Error("source not closed after early EOF")
	}
}
