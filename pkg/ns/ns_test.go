package ns

import "testing"

func TestScan(t *testing.T) {
	var s NullString

	if err := s.Scan(nil); err != nil || s != "" {
		t.Errorf("Scan(nil) = %q, %v", s, err)
	}
	if err := s.Scan("secret"); err != nil || s != "secret" {
		t.Errorf("Scan(string) = %q, %v", s, err)
	}
	if err := s.Scan([]byte("bytes")); err != nil || s != "bytes" {
		t.Errorf("Scan([]byte) = %q, %v", s, err)
	}
	if err := s.Scan(42); err == nil {
		t.Error("Scan(int) expected error, got nil")
	}
}

func TestValue(t *testing.T) {
	var empty NullString
	v, err := empty.Value()
	if err != nil || v != nil {
		t.Errorf("empty Value() = %v, %v, want nil, nil", v, err)
	}

	s := NullString("x")
	v, err = s.Value()
	if err != nil || v != "x" {
		t.Errorf(`Value() = %v, %v, want "x", nil`, v, err)
	}
}
