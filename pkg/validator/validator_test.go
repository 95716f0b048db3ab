package validator

import "testing"

type shareRequest struct {
	Path string `validate:"required,regex=^/"`
	TTL  int    `validate:"min=0"`
}

func TestValidation(t *testing.T) {
	validate := New()

	valid := shareRequest{Path: "/docs/readme.md", TTL: 3600}
	if err := validate.Struct(valid); err != nil {
		t.Errorf("validation failed unexpectedly: %s", err)
	}

	relative := shareRequest{Path: "docs/readme.md"}
	if err := validate.Struct(relative); err == nil {
		t.Error("validation should have failed for a relative path")
	}

	missing := shareRequest{TTL: 10}
	if err := validate.Struct(missing); err == nil {
		t.Error("validation should have failed for a missing path")
	}

	negative := shareRequest{Path: "/a", TTL: -1}
	if err := validate.Struct(negative); err == nil {
		t.Error("validation should have failed for a negative ttl")
	}
}
