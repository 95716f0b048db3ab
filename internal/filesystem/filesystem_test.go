package filesystem

import (
	"os"
	"testing"

	"github.com/spf13/afero"
)

func newMemFs(t *testing.T) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, p := range []string{"/readme.md", "/server.key", "/docs/guide.md", "/.git/config"} {
		if err := afero.WriteFile(mem, p, []byte("content"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return mem
}

func TestHidden(t *testing.T) {
	patterns := []string{"*.key", ".git"}

	tests := []struct {
		path string
		want bool
	}{
		{"/readme.md", false},
		{"/server.key", true},
		{"/docs/server.key", true},
		{"/.git", true},
		{"/.git/config", true},
		{"/docs/guide.md", false},
		{"/", false},
	}
	for _, tt := range tests {
		if got := Hidden(patterns, tt.path); got != tt.want {
			t.Errorf("Hidden(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	if Hidden(nil, "/anything") {
		t.Error("Hidden(nil, ...) = true, want false")
	}
}

func TestGuardHidesPaths(t *testing.T) {
	fs := Guard(newMemFs(t), []string{"*.key", ".git"}, false)

	if _, err := fs.Open("/server.key"); !os.IsNotExist(err) {
		t.Errorf("Open(hidden) error = %v, want not-exist", err)
	}
	if _, err := fs.Stat("/.git/config"); !os.IsNotExist(err) {
		t.Errorf("Stat(below hidden dir) error = %v, want not-exist", err)
	}
	if _, err := fs.Create("/other.key"); !os.IsNotExist(err) {
		t.Errorf("Create(hidden) error = %v, want not-exist", err)
	}
	if _, err := fs.Open("/readme.md"); err != nil {
		t.Errorf("Open(visible) error = %v", err)
	}
}

func TestGuardReadOnly(t *testing.T) {
	fs := Guard(newMemFs(t), nil, true)

	if _, err := fs.Create("/new.txt"); !os.IsPermission(err) {
		t.Errorf("Create() error = %v, want permission", err)
	}
	if err := fs.Mkdir("/newdir", 0755); !os.IsPermission(err) {
		t.Errorf("Mkdir() error = %v, want permission", err)
	}
	if err := fs.Remove("/readme.md"); !os.IsPermission(err) {
		t.Errorf("Remove() error = %v, want permission", err)
	}
	if err := fs.Rename("/readme.md", "/renamed.md"); !os.IsPermission(err) {
		t.Errorf("Rename() error = %v, want permission", err)
	}
	if _, err := fs.OpenFile("/readme.md", os.O_WRONLY, 0644); !os.IsPermission(err) {
		t.Errorf("OpenFile(write) error = %v, want permission", err)
	}

	// Reads stay allowed.
	if _, err := fs.Open("/readme.md"); err != nil {
		t.Errorf("Open() error = %v", err)
	}
	if _, err := fs.Stat("/docs/guide.md"); err != nil {
		t.Errorf("Stat() error = %v", err)
	}
}
