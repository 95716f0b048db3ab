// Package filesystem assembles the afero view of the served directory.
//
// The tree handed to the HTTP and FTP frontends is the configured root,
// re-rooted with a BasePathFs, with two policies layered on top: paths
// matching a hidden wildcard pattern behave as nonexistent, and a read-only
// mode turns every mutating call into a permission error. Frontends never
// see the raw OS filesystem.
package filesystem

import (
	"os"
	"path"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/filebox/filebox/pkg/wildcard"
)

var (
	ErrReadOnly = os.ErrPermission
	ErrHidden   = os.ErrNotExist
)

type Config struct {
	Root     string   `mapstructure:"root"`
	Hidden   []string `mapstructure:"hidden"`
	ReadOnly bool     `mapstructure:"readonly"`
}

// New builds the served filesystem from cfg. Every access is logged at
// debug level.
func New(cfg *Config) afero.Fs {
	base := afero.NewBasePathFs(afero.NewOsFs(), cfg.Root)
	return NewLogFs(Guard(base, cfg.Hidden, cfg.ReadOnly))
}

// Hidden reports whether any segment of p has a base name matched by one of
// the wildcard patterns. Matching individual segments means hiding ".git"
// also hides everything beneath it.
func Hidden(patterns []string, p string) bool {
	if len(patterns) == 0 {
		return false
	}
	for _, segment := range strings.Split(path.Clean("/"+p), "/") {
		if segment == "" {
			continue
		}
		if wildcard.MatchAny(patterns, segment) {
			return true
		}
	}
	return false
}

// Guard wraps src so that hidden paths do not exist and, when readOnly is
// set, mutating calls fail with ErrReadOnly.
func Guard(src afero.Fs, hidden []string, readOnly bool) afero.Fs {
	return &guardFs{src: src, hidden: hidden, readOnly: readOnly}
}

type guardFs struct {
	src      afero.Fs
	hidden   []string
	readOnly bool
}

func (g *guardFs) Name() string { return "guardfs" }

func (g *guardFs) check(name string, write bool) error {
	if Hidden(g.hidden, name) {
		return &os.PathError{Op: "open", Path: name, Err: ErrHidden}
	}
	if write && g.readOnly {
		return &os.PathError{Op: "open", Path: name, Err: ErrReadOnly}
	}
	return nil
}

func (g *guardFs) Open(name string) (afero.File, error) {
	if err := g.check(name, false); err != nil {
		return nil, err
	}
	return g.src.Open(name)
}

func (g *guardFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	write := flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_APPEND) != 0
	if err := g.check(name, write); err != nil {
		return nil, err
	}
	return g.src.OpenFile(name, flag, perm)
}

func (g *guardFs) Stat(name string) (os.FileInfo, error) {
	if err := g.check(name, false); err != nil {
		return nil, err
	}
	return g.src.Stat(name)
}

func (g *guardFs) Create(name string) (afero.File, error) {
	if err := g.check(name, true); err != nil {
		return nil, err
	}
	return g.src.Create(name)
}

func (g *guardFs) Mkdir(name string, perm os.FileMode) error {
	if err := g.check(name, true); err != nil {
		return err
	}
	return g.src.Mkdir(name, perm)
}

func (g *guardFs) MkdirAll(path string, perm os.FileMode) error {
	if err := g.check(path, true); err != nil {
		return err
	}
	return g.src.MkdirAll(path, perm)
}

func (g *guardFs) Remove(name string) error {
	if err := g.check(name, true); err != nil {
		return err
	}
	return g.src.Remove(name)
}

func (g *guardFs) RemoveAll(path string) error {
	if err := g.check(path, true); err != nil {
		return err
	}
	return g.src.RemoveAll(path)
}

func (g *guardFs) Rename(oldname, newname string) error {
	if err := g.check(oldname, true); err != nil {
		return err
	}
	if err := g.check(newname, true); err != nil {
		return err
	}
	return g.src.Rename(oldname, newname)
}

func (g *guardFs) Chmod(name string, mode os.FileMode) error {
	if err := g.check(name, true); err != nil {
		return err
	}
	return g.src.Chmod(name, mode)
}

func (g *guardFs) Chown(name string, uid, gid int) error {
	if err := g.check(name, true); err != nil {
		return err
	}
	return g.src.Chown(name, uid, gid)
}

func (g *guardFs) Chtimes(name string, atime, mtime time.Time) error {
	if err := g.check(name, true); err != nil {
		return err
	}
	return g.src.Chtimes(name, atime, mtime)
}
