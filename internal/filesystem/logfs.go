package filesystem

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// LogFs wraps an afero.Fs and logs every operation.
type LogFs struct {
	src    afero.Fs
	logger zerolog.Logger
}

func NewLogFs(src afero.Fs) afero.Fs {
	return &LogFs{src, log.With().Str("c", "fs").Logger()}
}

func (lf *LogFs) Name() string { return "logfs" }

func (lf *LogFs) log(err error) *zerolog.Event {
	if err != nil && !os.IsNotExist(err) {
		return lf.logger.Error().Err(err)
	}
	return lf.logger.Debug().Err(err)
}

func (lf *LogFs) Open(name string) (afero.File, error) {
	f, err := lf.src.Open(name)
	lf.log(err).Str("name", name).Msg("OPEN")
	return f, err
}

func (lf *LogFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := lf.src.OpenFile(name, flag, perm)
	lf.log(err).Str("name", name).Int("flag", flag).Msg("OPEN_FILE")
	return f, err
}

func (lf *LogFs) Create(name string) (afero.File, error) {
	f, err := lf.src.Create(name)
	lf.log(err).Str("name", name).Msg("CREATE")
	return f, err
}

func (lf *LogFs) Stat(name string) (os.FileInfo, error) {
	fi, err := lf.src.Stat(name)
	lf.log(err).Str("name", name).Msg("STAT")
	return fi, err
}

func (lf *LogFs) Mkdir(name string, perm os.FileMode) error {
	err := lf.src.Mkdir(name, perm)
	lf.log(err).Str("name", name).Msg("MKDIR")
	return err
}

func (lf *LogFs) MkdirAll(path string, perm os.FileMode) error {
	err := lf.src.MkdirAll(path, perm)
	lf.log(err).Str("path", path).Msg("MKDIR_ALL")
	return err
}

func (lf *LogFs) Remove(name string) error {
	err := lf.src.Remove(name)
	lf.log(err).Str("name", name).Msg("REMOVE")
	return err
}

func (lf *LogFs) RemoveAll(path string) error {
	err := lf.src.RemoveAll(path)
	lf.log(err).Str("path", path).Msg("REMOVE_ALL")
	return err
}

func (lf *LogFs) Rename(oldname, newname string) error {
	err := lf.src.Rename(oldname, newname)
	lf.log(err).Str("old", oldname).Str("new", newname).Msg("RENAME")
	return err
}

func (lf *LogFs) Chmod(name string, mode os.FileMode) error {
	err := lf.src.Chmod(name, mode)
	lf.log(err).Str("name", name).Any("mode", mode).Msg("CHMOD")
	return err
}

func (lf *LogFs) Chown(name string, uid, gid int) error {
	err := lf.src.Chown(name, uid, gid)
	lf.log(err).Str("name", name).Int("uid", uid).Int("gid", gid).Msg("CHOWN")
	return err
}

func (lf *LogFs) Chtimes(name string, atime, mtime time.Time) error {
	err := lf.src.Chtimes(name, atime, mtime)
	lf.log(err).Str("name", name).Time("mtime", mtime).Msg("CHTIMES")
	return err
}
