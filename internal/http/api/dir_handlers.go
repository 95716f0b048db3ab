package api

import (
	"path"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"

	"github.com/filebox/filebox/internal/filesystem"
	"github.com/filebox/filebox/pkg/uripath"
)

// listDir renders a directory as JSON. Hidden entries are dropped here as
// well: the guard hides them from direct access, but a directory read on
// the parent still yields their names.
func listDir(c *fiber.Ctx, fs afero.Fs, hidden []string, p string) error {
	infos, err := afero.ReadDir(fs, p)
	if err != nil {
		return fsError(err)
	}

	entries := make([]*Entry, 0, len(infos))
	for _, fi := range infos {
		child := path.Join(p, fi.Name())
		if filesystem.Hidden(hidden, child) {
			continue
		}
		entry := &Entry{
			Name:  fi.Name(),
			Href:  uripath.Encode(child),
			Dir:   fi.IsDir(),
			MTime: fi.ModTime(),
			Mode:  uint32(fi.Mode().Perm()),
		}
		if !fi.IsDir() {
			entry.Size = fi.Size()
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Dir != entries[j].Dir {
			return entries[i].Dir
		}
		return entries[i].Name < entries[j].Name
	})

	return c.Status(StatusOk).
		JSON(Response{Message: "directory retrieved", Data: Listing{Path: p, Entries: entries}})
}

func MkdirHandler(fs afero.Fs) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(MkdirRequest)
		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(StatusBadRequest, ErrBadRequest)
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(StatusBadRequest, err.Error())
		}

		p := path.Clean(req.Path)
		if err := fs.MkdirAll(p, 0755); err != nil {
			return fsError(err)
		}
		return c.Status(StatusCreated).JSON(Response{Message: "directory created"})
	}
}

func MoveHandler(fs afero.Fs) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(MoveRequest)
		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(StatusBadRequest, ErrBadRequest)
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(StatusBadRequest, err.Error())
		}

		from, to := path.Clean(req.From), path.Clean(req.To)
		if from == "/" || to == "/" || from == to {
			return fiber.NewError(StatusBadRequest, ErrBadPath)
		}

		// Lock in a fixed order so two crossing moves cannot deadlock.
		first, second := from, to
		if second < first {
			first, second = second, first
		}
		locks.Lock(first)
		defer locks.Unlock(first)
		locks.Lock(second)
		defer locks.Unlock(second)

		if err := fs.Rename(from, to); err != nil {
			return fsError(err)
		}
		return c.Status(StatusOk).JSON(Response{Message: "entry moved"})
	}
}
