package api

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/filebox/filebox/pkg/httprange"
	"github.com/filebox/filebox/pkg/rangereader"
	"github.com/filebox/filebox/pkg/uripath"
)

// reqPath extracts and normalizes the tree path captured by a "*" route.
func reqPath(c *fiber.Ctx) (string, error) {
	p, ok := uripath.Decode(c.Params("*"))
	if !ok {
		return "", fiber.NewError(StatusBadRequest, ErrBadPath)
	}
	return path.Clean("/" + p), nil
}

func fsError(err error) error {
	if os.IsNotExist(err) {
		return fiber.NewError(StatusNotFound, "no such file or directory")
	}
	if os.IsPermission(err) {
		return fiber.NewError(StatusForbidden, "permission denied")
	}
	return err
}

func GetEntryHandler(fs afero.Fs, hidden []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := reqPath(c)
		if err != nil {
			return err
		}

		fi, err := fs.Stat(p)
		if err != nil {
			return fsError(err)
		}
		if fi.IsDir() {
			return listDir(c, fs, hidden, p)
		}
		return serveContent(c, fs, p, fi.Size())
	}
}

// serveContent streams a file, honoring a single byte range when the
// request carries one. The resolver deliberately passes inverted intervals
// through, and those cannot be streamed, so they are answered 416 here
// together with everything else that did not resolve.
func serveContent(c *fiber.Ctx, fs afero.Fs, name string, size int64) error {
	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		mimeType = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, mimeType)

	rangeHeader := c.Get(fiber.HeaderRange)
	if rangeHeader != "" {
		r, ok := httprange.Resolve(rangeHeader, size)
		if !ok || r.Start > r.End {
			c.Set(fiber.HeaderContentRange, fmt.Sprintf("bytes */%d", size))
			return fiber.NewError(StatusRangeNotSatisfiable, "no satisfiable range")
		}

		f, err := fs.Open(name)
		if err != nil {
			return fsError(err)
		}
		if _, err = f.Seek(r.Start, io.SeekStart); err != nil {
			_ = f.Close()
			return err
		}
		c.Set(fiber.HeaderContentRange, r.ContentRange(size))
		c.Status(StatusPartialContent).Response().
			SetBodyStream(rangereader.New(f, r.Length()), int(r.Length()))
		return nil
	}

	f, err := fs.Open(name)
	if err != nil {
		return fsError(err)
	}
	c.Set(fiber.HeaderAcceptRanges, "bytes")
	c.Status(StatusOk).Response().SetBodyStream(f, int(size))
	return nil
}

func UploadFileHandler(fs afero.Fs) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := reqPath(c)
		if err != nil {
			return err
		}
		if p == "/" {
			return fiber.NewError(StatusBadRequest, ErrBadPath)
		}
		if fi, err := fs.Stat(p); err == nil && fi.IsDir() {
			return fiber.NewError(StatusBadRequest, "target is a directory")
		}

		locks.Lock(p)
		defer locks.Unlock(p)

		// Stream into a staging file next to the target, then rename,
		// so a reader never observes a half-written file.
		staging := path.Join(path.Dir(p), "."+uuid.NewString()+".part")
		f, err := fs.OpenFile(staging, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fsError(err)
		}

		if _, err = io.Copy(f, c.Context().RequestBodyStream()); err != nil {
			_ = f.Close()
			_ = fs.Remove(staging)
			return err
		}
		if err = f.Close(); err != nil {
			_ = fs.Remove(staging)
			return err
		}
		if err = fs.Rename(staging, p); err != nil {
			_ = fs.Remove(staging)
			return fsError(err)
		}

		return c.Status(StatusCreated).JSON(Response{Message: "file uploaded"})
	}
}

func DeleteEntryHandler(fs afero.Fs) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := reqPath(c)
		if err != nil {
			return err
		}
		if p == "/" {
			return fiber.NewError(StatusForbidden, "cannot delete the root")
		}

		fi, err := fs.Stat(p)
		if err != nil {
			return fsError(err)
		}

		locks.Lock(p)
		defer locks.Unlock(p)

		if fi.IsDir() {
			err = fs.RemoveAll(p)
		} else {
			err = fs.Remove(p)
		}
		if err != nil {
			return fsError(err)
		}
		return c.Status(StatusOk).JSON(Response{Message: "entry deleted"})
	}
}
