package api

import (
	"errors"
	"path"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"

	"github.com/filebox/filebox/internal/sharestore"
	"github.com/filebox/filebox/pkg/ns"
)

// SharePasswordHeader carries the password of a protected share link.
const SharePasswordHeader = "X-Share-Password"

func CreateShareHandler(fs afero.Fs) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(CreateShareRequest)
		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(StatusBadRequest, ErrBadRequest)
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(StatusBadRequest, err.Error())
		}

		p := path.Clean(req.Path)
		fi, err := fs.Stat(p)
		if err != nil {
			return fsError(err)
		}
		if fi.IsDir() {
			return fiber.NewError(StatusBadRequest, "only files can be shared")
		}

		share := &sharestore.Share{
			Path:     p,
			Password: ns.NullString(req.Password),
		}
		if req.TTL > 0 {
			share.ExpiresAt = time.Now().Add(time.Duration(req.TTL) * time.Second).Unix()
		}

		share, err = sharestore.Create(share)
		if err != nil {
			return err
		}
		return c.Status(StatusCreated).
			JSON(Response{Message: "share created", Data: share})
	}
}

func ListSharesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		shares, err := sharestore.List()
		if err != nil {
			return err
		}
		return c.Status(StatusOk).
			JSON(Response{Message: "shares retrieved", Data: shares})
	}
}

func DeleteShareHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := sharestore.Delete(id); err != nil {
			if errors.Is(err, sharestore.ErrNotExist) {
				return fiber.NewError(StatusNotFound, err.Error())
			}
			return err
		}
		return c.Status(StatusOk).JSON(Response{Message: "share deleted"})
	}
}

func ShareDownloadHandler(fs afero.Fs) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		share, err := sharestore.Get(id)
		if err != nil {
			if errors.Is(err, sharestore.ErrNotExist) {
				return fiber.NewError(StatusNotFound, err.Error())
			}
			return err
		}
		if share.Expired(time.Now()) {
			return fiber.NewError(StatusGone, sharestore.ErrExpired.Error())
		}
		if share.Password != "" && c.Get(SharePasswordHeader) != string(share.Password) {
			return fiber.NewError(StatusUnauthorized, ErrUnauthorized)
		}

		fi, err := fs.Stat(share.Path)
		if err != nil {
			return fsError(err)
		}

		base := path.Base(share.Path)
		if fname := c.Params("fname"); fname != base {
			c.Set(fiber.HeaderContentDisposition, "attachment; filename="+base)
		}
		return serveContent(c, fs, share.Path, fi.Size())
	}
}
