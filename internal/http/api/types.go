package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	StatusOk                  = fiber.StatusOK
	StatusCreated             = fiber.StatusCreated
	StatusPartialContent      = fiber.StatusPartialContent
	StatusBadRequest          = fiber.StatusBadRequest
	StatusUnauthorized        = fiber.StatusUnauthorized
	StatusForbidden           = fiber.StatusForbidden
	StatusNotFound            = fiber.StatusNotFound
	StatusGone                = fiber.StatusGone
	StatusRangeNotSatisfiable = fiber.StatusRequestedRangeNotSatisfiable
)

const (
	ErrBadRequest          = "bad request body"
	ErrUnauthorized        = "authorization failed"
	ErrBadUsernamePassword = "invalid username or password"
	ErrBadPath             = "malformed path"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Entry is a single row of a directory listing.
type Entry struct {
	Name  string    `json:"name"`
	Href  string    `json:"href"`
	Dir   bool      `json:"dir"`
	Size  int64     `json:"size,omitempty"`
	MTime time.Time `json:"mtime"`
	Mode  uint32    `json:"mode"`
}

// Listing is the body returned for a directory.
type Listing struct {
	Path    string   `json:"path"`
	Entries []*Entry `json:"entries"`
}

type MkdirRequest struct {
	Path string `json:"path" validate:"required,regex=^/"`
}

type MoveRequest struct {
	From string `json:"from" validate:"required,regex=^/"`
	To   string `json:"to" validate:"required,regex=^/"`
}

type CreateShareRequest struct {
	Path     string `json:"path" validate:"required,regex=^/"`
	Password string `json:"password"`
	// TTL in seconds; zero means the share never expires.
	TTL int64 `json:"ttl" validate:"min=0"`
}
