package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"

	"github.com/filebox/filebox/internal/sharestore"
	"github.com/filebox/filebox/pkg/pathlock"
	"github.com/filebox/filebox/pkg/validator"
)

var (
	validate = validator.New()
	locks    = pathlock.New()
)

func Load(app *fiber.App, fs afero.Fs, hidden []string) {

	// create api API group
	api := app.Group("/api")

	// public route for login
	api.Post("/user/login", LoginHandler())

	// returns necessary auth config
	api.Get("/config", AuthConfigHandler())

	// setup auth middleware
	api.Use(AuthHandler())

	// verify JWT token (required on a page load)
	api.Get("/check_token", CheckTokenHandler())

	// Tree operations. GET serves either a listing or file content
	// depending on what the path points at.
	api.Get("/fs/*", GetEntryHandler(fs, hidden))
	api.Put("/fs/*", UploadFileHandler(fs))
	api.Delete("/fs/*", DeleteEntryHandler(fs))

	api.Post("/directories", MkdirHandler(fs))
	api.Post("/move", MoveHandler(fs))

	// Share links need a configured store.
	if sharestore.Enabled() {
		api.Post("/shares", CreateShareHandler(fs))
		api.Get("/shares", ListSharesHandler())
		api.Delete("/shares/:id", DeleteShareHandler())

		// Share downloads are not authorized so that links keep
		// working in download managers and media players.
		app.Get("/s/:id", ShareDownloadHandler(fs))
		app.Get("/s/:id/:fname", ShareDownloadHandler(fs))
	}
}
