package main

import (
	"embed"
	"net/http"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"

	"github.com/skyhook-sh/site/config"
	"github.com/skyhook-sh/site/content"
	"github.com/skyhook-sh/site/database"
	"github.com/skyhook-sh/site/logger"
	"github.com/skyhook-sh/site/notifier"
)

//go:embed static
var staticFS embed.FS

type Handler struct {
	config        *config.Config
	formDecoder   *form.Decoder
	formValidator *validator.Validate
	articles      *content.Catalog
	slacknotifier *notifier.Slack
	log           logger.Logger

	db database.DBWrapper
}

func (hnd *Handler) StaticFiles() http.Handler {
	if hnd.config.App.Env == config.Local {
		hnd.log.Info("serving static files from local directory")
		return http.StripPrefix("/static", http.FileServer(http.Dir("static")))
	}

	hnd.log.Info("serving static files from embedded FS")
	return http.StripPrefix("/", http.FileServer(http.FS(staticFS)))
}

func (hnd *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte{})
}

func (hnd *Handler) HomeRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/p/public/landing-page", http.StatusFound)
}
