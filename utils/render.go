package utils

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/skyhook-sh/site/status"
	"github.com/skyhook-sh/site/templates/components"
)

// Render writes a templ component as a full HTML response.
func Render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type TemplHandlerFunc func(w http.ResponseWriter, r *http.Request) error

// MakeTemplHandler adapts an error-returning handler to http.HandlerFunc.
// A status.Toast error is rendered as a toast fragment with its status code;
// anything else becomes an opaque 500.
func MakeTemplHandler(fn TemplHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var toast status.Toast
		if !errors.As(err, &toast) {
			toast = status.ErrorInternalServerError(status.ErrDB)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(toast.StatusCode)
		if renderErr := components.Toast(toast.Message).Render(r.Context(), w); renderErr != nil {
			http.Error(w, renderErr.Error(), http.StatusInternalServerError)
		}
	}
}
