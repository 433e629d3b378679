package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/skyhook-sh/site/status"
)

func TestRenderSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>hi</p>")
		return err
	})

	Render(rec, req, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hi</p>", rec.Body.String())
}

func TestMakeTemplHandlerPassesThroughSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	MakeTemplHandler(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusCreated)
		return nil
	})(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMakeTemplHandlerRendersToast(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	MakeTemplHandler(func(w http.ResponseWriter, r *http.Request) error {
		return status.WarningStatusBadRequest(status.ErrDecodingForm)
	})(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), status.ErrDecodingForm.Error())
	assert.Contains(t, rec.Body.String(), `class="toast"`)
}

func TestMakeTemplHandlerMasksUnknownErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	MakeTemplHandler(func(w http.ResponseWriter, r *http.Request) error {
		return fmt.Errorf("connection reset while talking to pg")
	})(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pg")
	assert.Contains(t, rec.Body.String(), status.ErrDB.Error())
}
