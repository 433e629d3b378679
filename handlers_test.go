package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhook-sh/site/config"
	"github.com/skyhook-sh/site/content"
	"github.com/skyhook-sh/site/database"
	"github.com/skyhook-sh/site/logger"
	"github.com/skyhook-sh/site/notifier"
	"github.com/skyhook-sh/site/status"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.New()
	log := logger.New(cfg)

	articles, err := content.Load()
	require.NoError(t, err)

	handler := &Handler{
		config:        cfg,
		formDecoder:   form.NewDecoder(),
		formValidator: validator.New(validator.WithRequiredStructEnabled()),
		articles:      content.NewCatalog(articles),
		slacknotifier: notifier.NewSlack("", log),
		db:            database.NewSwappableDB(),
		log:           log,
	}

	return newRouter(handler)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartersPageServesEveryCard(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/public/starters", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 8, strings.Count(rec.Body.String(), `<div class="starter-card">`))
}

func TestArticleDetailsServesKnownSlug(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/p/public/articles/oauth-from-the-command-line", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OAuth from the command line")
}

func TestArticleDetailsUnknownSlugIs404(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/p/public/articles/never-written", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Article not found")
}

func TestUnknownPathRedirectsToLanding(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/p/public/landing-page", rec.Header().Get("Location"))
}

func TestGetCommentsBeforeDBReady(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/api/public/v0/articles/oauth-from-the-command-line/comments", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), status.ErrDatabaseNotReady.Error())
}

func TestGetCommentsUnknownArticle(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/api/public/v0/articles/never-written/comments", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), status.WarnUnknownArticle.Error())
}

func TestCreateCommentRejectsEmptyBody(t *testing.T) {
	body := url.Values{"body": {""}}
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/public/v0/articles/oauth-from-the-command-line/comments",
		strings.NewReader(body.Encode()),
	)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), status.ErrFailedToValidateRequest.Error())
}
