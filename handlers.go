package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/godruoyi/go-snowflake"

	"github.com/skyhook-sh/site/database"
	"github.com/skyhook-sh/site/o11y"
	"github.com/skyhook-sh/site/starters"
	"github.com/skyhook-sh/site/status"
	"github.com/skyhook-sh/site/templates/components"
	"github.com/skyhook-sh/site/templates/views"
	"github.com/skyhook-sh/site/utils"
)

func (hnd *Handler) LandingPageView(w http.ResponseWriter, r *http.Request) {
	o11y.PageViews.WithLabelValues("landing").Inc()

	latest := hnd.articles.All()
	if len(latest) > 3 {
		latest = latest[:3]
	}
	featured := starters.Catalog
	if len(featured) > 3 {
		featured = featured[:3]
	}

	utils.Render(w, r, views.LandingPage(latest, featured))
}

func (hnd *Handler) ArticlesView(w http.ResponseWriter, r *http.Request) {
	o11y.PageViews.WithLabelValues("articles").Inc()
	utils.Render(w, r, views.Articles(hnd.articles.All()))
}

func (hnd *Handler) ArticleDetailsView(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, ok := hnd.articles.BySlug(slug)
	if !ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		utils.Render(w, r, views.ArticleNotFound())
		return
	}

	o11y.PageViews.WithLabelValues("article").Inc()
	utils.Render(w, r, views.ArticleDetails(article))
}

func (hnd *Handler) StartersView(w http.ResponseWriter, r *http.Request) {
	o11y.PageViews.WithLabelValues("starters").Inc()
	utils.Render(w, r, views.StartersPage(starters.Catalog))
}

type CreateCommentForm struct {
	Body string `form:"body" validate:"required,max=2000"`
}

func (hnd *Handler) CreateComment(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")
	if _, ok := hnd.articles.BySlug(slug); !ok {
		return status.WarningStatusNotFound(status.WarnUnknownArticle)
	}

	if err := r.ParseForm(); err != nil {
		return status.WarningStatusBadRequest(status.ErrParsingForm)
	}

	var form CreateCommentForm
	if err := hnd.formDecoder.Decode(&form, r.PostForm); err != nil {
		return status.WarningStatusBadRequest(status.ErrDecodingForm)
	}
	if err := hnd.formValidator.Struct(form); err != nil {
		return status.WarningStatusBadRequest(status.ErrFailedToValidateRequest)
	}

	db, err := hnd.db.DB()
	if err != nil {
		return status.ErrorInternalServerError(err)
	}

	username := ensureUsername(w, r)
	queries := database.NewQueries(db)

	comment, err := queries.CreateComment(r.Context(), database.Comment{
		ID:          snowflake.ID(),
		ArticleSlug: slug,
		Username:    username,
		AvatarURL:   getAvatarURL(username),
		Body:        form.Body,
	})
	if err != nil {
		hnd.log.Error("failed to create comment on %s: %s", slug, err.Error())
		return status.ErrorInternalServerError(status.ErrCreateArticleComment)
	}

	o11y.CommentsCreated.Inc()

	if hnd.config.Slack.CommentsChannelID != "" {
		msg := fmt.Sprintf("%s commented on %s", comment.Username, slug)
		if err := hnd.slacknotifier.SendMsg(hnd.config.Slack.CommentsChannelID, msg); err != nil {
			hnd.log.Warn("comment saved but Slack notification failed: %s", err.Error())
		}
	}

	comments, err := queries.GetCommentsByArticleSlug(r.Context(), slug)
	if err != nil {
		return status.ErrorInternalServerError(status.ErrGetAllArticleComments)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	utils.Render(w, r, components.CommentList(comments))
	return nil
}

func (hnd *Handler) GetAllCommentsByArticleSlug(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")
	if _, ok := hnd.articles.BySlug(slug); !ok {
		return status.WarningStatusNotFound(status.WarnUnknownArticle)
	}

	db, err := hnd.db.DB()
	if err != nil {
		return status.ErrorInternalServerError(err)
	}

	comments, err := database.NewQueries(db).GetCommentsByArticleSlug(r.Context(), slug)
	if err != nil {
		hnd.log.Error("failed to list comments on %s: %s", slug, err.Error())
		return status.ErrorInternalServerError(status.ErrGetAllArticleComments)
	}

	utils.Render(w, r, components.CommentList(comments))
	return nil
}
