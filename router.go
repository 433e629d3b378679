package main

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/skyhook-sh/site/utils"
)

func newRouter(handler *Handler) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(chimiddleware.Recoverer)

	mux.Handle("/static/*", handler.StaticFiles())
	mux.Route("/p", func(mux chi.Router) {
		mux.Route("/public", func(mux chi.Router) {
			mux.Get("/landing-page", handler.LandingPageView)
			mux.Get("/articles", handler.ArticlesView)
			mux.Get("/articles/{slug}", handler.ArticleDetailsView)
			mux.Get("/starters", handler.StartersView)
		})
	})

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/public/v0", func(mux chi.Router) {
			mux.Route("/articles", func(mux chi.Router) {
				mux.Post("/{slug}/comments", utils.MakeTemplHandler(handler.CreateComment))
				mux.Get("/{slug}/comments", utils.MakeTemplHandler(handler.GetAllCommentsByArticleSlug))
			})
		})
	})

	mux.Get("/healthz", handler.Healthz)
	mux.NotFound(handler.HomeRedirect)

	return mux
}
