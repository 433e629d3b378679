package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/skyhook-sh/site/content"
	"github.com/skyhook-sh/site/templates/components"
	"github.com/skyhook-sh/site/templates/markup"
)

func Articles(articles []content.Article) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<header class="page-header"><h1>Blog</h1></header>`)

		b.Raw(`<ul class="article-list">`)
		for _, a := range articles {
			b.Raw(`<li class="article-list-item">`)
			b.Raw(`<img class="article-thumb"`).
				Attr("src", a.Meta.Thumb).
				Attr("alt", "").
				Raw(`>`)
			b.Raw(`<a`).Href(a.URL()).Raw(`>`).Text(a.Meta.Title).Raw(`</a>`)
			b.Raw(`<p>`).Text(a.Meta.Description).Raw(`</p>`)
			b.Raw(`</li>`)
		}
		b.Raw(`</ul>`)
		return b.Err()
	})

	return components.Layout("Blog · Skyhook", body)
}

func ArticleDetails(a content.Article) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<article class="article">`)
		b.Raw(`<img class="article-cover"`).
			Attr("src", a.Meta.Cover).
			Attr("alt", "").
			Raw(`>`)
		b.Raw(`<h1>`).Text(a.Meta.Title).Raw(`</h1>`)
		b.Raw(`<p class="article-byline">`).Text(a.Meta.Author)
		if ts, err := a.Meta.Published(); err == nil {
			b.Raw(` · `).Text(ts.Format("Jan 2, 2006"))
		}
		b.Raw(`</p>`)

		b.Raw(`<ul class="article-tags">`)
		for _, tag := range a.Meta.Tags {
			b.Raw(`<li>`).Text(tag).Raw(`</li>`)
		}
		b.Raw(`</ul>`)

		b.Raw(`<div class="article-body">`).Component(templ.Raw(a.HTML)).Raw(`</div>`)
		b.Raw(`</article>`)

		b.Raw(`<section class="article-comments" id="comments">`)
		b.Raw(`<h2>Comments</h2>`)
		b.Raw(`<div`).
			Attr("data-comments-src", "/api/public/v0/articles/"+a.Slug+"/comments").
			Raw(`></div>`)
		b.Component(components.CommentForm(a.Slug))
		b.Raw(`</section>`)
		return b.Err()
	})

	return components.Layout(a.Meta.Title+" · Skyhook", body)
}

func ArticleNotFound() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<header class="page-header"><h1>Article not found</h1></header>`)
		b.Raw(`<p>That post does not exist. It may have moved, or never was.</p>`)
		b.Raw(`<a`).Href("/p/public/articles").Raw(`>Back to the blog</a>`)
		return b.Err()
	})

	return components.Layout("Not found · Skyhook", body)
}
