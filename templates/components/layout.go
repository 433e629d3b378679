package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/skyhook-sh/site/templates/markup"
)

// Layout wraps page content in the shared document shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		b.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.Raw(`<title>`).Text(title).Raw(`</title>`)
		b.Raw(`<link rel="stylesheet" href="/static/css/site.css">`)
		b.Raw(`</head><body>`)

		b.Component(navbar())
		b.Raw(`<main class="page">`).Component(body).Raw(`</main>`)
		b.Component(footer())

		b.Raw(`</body></html>`)
		return b.Err()
	})
}

func navbar() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<nav class="navbar">`)
		b.Raw(`<a class="navbar-brand"`).Href("/p/public/landing-page").Raw(`>Skyhook</a>`)
		b.Raw(`<div class="navbar-links">`)
		b.Raw(`<a`).Href("/p/public/articles").Raw(`>Blog</a>`)
		b.Raw(`<a`).Href("/p/public/starters").Raw(`>Starters</a>`)
		b.Raw(`</div>`)
		b.Raw(`</nav>`)
		return b.Err()
	})
}

func footer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<footer class="footer">`)
		b.Raw(`<span>&copy; Skyhook</span>`)
		b.Raw(`<a`).Href("https://github.com/skyhook-sh").Raw(`>GitHub</a>`)
		b.Raw(`</footer>`)
		return b.Err()
	})
}
