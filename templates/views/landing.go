package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/skyhook-sh/site/content"
	"github.com/skyhook-sh/site/starters"
	"github.com/skyhook-sh/site/templates/components"
	"github.com/skyhook-sh/site/templates/markup"
)

// LandingPage leads with the hero, previews a few starters and the latest
// posts, and closes with the shared call-to-action.
func LandingPage(latest []content.Article, featured []starters.Starter) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<section class="hero">`)
		b.Raw(`<h1>Deploy anything, from anywhere</h1>`)
		b.Raw(`<p>Skyhook turns a repo into running infrastructure in one step.</p>`)
		b.Raw(`</section>`)

		b.Raw(`<section class="featured-starters"><h2>Start from a template</h2>`)
		b.Raw(`<div class="starter-grid">`)
		for _, s := range featured {
			b.Component(components.StarterCard(s))
		}
		b.Raw(`</div></section>`)

		b.Raw(`<section class="latest-posts"><h2>From the blog</h2><ul>`)
		for _, a := range latest {
			b.Raw(`<li><a`).Href(a.URL()).Raw(`>`).Text(a.Meta.Title).Raw(`</a></li>`)
		}
		b.Raw(`</ul></section>`)

		b.Component(components.CallToAction())
		return b.Err()
	})

	return components.Layout("Skyhook", body)
}
