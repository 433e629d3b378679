package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/skyhook-sh/site/starters"
	"github.com/skyhook-sh/site/templates/components"
	"github.com/skyhook-sh/site/templates/markup"
)

// StartersPage is a fixed header, one card per catalog entry, and the
// shared call-to-action.
func StartersPage(catalog []starters.Starter) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<header class="page-header">`)
		b.Raw(`<h1>Starters</h1>`)
		b.Raw(`<p>One-click templates to kick off your next project.</p>`)
		b.Raw(`</header>`)

		b.Raw(`<div class="starter-grid">`)
		for _, s := range catalog {
			b.Component(components.StarterCard(s))
		}
		b.Raw(`</div>`)

		b.Component(components.CallToAction())
		return b.Err()
	})

	return components.Layout("Starters · Skyhook", body)
}
