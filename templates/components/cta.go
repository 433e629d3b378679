package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/skyhook-sh/site/templates/markup"
)

// CallToAction is the shared section closing out marketing pages.
func CallToAction() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<section class="cta">`)
		b.Raw(`<h2 class="cta-title">Ship something this afternoon</h2>`)
		b.Raw(`<p class="cta-subtitle">Pick a starter, connect your repo, and Skyhook handles the rest.</p>`)
		b.Raw(`<a class="cta-button"`).Href("https://skyhook.sh/new").Raw(`>Start a project</a>`)
		b.Raw(`</section>`)
		return b.Err()
	})
}
