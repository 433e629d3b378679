package components

import (
	"context"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"

	"github.com/skyhook-sh/site/starters"
	"github.com/skyhook-sh/site/templates/markup"
)

// StarterCard renders one promotional tile: three layered decorative
// images, an icon slot, title, optional description and one of two
// mutually exclusive footers. Rendering is pure; the same descriptor
// always produces identical bytes.
func StarterCard(s starters.Starter) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<div class="starter-card">`)

		b.Raw(`<img`).
			Attr("class", twmerge.Merge("starter-card-bg", s.BG.Class)).
			Attr("src", s.BG.Src).
			Attr("alt", "").
			Raw(`>`)
		b.Raw(`<img`).
			Attr("class", twmerge.Merge("starter-card-stars", s.Stars.Class)).
			Attr("src", s.Stars.Src).
			Attr("alt", "").
			Raw(`>`)
		b.Raw(`<img`).
			Attr("class", twmerge.Merge("starter-card-stars2", s.Stars2.Class)).
			Attr("src", s.Stars2.Src).
			Attr("alt", "").
			Raw(`>`)

		if s.Icon != nil {
			b.Raw(`<div class="starter-card-icon">`).Component(s.Icon).Raw(`</div>`)
		}

		b.Raw(`<h3 class="starter-card-title">`).Text(s.Title).Raw(`</h3>`)

		if s.Description != "" {
			b.Raw(`<p class="starter-card-description">`).Text(s.Description).Raw(`</p>`)
		}

		b.Component(starterFooter(s))

		b.Raw(`</div>`)
		return b.Err()
	})
}

func starterFooter(s starters.Starter) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<div class="starter-card-footer">`)
		if s.HasDeploy() {
			b.Raw(`<a class="starter-card-link"`).Href(s.SourceLink).Raw(`>Source</a>`)
			b.Raw(`<a class="starter-card-link"`).Href(s.PostLink).Raw(`>Post</a>`)
			b.Raw(`<a class="starter-card-deploy"`).Href(s.DeployLink).Raw(`>Deploy</a>`)
		} else {
			b.Raw(`<a class="starter-card-view-all"`).Href(starters.ViewAllURL).Raw(`>View all &rarr;</a>`)
		}
		b.Raw(`</div>`)
		return b.Err()
	})
}
