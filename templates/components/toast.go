package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/skyhook-sh/site/templates/markup"
)

// Toast is the fragment API error responses are rendered as.
func Toast(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<div class="toast" role="alert">`).Text(message).Raw(`</div>`)
		return b.Err()
	})
}
