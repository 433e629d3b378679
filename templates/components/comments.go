package components

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/skyhook-sh/site/database"
	"github.com/skyhook-sh/site/templates/markup"
)

// CommentList renders a thread as a fragment, oldest entry first.
func CommentList(comments []database.Comment) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<ul class="comment-list">`)
		for _, c := range comments {
			b.Raw(`<li class="comment">`)
			b.Raw(`<img class="comment-avatar"`).
				Attr("src", c.AvatarURL).
				Attr("alt", c.Username).
				Raw(`>`)
			b.Raw(`<span class="comment-username">`).Text(c.Username).Raw(`</span>`)
			b.Raw(`<time`).Attr("datetime", c.CreatedAt.Format(time.RFC3339)).Raw(`>`)
			b.Text(c.CreatedAt.Format("Jan 2, 2006"))
			b.Raw(`</time>`)
			b.Raw(`<p class="comment-body">`).Text(c.Body).Raw(`</p>`)
			b.Raw(`</li>`)
		}
		b.Raw(`</ul>`)
		return b.Err()
	})
}

// CommentForm posts back to the comment API for the given article.
func CommentForm(slug string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := markup.New(ctx, w)

		b.Raw(`<form class="comment-form" method="post"`).
			Attr("action", "/api/public/v0/articles/"+slug+"/comments").
			Raw(`>`)
		b.Raw(`<textarea name="body" rows="3" placeholder="Leave a comment"></textarea>`)
		b.Raw(`<button type="submit">Comment</button>`)
		b.Raw(`</form>`)
		return b.Err()
	})
}
