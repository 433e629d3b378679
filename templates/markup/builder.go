// Package markup is the thin layer the site's templ components are written
// on. Components are authored directly against the templ runtime rather
// than generated from .templ files; Builder gives them straight-line
// writing with a sticky error, and is the only place escaping happens.
package markup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type Builder struct {
	ctx context.Context
	w   io.Writer
	err error
}

func New(ctx context.Context, w io.Writer) *Builder {
	return &Builder{ctx: ctx, w: w}
}

// Raw writes trusted, author-controlled markup verbatim.
func (b *Builder) Raw(s string) *Builder {
	if b.err != nil {
		return b
	}
	_, b.err = io.WriteString(b.w, s)
	return b
}

// Text writes untrusted text, HTML-escaped.
func (b *Builder) Text(s string) *Builder {
	return b.Raw(templ.EscapeString(s))
}

// Attr writes a single attribute with an escaped value.
func (b *Builder) Attr(name, value string) *Builder {
	return b.Raw(` ` + name + `="`).Text(value).Raw(`"`)
}

// Href writes a href attribute, sanitized through templ's URL filter.
func (b *Builder) Href(u string) *Builder {
	return b.Attr("href", string(templ.URL(u)))
}

// Component renders a child component in place. Nil children are skipped.
func (b *Builder) Component(c templ.Component) *Builder {
	if b.err != nil || c == nil {
		return b
	}
	b.err = c.Render(b.ctx, b.w)
	return b
}

func (b *Builder) Err() error {
	return b.err
}
