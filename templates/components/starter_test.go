package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhook-sh/site/starters"
)

func renderToString(t *testing.T, s starters.Starter) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, StarterCard(s).Render(context.Background(), &buf))
	return buf.String()
}

func deployStarter() starters.Starter {
	return starters.Starter{
		Title:       "Next.js",
		Description: "A Next.js app, ready to deploy.",
		BG:          starters.Image{Src: "/static/img/starters/bg.svg"},
		Stars:       starters.Image{Src: "/static/img/starters/stars.svg"},
		Stars2:      starters.Image{Src: "/static/img/starters/stars2.svg"},
		DeployLink:  "https://skyhook.sh/new/template/nextjs",
		SourceLink:  "https://github.com/skyhook-sh/starter-nextjs",
		PostLink:    "/p/public/articles",
	}
}

func browseStarter() starters.Starter {
	s := deployStarter()
	s.DeployLink = ""
	s.SourceLink = ""
	s.PostLink = ""
	return s
}

func TestStarterCardDeployFooter(t *testing.T) {
	html := renderToString(t, deployStarter())

	assert.Contains(t, html, ">Source</a>")
	assert.Contains(t, html, ">Post</a>")
	assert.Contains(t, html, ">Deploy</a>")
	assert.NotContains(t, html, "View all")
}

func TestStarterCardBrowseFooter(t *testing.T) {
	html := renderToString(t, browseStarter())

	assert.Contains(t, html, "View all")
	assert.Contains(t, html, starters.ViewAllURL)
	assert.NotContains(t, html, ">Source</a>")
	assert.NotContains(t, html, ">Post</a>")
	assert.NotContains(t, html, ">Deploy</a>")
}

func TestStarterCardRenderIsPure(t *testing.T) {
	s := deployStarter()

	first := renderToString(t, s)
	second := renderToString(t, s)
	assert.Equal(t, first, second)
}

func TestStarterCardOmitsEmptyOptionalFields(t *testing.T) {
	s := browseStarter()
	s.Description = ""
	s.Icon = nil

	html := renderToString(t, s)
	assert.NotContains(t, html, "starter-card-description")
	assert.NotContains(t, html, "starter-card-icon")
}

func TestStarterCardEscapesText(t *testing.T) {
	s := browseStarter()
	s.Title = `<script>alert("x")</script>`

	html := renderToString(t, s)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestStarterCardMergesImageClassOverrides(t *testing.T) {
	s := browseStarter()
	s.Stars2.Class = "opacity-50"

	html := renderToString(t, s)
	assert.Contains(t, html, "starter-card-stars2 opacity-50")
}
