package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFrontmatter() Frontmatter {
	return Frontmatter{
		Title:       "OAuth from the command line",
		Description: "A browserless-friendly OAuth flow.",
		Author:      "Maya Lindqvist",
		Tags:        []string{"oauth", "cli"},
		Thumb:       "/static/img/posts/oauth-cli-thumb.svg",
		Cover:       "/static/img/posts/oauth-cli-cover.svg",
		Date:        "2024-03-12T09:00:00Z",
	}
}

func TestFrontmatterRoundTrip(t *testing.T) {
	fm := validFrontmatter()

	raw, err := fm.Marshal()
	require.NoError(t, err)

	parsed, err := ParseFrontmatter(raw)
	require.NoError(t, err)
	assert.Equal(t, fm, parsed)
}

func TestParseFrontmatterMissingRequiredKeys(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Frontmatter)
	}{
		{"missing title", func(fm *Frontmatter) { fm.Title = "" }},
		{"missing description", func(fm *Frontmatter) { fm.Description = "" }},
		{"missing author", func(fm *Frontmatter) { fm.Author = "" }},
		{"missing tags", func(fm *Frontmatter) { fm.Tags = nil }},
		{"empty tags", func(fm *Frontmatter) { fm.Tags = []string{} }},
		{"missing thumb", func(fm *Frontmatter) { fm.Thumb = "" }},
		{"missing cover", func(fm *Frontmatter) { fm.Cover = "" }},
		{"missing date", func(fm *Frontmatter) { fm.Date = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fm := validFrontmatter()
			tc.mutate(&fm)

			raw, err := fm.Marshal()
			require.NoError(t, err)

			_, err = ParseFrontmatter(raw)
			assert.Error(t, err)
		})
	}
}

func TestParseFrontmatterRejectsNonISODate(t *testing.T) {
	fm := validFrontmatter()
	fm.Date = "March 12, 2024"

	raw, err := fm.Marshal()
	require.NoError(t, err)

	_, err = ParseFrontmatter(raw)
	assert.ErrorContains(t, err, "ISO-8601")
}

func TestPublished(t *testing.T) {
	fm := validFrontmatter()

	ts, err := fm.Published()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC), ts.UTC())
}

func TestSplitFrontmatter(t *testing.T) {
	doc := []byte("---\ntitle: Hi\n---\nbody text\n")

	meta, body, err := SplitFrontmatter(doc)
	require.NoError(t, err)
	assert.Equal(t, "title: Hi", string(meta))
	assert.Equal(t, "body text\n", string(body))
}

func TestSplitFrontmatterErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no opening fence", "title: Hi\n---\nbody"},
		{"fence not on own line", "--- title: Hi\n---\nbody"},
		{"unclosed fence", "---\ntitle: Hi\nbody"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := SplitFrontmatter([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}
