package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed posts/*.md
var postsFS embed.FS

// Article is a fully loaded post: front-matter, slug derived from the
// filename, and the markdown body already rendered to HTML.
type Article struct {
	Slug string
	Meta Frontmatter
	HTML string
}

func (a Article) URL() string {
	return "/p/public/articles/" + a.Slug
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Load parses every embedded post. Articles come back sorted newest first.
func Load() ([]Article, error) {
	return LoadFrom(postsFS, "posts")
}

// LoadFrom walks dir in fsys for *.md documents. Any malformed document
// fails the whole load; posts are authored in-repo and a broken one should
// never ship.
func LoadFrom(fsys fs.FS, dir string) ([]Article, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts dir: %w", err)
	}

	var all []Article
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		doc, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read post %s: %w", entry.Name(), err)
		}

		article, err := parseArticle(strings.TrimSuffix(entry.Name(), ".md"), doc)
		if err != nil {
			return nil, fmt.Errorf("post %s: %w", entry.Name(), err)
		}

		all = append(all, article)
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, _ := all[i].Meta.Published()
		b, _ := all[j].Meta.Published()
		return a.After(b)
	})

	return all, nil
}

func parseArticle(slug string, doc []byte) (Article, error) {
	meta, body, err := SplitFrontmatter(doc)
	if err != nil {
		return Article{}, err
	}

	fm, err := ParseFrontmatter(meta)
	if err != nil {
		return Article{}, err
	}

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return Article{}, fmt.Errorf("failed to render markdown: %w", err)
	}

	return Article{
		Slug: slug,
		Meta: fm,
		HTML: buf.String(),
	}, nil
}

// Catalog is an in-memory view over loaded articles, the only lookup the
// site needs.
type Catalog struct {
	articles []Article
	bySlug   map[string]int
}

func NewCatalog(articles []Article) *Catalog {
	bySlug := make(map[string]int, len(articles))
	for i, a := range articles {
		bySlug[a.Slug] = i
	}
	return &Catalog{articles: articles, bySlug: bySlug}
}

func (c *Catalog) All() []Article {
	return c.articles
}

func (c *Catalog) BySlug(slug string) (Article, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Article{}, false
	}
	return c.articles[i], true
}
