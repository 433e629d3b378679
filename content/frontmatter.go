package content

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// Frontmatter is the metadata contract every post must carry. All keys are
// required; a post missing one is rejected at load time, not at render time.
type Frontmatter struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Author      string   `yaml:"author" validate:"required"`
	Tags        []string `yaml:"tags" validate:"required,min=1"`
	Thumb       string   `yaml:"thumb" validate:"required"`
	Cover       string   `yaml:"cover" validate:"required"`
	Date        string   `yaml:"date" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var fence = []byte("---")

// SplitFrontmatter separates the leading front-matter block from the markdown
// body. The document must open with a "---" fence on its own line.
func SplitFrontmatter(doc []byte) (meta, body []byte, err error) {
	rest, ok := bytes.CutPrefix(doc, fence)
	if !ok {
		return nil, nil, fmt.Errorf("document does not start with a front-matter fence")
	}

	rest, ok = bytes.CutPrefix(rest, []byte("\n"))
	if !ok {
		return nil, nil, fmt.Errorf("front-matter fence must be on its own line")
	}

	idx := bytes.Index(rest, append([]byte("\n"), fence...))
	if idx < 0 {
		return nil, nil, fmt.Errorf("front-matter fence is not closed")
	}

	meta = rest[:idx]
	body = bytes.TrimPrefix(rest[idx+1+len(fence):], []byte("\n"))
	return meta, body, nil
}

// ParseFrontmatter unmarshals and validates a front-matter block.
func ParseFrontmatter(meta []byte) (Frontmatter, error) {
	var fm Frontmatter
	if err := yaml.Unmarshal(meta, &fm); err != nil {
		return Frontmatter{}, fmt.Errorf("failed to unmarshal front-matter: %w", err)
	}

	if err := validate.Struct(fm); err != nil {
		return Frontmatter{}, fmt.Errorf("incomplete front-matter: %w", err)
	}

	if _, err := fm.Published(); err != nil {
		return Frontmatter{}, err
	}

	return fm, nil
}

// Marshal serializes the front-matter back to YAML. ParseFrontmatter of the
// result yields an identical record.
func (fm Frontmatter) Marshal() ([]byte, error) {
	return yaml.Marshal(fm)
}

// Published parses the date key, which must be an ISO-8601 timestamp.
func (fm Frontmatter) Published() (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, fm.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("front-matter date %q is not ISO-8601: %w", fm.Date, err)
	}
	return ts, nil
}
