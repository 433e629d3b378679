package starters

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/go-playground/validator/v10"
)

// Image points at a decorative asset. Class optionally overrides the
// default styling the card applies to that layer.
type Image struct {
	Src   string `validate:"required"`
	Class string
}

// Starter describes one promotional tile. Title and the three image layers
// are required; everything else is optional. A present DeployLink selects
// the "Source / Post / Deploy" footer, an absent one the "View all" footer.
type Starter struct {
	Title       string `validate:"required"`
	Description string
	Icon        templ.Component

	BG     Image
	Stars  Image
	Stars2 Image

	DeployLink string
	SourceLink string
	PostLink   string
}

// HasDeploy reports which of the two footer variants the card renders.
func (s Starter) HasDeploy() bool {
	return s.DeployLink != ""
}

// Validate checks the required-field contract. It runs once at startup; a
// violation is an authoring mistake and must never surface at render time.
func Validate(v *validator.Validate, all []Starter) error {
	for i, s := range all {
		if err := v.Struct(s); err != nil {
			return fmt.Errorf("starter %d (%q): %w", i, s.Title, err)
		}
	}
	return nil
}
