// Package theme holds the closed set of bank themes a build may select and
// normalizes the raw selector into one of them.
package theme

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ID is the canonical, upper-case spelling of a theme (for example "BBOG").
type ID string

// Token is the lower-case spelling used for directory names and output paths.
func (id ID) Token() string {
	return cases.Lower(language.Und).String(string(id))
}

func (id ID) String() string {
	return string(id)
}

// Definition declares one theme and the values derived from it.
type Definition struct {
	ID       ID
	BrandKey string
	Label    string
}

// Token returns the path token of the definition's ID.
func (d Definition) Token() string {
	return d.ID.Token()
}

// Canonical normalizes a raw theme spelling to its ID form. The result is not
// checked against any registry.
func Canonical(raw string) ID {
	return ID(cases.Upper(language.Und).String(strings.TrimSpace(raw)))
}
