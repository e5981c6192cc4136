// Package buildconfig composes the host bundler configuration from a theme
// resolution and merges it into whatever configuration the host already has.
package buildconfig

import (
	"github.com/geramireze/dynamic-theme-component/internal/provenance"
)

// Environment keys exposed to application code.
const (
	EnvTheme    = "NEXT_PUBLIC_THEME"
	EnvBrandKey = "NEXT_PUBLIC_BRAND_KEY"
)

// ExactMatchSuffix marks an alias key as matching the import path exactly.
const ExactMatchSuffix = "$"

// DefaultExtensions are prepended to the host's resolve extensions.
var DefaultExtensions = []string{".tsx", ".ts", ".jsx", ".js", ".json"}

// HostConfig is the subset of the bundler configuration this tool owns or
// extends. Keys it does not model are kept in Rest and written back out, and
// rules are generic maps, so a host configuration survives a round trip.
type HostConfig struct {
	Resolve     Resolve            `json:"resolve" yaml:"resolve"`
	Module      Module             `json:"module" yaml:"module"`
	Env         map[string]string  `json:"env,omitempty" yaml:"env,omitempty"`
	DistDir     string             `json:"distDir,omitempty" yaml:"distDir,omitempty"`
	SassOptions *SassOptions       `json:"sassOptions,omitempty" yaml:"sassOptions,omitempty"`
	Source      *provenance.Source `json:"source,omitempty" yaml:"source,omitempty"`
	Rest        map[string]any     `json:"-" yaml:",inline"`
}

// Resolve mirrors the bundler's module resolution block. Alias values are
// untyped: the bundler also accepts false and lists of paths.
type Resolve struct {
	Alias      map[string]any `json:"alias" yaml:"alias"`
	Extensions []string       `json:"extensions" yaml:"extensions"`
	Rest       map[string]any `json:"-" yaml:",inline"`
}

// Module mirrors the bundler's module block.
type Module struct {
	Rules []Rule         `json:"rules" yaml:"rules"`
	Rest  map[string]any `json:"-" yaml:",inline"`
}

// Rule is one module-processing rule. Known keys are "test" and "exclude".
type Rule map[string]any

// SassOptions configures the stylesheet pipeline.
type SassOptions struct {
	IncludePaths []string `json:"includePaths" yaml:"includePaths"`
	PrependData  string   `json:"prependData" yaml:"prependData"`
}
