// Package prelude assembles the Sass text injected ahead of every component
// stylesheet for the active theme.
package prelude

import (
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/geramireze/dynamic-theme-component/internal/logger"
	"github.com/geramireze/dynamic-theme-component/internal/theme"
	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

const (
	VariablesFile = "_variables.scss"
	MixinsFile    = "_mixins.scss"
	themesDir     = "themes"
)

// Asset describes one optional input of the prelude.
type Asset struct {
	Kind  string `json:"kind" yaml:"kind"`
	Path  string `json:"path" yaml:"path"`
	Found bool   `json:"found" yaml:"found"`
}

// Prelude is the assembled text and the assets that fed it.
type Prelude struct {
	Text   string  `json:"text" yaml:"text"`
	Assets []Asset `json:"assets" yaml:"assets"`
}

// VariablesPath returns the theme variables file under stylesRoot.
func VariablesPath(stylesRoot string, id theme.ID) string {
	return path.Join(stylesRoot, themesDir, id.Token(), VariablesFile)
}

// MixinsPath returns the shared mixins file under stylesRoot.
func MixinsPath(stylesRoot string) string {
	return path.Join(stylesRoot, MixinsFile)
}

// Build reads the theme variables and the shared mixins, in that order, and
// joins them. A missing asset contributes an empty string and a warning; any
// other read failure is returned as a FilesystemError.
func Build(fsys billy.Basic, stylesRoot string, id theme.ID, log *logger.Logger) (*Prelude, error) {
	if log == nil {
		log = logger.Nop()
	}
	inputs := []Asset{
		{Kind: "variables", Path: VariablesPath(stylesRoot, id)},
		{Kind: "mixins", Path: MixinsPath(stylesRoot)},
	}

	parts := make([]string, 0, len(inputs))
	for i := range inputs {
		text, found, err := readOptional(fsys, inputs[i].Path)
		if err != nil {
			return nil, err
		}
		inputs[i].Found = found
		if !found {
			log.WithFields(map[string]any{"kind": inputs[i].Kind, "path": inputs[i].Path}).
				Warn("style asset missing; contributing nothing")
		}
		parts = append(parts, text)
	}

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part)
		b.WriteString("\n")
	}

	return &Prelude{Text: b.String(), Assets: inputs}, nil
}

func readOptional(fsys billy.Basic, p string) (string, bool, error) {
	data, err := util.ReadFile(fsys, p)
	if err != nil {
		if themeerrors.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, themeerrors.NewFilesystemError("read", p, err)
	}
	return string(data), true, nil
}
