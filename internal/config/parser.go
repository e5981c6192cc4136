package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/geramireze/dynamic-theme-component/internal/theme"
	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

// ManifestNames are probed in order in the project root when no themes file
// is given explicitly.
var ManifestNames = []string{"themes.yaml", "themes.yml", "themes.toml"}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseManifest loads a themes manifest from disk and validates it. The
// format follows the extension: .toml is TOML, anything else YAML.
func ParseManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewFilesystemError("read", path, err)
	}

	var m Manifest
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, themeerrors.NewParseError(path, tomlLine(err), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, themeerrors.NewParseError(path, extractLine(err), err)
		}
	}

	if err := ValidateManifest(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// Registry converts a validated manifest into a theme registry.
func (m *Manifest) Registry() (*theme.Registry, error) {
	defs := make([]theme.Definition, len(m.Themes))
	for i, entry := range m.Themes {
		defs[i] = theme.Definition{
			ID:       theme.ID(entry.ID),
			BrandKey: strings.TrimSpace(entry.BrandKey),
			Label:    entry.Label,
		}
	}
	return theme.NewRegistry(m.Default, defs...)
}

// LoadRegistry returns the registry for a project. An explicit themesFile
// must exist. Otherwise ManifestNames are probed in projectRoot and the
// built-in registry is used when none is present. The second return value is
// the manifest path used, empty for the built-in set.
func LoadRegistry(projectRoot, themesFile string) (*theme.Registry, string, error) {
	path := themesFile
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(projectRoot, path)
	}

	if path == "" {
		for _, name := range ManifestNames {
			candidate := filepath.Join(projectRoot, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				path = candidate
				break
			}
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return nil, "", themeerrors.NewFilesystemError("stat", candidate, err)
			}
		}
		if path == "" {
			return theme.Builtin(), "", nil
		}
	}

	m, err := ParseManifest(path)
	if err != nil {
		return nil, "", err
	}
	reg, err := m.Registry()
	if err != nil {
		return nil, "", themeerrors.NewValidationError("themes", err.Error(), err)
	}
	return reg, path, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		line, _ := decodeErr.Position()
		return line
	}
	return 0
}
