package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/geramireze/dynamic-theme-component/internal/theme"
	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

// Setting keys. Flags bound through LoadSettings use the same names.
const (
	KeyProject    = "project"
	KeyTheme      = "theme"
	KeyThemesFile = "themes-file"
	KeyComponents = "components"
	KeyStyles     = "styles"
)

// Defaults for the project layout.
const (
	DefaultComponentsDir = "src/components"
	DefaultStylesDir     = "src/styles"
	DotEnvFile           = ".env"
)

// LoadSettings layers flags over environment over defaults. Before the
// environment is consulted, a .env file in the project root is loaded;
// variables already set in the process win over the file.
func LoadSettings(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault(KeyProject, ".")
	v.SetDefault(KeyComponents, DefaultComponentsDir)
	v.SetDefault(KeyStyles, DefaultStylesDir)

	if flags != nil {
		for _, key := range []string{KeyProject, KeyTheme, KeyThemesFile, KeyComponents, KeyStyles} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	root, err := filepath.Abs(v.GetString(KeyProject))
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	if err := loadDotEnv(filepath.Join(root, DotEnvFile)); err != nil {
		return nil, err
	}

	if err := v.BindEnv(KeyTheme, theme.EnvVar); err != nil {
		return nil, fmt.Errorf("bind env %s: %w", theme.EnvVar, err)
	}

	components, err := projectDir(root, KeyComponents, v.GetString(KeyComponents))
	if err != nil {
		return nil, err
	}
	styles, err := projectDir(root, KeyStyles, v.GetString(KeyStyles))
	if err != nil {
		return nil, err
	}

	return &Settings{
		ProjectRoot:   root,
		Theme:         v.GetString(KeyTheme),
		ThemesFile:    v.GetString(KeyThemesFile),
		ComponentsDir: components,
		StylesDir:     styles,
	}, nil
}

// projectDir returns dir as a slash path relative to root. The tree is read
// through a filesystem rooted at root, so dir must not leave it.
func projectDir(root, key, dir string) (string, error) {
	rel := filepath.Clean(dir)
	if filepath.IsAbs(rel) {
		r, err := filepath.Rel(root, rel)
		if err != nil {
			return "", themeerrors.NewValidationError(key, fmt.Sprintf("%s is not inside the project root %s", dir, root), err)
		}
		rel = r
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", themeerrors.NewValidationError(key, fmt.Sprintf("%s is not inside the project root %s", dir, root), nil)
	}
	return filepath.ToSlash(rel), nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return themeerrors.NewFilesystemError("stat", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return themeerrors.NewParseError(path, 0, err)
	}
	return nil
}
