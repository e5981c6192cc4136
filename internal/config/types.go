package config

// Manifest is the optional themes file a project ships to replace the
// built-in bank themes.
type Manifest struct {
	Default string       `yaml:"default" toml:"default" validate:"required,theme_token"`
	Themes  []ThemeEntry `yaml:"themes" toml:"themes" validate:"required,min=1,dive"`
}

// ThemeEntry declares one theme of the manifest.
type ThemeEntry struct {
	ID       string `yaml:"id" toml:"id" validate:"required,theme_token"`
	BrandKey string `yaml:"brand_key,omitempty" toml:"brand_key,omitempty" validate:"omitempty,max=64"`
	Label    string `yaml:"label,omitempty" toml:"label,omitempty" validate:"omitempty,max=100"`
}

// Settings are the resolved inputs of one build invocation.
type Settings struct {
	// ProjectRoot is absolute.
	ProjectRoot   string
	Theme         string
	ThemesFile    string
	ComponentsDir string
	StylesDir     string
}
