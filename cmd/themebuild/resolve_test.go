package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/geramireze/dynamic-theme-component/internal/buildconfig"
	"github.com/geramireze/dynamic-theme-component/internal/theme"
	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

func decodeHostConfig(t *testing.T, out string) buildconfig.HostConfig {
	t.Helper()

	var cfg buildconfig.HostConfig
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	return cfg
}

func TestResolveEmitsHostConfig(t *testing.T) {
	clearTheme(t)
	dir := newProject(t)

	out, _, err := executeCommand(t, "resolve", "--project", dir, "--theme", "bocc", "--no-source")
	require.NoError(t, err)

	cfg := decodeHostConfig(t, out)

	override := filepath.Join(dir, "src", "components", "DatePicker", "bocc", "DatePicker.tsx")
	shared := filepath.Join(dir, "src", "components", "Button", "Button.tsx")
	require.Equal(t, map[string]any{
		"@/components/DatePicker$":            override,
		"@/components/DatePicker/DatePicker$": override,
		"@/components/Button$":                shared,
		"@/components/Button/Button$":         shared,
	}, cfg.Resolve.Alias)
	require.Equal(t, buildconfig.DefaultExtensions, cfg.Resolve.Extensions)

	require.Len(t, cfg.Module.Rules, 1)
	require.Equal(t, `\.(tsx?|jsx?)$`, cfg.Module.Rules[0]["test"])
	require.ElementsMatch(t, []any{
		"src/components/[^/]+/bbog/",
		"src/components/[^/]+/bavv/",
		"src/components/[^/]+/bpop/",
	}, cfg.Module.Rules[0]["exclude"])

	require.Equal(t, "BOCC", cfg.Env[buildconfig.EnvTheme])
	require.Equal(t, "BOCC", cfg.Env[buildconfig.EnvBrandKey])
	require.Equal(t, "build/bocc", cfg.DistDir)
	require.Nil(t, cfg.Source)

	require.NotNil(t, cfg.SassOptions)
	require.Equal(t, []string{filepath.Join(dir, "src", "styles")}, cfg.SassOptions.IncludePaths)
	require.Equal(t, "$primary: #0033a0;\n@mixin card { padding: 8px; }\n", cfg.SassOptions.PrependData)
}

func TestResolveReadsThemeFromEnvironment(t *testing.T) {
	t.Setenv(theme.EnvVar, " bavv ")
	dir := newProject(t)

	out, _, err := executeCommand(t, "resolve", "--project", dir, "--no-source")
	require.NoError(t, err)

	cfg := decodeHostConfig(t, out)
	require.Equal(t, "BAVV", cfg.Env[buildconfig.EnvTheme])
	require.Equal(t,
		filepath.Join(dir, "src", "components", "DatePicker", "DatePicker.tsx"),
		cfg.Resolve.Alias["@/components/DatePicker$"])
}

func TestResolveDefaultsToBBOG(t *testing.T) {
	clearTheme(t)
	dir := newProject(t)

	out, stderr, err := executeCommand(t, "resolve", "--project", dir, "--no-source")
	require.NoError(t, err)

	cfg := decodeHostConfig(t, out)
	require.Equal(t, "BBOG", cfg.Env[buildconfig.EnvTheme])
	require.Contains(t, stderr, "style asset missing")
}

func TestResolveRejectsUnknownTheme(t *testing.T) {
	clearTheme(t)
	dir := newProject(t)

	out, _, err := executeCommand(t, "resolve", "--project", dir, "--theme", "XYZ")
	require.Error(t, err)
	require.Empty(t, out)

	var invalid *themeerrors.InvalidConfigurationError
	require.ErrorAs(t, err, &invalid)
	require.ElementsMatch(t, []string{"BBOG", "BOCC", "BAVV", "BPOP"}, invalid.Valid)
	require.Equal(t, exitConfig, exitCode(err))
}

func TestResolveWritesYAMLFile(t *testing.T) {
	clearTheme(t)
	dir := newProject(t)

	out, _, err := executeCommand(t, "resolve", "--project", dir, "--theme", "BPOP", "--out", "build/theme.yaml", "--no-source")
	require.NoError(t, err)
	require.Empty(t, out)

	cfg, err := buildconfig.LoadBase(filepath.Join(dir, "build", "theme.yaml"))
	require.NoError(t, err)
	require.Equal(t, "BPOP", cfg.Env[buildconfig.EnvTheme])
	require.Equal(t, "build/bpop", cfg.DistDir)
}

func TestResolveMergesBaseConfig(t *testing.T) {
	clearTheme(t)
	dir := newProject(t)
	writeProjectFile(t, dir, "webpack.base.json", `{
  "resolve": {"alias": {"react": "/vendor/react"}, "extensions": [".mjs", ".tsx"]},
  "module": {"rules": [{"test": "\\.css$", "use": ["css-loader"]}]},
  "env": {"API_URL": "https://api.example.test"}
}`)

	out, _, err := executeCommand(t, "resolve", "--project", dir, "--theme", "bbog", "--base", "webpack.base.json", "--no-source")
	require.NoError(t, err)

	cfg := decodeHostConfig(t, out)
	require.Equal(t, "/vendor/react", cfg.Resolve.Alias["react"])
	require.Equal(t, append(append([]string{}, buildconfig.DefaultExtensions...), ".mjs"), cfg.Resolve.Extensions)
	require.Len(t, cfg.Module.Rules, 2)
	require.Equal(t, `\.css$`, cfg.Module.Rules[0]["test"])
	require.Equal(t, "https://api.example.test", cfg.Env["API_URL"])
	require.Equal(t, "BBOG", cfg.Env[buildconfig.EnvTheme])
}

func TestResolveReportsMalformedBase(t *testing.T) {
	clearTheme(t)
	dir := newProject(t)
	writeProjectFile(t, dir, "base.json", "{\n  \"resolve\": [\n")

	_, _, err := executeCommand(t, "resolve", "--project", dir, "--base", "base.json")
	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, exitConfig, exitCode(err))
}

func TestResolveRejectsUnknownFormat(t *testing.T) {
	clearTheme(t)

	_, _, err := executeCommand(t, "resolve", "--project", t.TempDir(), "--format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported format")
}

func TestResolveMissingComponentsRoot(t *testing.T) {
	clearTheme(t)

	out, _, err := executeCommand(t, "resolve", "--project", t.TempDir(), "--theme", "bocc", "--no-source")
	require.NoError(t, err)

	cfg := decodeHostConfig(t, out)
	require.Empty(t, cfg.Resolve.Alias)
	require.Empty(t, cfg.Module.Rules)
}

func TestResolveOptionsFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		opts resolveOptions
		want buildconfig.Format
	}{
		{opts: resolveOptions{}, want: buildconfig.FormatJSON},
		{opts: resolveOptions{Format: "YAML"}, want: buildconfig.FormatYAML},
		{opts: resolveOptions{Out: "cfg.yml"}, want: buildconfig.FormatYAML},
		{opts: resolveOptions{Format: "json", Out: "cfg.yml"}, want: buildconfig.FormatJSON},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, tc.opts.format())
	}
}

func TestResolveCommandParsesFlags(t *testing.T) {
	original := resolveCmdRunner
	t.Cleanup(func() { resolveCmdRunner = original })

	var got resolveOptions
	var verbose bool
	resolveCmdRunner = func(cmd *cobra.Command, flags *rootFlags, opts resolveOptions) error {
		got = opts
		verbose = flags.verbose
		return nil
	}

	_, _, err := executeCommand(t, "resolve", "-v", "--format", "yaml", "--out", "cfg.yaml", "--base", "next.base.json", "--no-source")
	require.NoError(t, err)
	require.True(t, verbose)
	require.Equal(t, resolveOptions{Format: "yaml", Out: "cfg.yaml", Base: "next.base.json", NoSource: true}, got)
}

func TestResolveAcceptsAbsoluteComponentsAndStyles(t *testing.T) {
	clearTheme(t)
	dir := newProject(t)

	out, _, err := executeCommand(t, "resolve", "--project", dir, "--theme", "bocc", "--no-source",
		"--components", filepath.Join(dir, "src", "components"),
		"--styles", filepath.Join(dir, "src", "styles"))
	require.NoError(t, err)

	cfg := decodeHostConfig(t, out)
	require.Len(t, cfg.Resolve.Alias, 4)
	require.Equal(t,
		filepath.Join(dir, "src", "components", "DatePicker", "bocc", "DatePicker.tsx"),
		cfg.Resolve.Alias["@/components/DatePicker$"])
	require.Len(t, cfg.Module.Rules, 1)
	require.Contains(t, cfg.SassOptions.PrependData, "$primary: #0033a0;")
}

func TestResolveRejectsComponentsOutsideProject(t *testing.T) {
	clearTheme(t)
	dir := newProject(t)

	out, _, err := executeCommand(t, "resolve", "--project", dir, "--no-source",
		"--components", filepath.Join(t.TempDir(), "components"))
	require.Error(t, err)
	require.Empty(t, out)

	var validationErr *themeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, exitConfig, exitCode(err))
}

func TestResolveKeepsWebpackBaseShapes(t *testing.T) {
	clearTheme(t)
	dir := newProject(t)
	writeProjectFile(t, dir, "next.base.json", `{
  "resolve": {"alias": {"canvas": false, "lodash": ["/vendor/lodash", "lodash-es"]}, "fallback": {"fs": false}},
  "devtool": "source-map"
}`)

	out, _, err := executeCommand(t, "resolve", "--project", dir, "--theme", "bbog", "--base", "next.base.json", "--no-source")
	require.NoError(t, err)

	cfg := decodeHostConfig(t, out)
	require.Equal(t, false, cfg.Resolve.Alias["canvas"])
	require.Equal(t, []any{"/vendor/lodash", "lodash-es"}, cfg.Resolve.Alias["lodash"])
	require.Equal(t, map[string]any{"fs": false}, cfg.Resolve.Rest["fallback"])
	require.Equal(t, "source-map", cfg.Rest["devtool"])
	require.Len(t, cfg.Resolve.Alias, 6)
}

func TestResolveMissingBaseIsFilesystemError(t *testing.T) {
	clearTheme(t)
	dir := newProject(t)

	_, _, err := executeCommand(t, "resolve", "--project", dir, "--base", "missing.json", "--no-source")
	var fsErr *themeerrors.FilesystemError
	require.ErrorAs(t, err, &fsErr)
	require.Equal(t, exitFailure, exitCode(err))
}
