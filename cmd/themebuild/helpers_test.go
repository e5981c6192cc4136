package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geramireze/dynamic-theme-component/internal/theme"
)

// executeCommand runs a fresh root command and returns stdout and stderr
// separately, since stdout carries generated documents.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// clearTheme unsets BUILD_THEME for the test and restores it afterwards.
func clearTheme(t *testing.T) {
	t.Helper()

	t.Setenv(theme.EnvVar, "")
	require.NoError(t, os.Unsetenv(theme.EnvVar))
}

func writeProjectFile(t *testing.T, root, rel, contents string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// newProject lays out a small front-end tree: a shared Button, a DatePicker
// with a BOCC override, and theme variables for BOCC only.
func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, f := range []string{
		"src/components/Button/Button.tsx",
		"src/components/Button/Button.module.scss",
		"src/components/DatePicker/DatePicker.tsx",
		"src/components/DatePicker/bocc/DatePicker.tsx",
	} {
		writeProjectFile(t, dir, f, "export default null;\n")
	}
	writeProjectFile(t, dir, "src/styles/themes/bocc/_variables.scss", "$primary: #0033a0;")
	writeProjectFile(t, dir, "src/styles/_mixins.scss", "@mixin card { padding: 8px; }")
	return dir
}
