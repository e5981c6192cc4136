package buildconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFormat accepts json, yaml or yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (use json or yaml)", s)
}

// FormatForPath infers the format from a file extension, defaulting to JSON.
func FormatForPath(p string) Format {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Encode writes v in the given format. JSON is indented and map keys are
// sorted, so equal inputs always produce equal bytes.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// LoadBase reads the host's existing configuration from path. The format is
// taken from the extension.
func LoadBase(path string) (HostConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HostConfig{}, themeerrors.NewFilesystemError("read", path, err)
	}
	return Decode(path, data, FormatForPath(path))
}

// Decode parses a host configuration document. name is used in errors only.
func Decode(name string, data []byte, f Format) (HostConfig, error) {
	var cfg HostConfig
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return HostConfig{}, themeerrors.NewParseError(name, yamlLine(err), err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return HostConfig{}, themeerrors.NewParseError(name, jsonLine(data, err), err)
		}
	}
	return cfg, nil
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

func jsonLine(data []byte, err error) int {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var offset int64
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
