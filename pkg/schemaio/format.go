package schemaio

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a document serialization format.
type Format string

const (
	// FormatAuto picks JSON or YAML from the file name or content.
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the [Format] named by s. An empty string is
// [FormatAuto].
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// detectFormat resolves [FormatAuto] using the file extension, falling back
// to the first non-space byte of the content.
func detectFormat(format Format, name string, data []byte) Format {
	if format != FormatAuto && format != "" {
		return format
	}

	switch filepath.Ext(strings.TrimSuffix(name, gzipExt)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}

	return FormatYAML
}

// OutputFormat resolves [FormatAuto] for an output path. Anything other than
// a YAML file name is written as JSON.
func OutputFormat(format Format, path string) Format {
	if format != FormatAuto && format != "" {
		return format
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return FormatYAML
	}

	return FormatJSON
}
