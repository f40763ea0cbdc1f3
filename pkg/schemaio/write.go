package schemaio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Encode renders doc to w with two-space indentation and a trailing newline.
// Non-ASCII text and HTML characters are written unescaped.
func Encode(w io.Writer, doc any, format Format) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w JSON: %w", ErrEncode, err)
	}

	out := buf.Bytes()

	switch format {
	case FormatJSON, FormatAuto, "":
	case FormatYAML:
		y, err := yaml.JSONToYAML(out)
		if err != nil {
			return fmt.Errorf("%w YAML: %w", ErrEncode, err)
		}

		out = y
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// WriteFile renders doc into the file at path, creating parent directories
// as needed.
func WriteFile(path string, doc any, format Format) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("%w: create output directory: %w", ErrWrite, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
