package schemaio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

const (
	gzipExt = ".gz"
	// StdinName is the name used for standard input.
	StdinName = "-"
)

// ReadFile reads and decodes the document at path. An empty path or
// [StdinName] reads from stdin. Paths ending in ".gz" are decompressed.
func ReadFile(path string, format Format) (any, error) {
	var r io.Reader = os.Stdin

	name := path
	if path == "" || path == StdinName {
		name = StdinName
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		defer f.Close()

		r = f
	}

	return Read(r, name, format)
}

// Read decodes a document from r. The name is used to detect the format and
// compression, and to annotate errors.
func Read(r io.Reader, name string, format Format) (any, error) {
	if strings.HasSuffix(name, gzipExt) {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrRead, name, err)
		}
		defer zr.Close()

		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, name, err)
	}

	doc, err := Decode(data, detectFormat(format, name, data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return doc, nil
}

// Decode parses data as a generic tree. JSON numbers are kept as
// [json.Number] so that no precision is lost.
func Decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON, FormatAuto, "":
		return decodeJSON(data)
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w YAML: %w", ErrDecode, err)
		}

		return normalizeYAML(doc), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w JSON: %w", ErrDecode, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w JSON: unexpected data after top-level value", ErrDecode)
	}

	return doc, nil
}

// normalizeYAML converts mappings with non-string keys into the
// map[string]any shape produced by JSON decoding.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}

		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalizeYAML(e)
		}

		return out
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}

		return t
	default:
		return v
	}
}
