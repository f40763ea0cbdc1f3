package schemaio_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/schemaconv/pkg/schemaconv"
	"github.com/macropower/schemaconv/pkg/schemaio"
)

var testDataDir string

func init() {
	//nolint:dogsled
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	testDataDir = filepath.Join(dir, "testdata")
}

func encodeJSON(t *testing.T, doc any) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, schemaio.Encode(&buf, doc, schemaio.FormatJSON))

	return buf.String()
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want    schemaio.Format
		wantErr bool
	}{
		"":      {want: schemaio.FormatAuto},
		"auto":  {want: schemaio.FormatAuto},
		"JSON":  {want: schemaio.FormatJSON},
		"yaml":  {want: schemaio.FormatYAML},
		"yml":   {want: schemaio.FormatYAML},
		"toml":  {wantErr: true},
		" json": {want: schemaio.FormatJSON},
	}

	for input, tc := range tcs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			got, err := schemaio.ParseFormat(input)
			if tc.wantErr {
				require.ErrorIs(t, err, schemaio.ErrInvalidFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	want, err := os.ReadFile(filepath.Join(testDataDir, "schema.json"))
	require.NoError(t, err)

	tcs := map[string]struct {
		format schemaio.Format
	}{
		"schema.json":    {format: schemaio.FormatAuto},
		"schema.yaml":    {format: schemaio.FormatAuto},
		"schema.json.gz": {format: schemaio.FormatAuto},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := schemaio.ReadFile(filepath.Join(testDataDir, name), tc.format)
			require.NoError(t, err)

			got := encodeJSON(t, doc)
			assert.JSONEq(t, string(want), got)
			assert.Contains(t, got, "9007199254740993")
		})
	}
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	_, err := schemaio.ReadFile(filepath.Join(testDataDir, "missing.json"), schemaio.FormatAuto)
	require.ErrorIs(t, err, schemaio.ErrRead)

	_, err = schemaio.ReadFile(filepath.Join(testDataDir, "broken.json"), schemaio.FormatAuto)
	require.ErrorIs(t, err, schemaio.ErrDecode)
	assert.Contains(t, err.Error(), "broken.json")

	_, err = schemaio.Read(strings.NewReader(`{} {}`), "-", schemaio.FormatJSON)
	require.ErrorIs(t, err, schemaio.ErrDecode)

	_, err = schemaio.Read(strings.NewReader(`{}`), "schema.json.gz", schemaio.FormatAuto)
	require.ErrorIs(t, err, schemaio.ErrRead)

	_, err = schemaio.Decode([]byte(`{}`), schemaio.Format("toml"))
	require.ErrorIs(t, err, schemaio.ErrInvalidFormat)
}

func TestReadDetectsFormatFromContent(t *testing.T) {
	t.Parallel()

	doc, err := schemaio.Read(strings.NewReader("type: string\n"), schemaio.StdinName, schemaio.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "string"}, doc)

	doc, err = schemaio.Read(strings.NewReader(` {"type": "string"}`), schemaio.StdinName, schemaio.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "string"}, doc)

	doc, err = schemaio.Read(strings.NewReader("1: one\ntrue: yes\n"), schemaio.StdinName, schemaio.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"1": "one", "true": "yes"}, doc)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"pattern": "^<a>&é$",
		"enum":    []any{json.Number("1"), "x"},
	}

	var buf bytes.Buffer
	require.NoError(t, schemaio.Encode(&buf, doc, schemaio.FormatJSON))
	assert.Equal(t, "{\n  \"enum\": [\n    1,\n    \"x\"\n  ],\n  \"pattern\": \"^<a>&é$\"\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, schemaio.Encode(&buf, map[string]any{"enum": []any{json.Number("1"), "x"}}, schemaio.FormatYAML))
	assert.Equal(t, "enum:\n- 1\n- x\n", buf.String())

	require.ErrorIs(t, schemaio.Encode(&buf, doc, schemaio.Format("toml")), schemaio.ErrInvalidFormat)
	require.ErrorIs(t, schemaio.Encode(&buf, map[string]any{"f": func() {}}, schemaio.FormatJSON), schemaio.ErrEncode)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, schemaio.WriteFile(path, map[string]any{"a": true}, schemaio.FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": true\n}\n", string(data))
}

func TestOutputFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, schemaio.FormatYAML, schemaio.OutputFormat(schemaio.FormatAuto, "out.yml"))
	assert.Equal(t, schemaio.FormatJSON, schemaio.OutputFormat(schemaio.FormatAuto, ""))
	assert.Equal(t, schemaio.FormatJSON, schemaio.OutputFormat(schemaio.FormatJSON, "out.yaml"))
}

func TestSelect(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"user": map[string]any{"type": "object"},
			},
		},
		"list": []any{"a", map[string]any{"type": "string"}},
	}

	got, err := schemaio.Select(doc, "")
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	got, err = schemaio.Select(doc, "/components/schemas/user")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "object"}, got)

	got, err = schemaio.Select(doc, "/list/1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "string"}, got)

	_, err = schemaio.Select(doc, "/list/0/type")
	require.ErrorIs(t, err, schemaio.ErrPointer)
}

func TestApplyPatch(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"type":     "object",
		"required": []any{"a"},
		"properties": map[string]any{
			"a": map[string]any{"type": "string"},
		},
	}

	tcs := map[string]struct {
		patch string
		want  string
	}{
		"merge patch": {
			patch: `{"properties": {"a": {"type": "int"}, "b": {"type": "date"}}, "required": null}`,
			want:  `{"type": "object", "properties": {"a": {"type": "int"}, "b": {"type": "date"}}}`,
		},
		"json patch": {
			patch: `[{"op": "add", "path": "/required/-", "value": "b"}, {"op": "replace", "path": "/type", "value": "object"}]`,
			want:  `{"type": "object", "required": ["a", "b"], "properties": {"a": {"type": "string"}}}`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := schemaio.ApplyPatch(doc, []byte(tc.patch))
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, encodeJSON(t, got))
		})
	}

	_, err := schemaio.ApplyPatch(doc, []byte(`[{"op": "remove", "path": "/missing"}]`))
	require.ErrorIs(t, err, schemaio.ErrPatch)

	_, err = schemaio.ApplyPatch(doc, []byte(`[{"op": 1}`))
	require.ErrorIs(t, err, schemaio.ErrPatch)

	// The input document is left untouched.
	assert.Equal(t, []any{"a"}, doc["required"])
}

func TestPatchFile(t *testing.T) {
	t.Parallel()

	data, err := schemaio.PatchFile(filepath.Join(testDataDir, "defs_override.yaml"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"definitions": {"name": {"type": "string", "maxLength": 128}},
		"alt_definitions": {"json": {"timestamp": {"type": "integer", "minimum": 0}}}
	}`, string(data))
}

func TestLoadDefinitions(t *testing.T) {
	t.Parallel()

	lib, err := schemaio.LoadDefinitions(context.Background(),
		filepath.Join(testDataDir, "defs_base.json"),
		filepath.Join(testDataDir, "defs_override.yaml"),
	)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"name", "email"}, mapKeys(lib.Definitions))
	assert.JSONEq(t, `{"type": "string", "maxLength": 128}`, encodeJSON(t, lib.Definitions["name"]))
	assert.Contains(t, lib.AltDefinitions[schemaconv.MongoDialect], "name")
	assert.Contains(t, lib.AltDefinitions[schemaconv.JSONDialect], "timestamp")

	lib, err = schemaio.LoadDefinitions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lib.Definitions)
}

func TestLoadDefinitionsErrors(t *testing.T) {
	t.Parallel()

	_, err := schemaio.LoadDefinitions(context.Background(),
		filepath.Join(testDataDir, "defs_base.json"),
		filepath.Join(testDataDir, "defs_invalid.json"),
		filepath.Join(testDataDir, "broken.json"),
	)
	require.ErrorIs(t, err, schemaio.ErrDefinitions)
	require.ErrorIs(t, err, schemaconv.ErrStructural)
	require.ErrorIs(t, err, schemaio.ErrDecode)
	assert.Contains(t, err.Error(), "defs_invalid.json")
	assert.Contains(t, err.Error(), "broken.json")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = schemaio.LoadDefinitions(ctx, filepath.Join(testDataDir, "defs_base.json"))
	require.ErrorIs(t, err, context.Canceled)
}

func mapKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
