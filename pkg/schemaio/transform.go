package schemaio

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dadav/go-jsonpointer"
	jsonpatch "github.com/evanphx/json-patch"
)

// Select returns the value addressed by an RFC 6901 JSON pointer. An empty
// pointer selects the whole document.
func Select(doc any, pointer string) (any, error) {
	if pointer == "" {
		return doc, nil
	}

	v, err := jsonpointer.Get(doc, pointer)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPointer, pointer, err)
	}

	return v, nil
}

// ApplyPatch applies patch to doc and returns the patched document. A patch
// whose top-level value is an array is an RFC 6902 JSON patch; anything else
// is an RFC 7386 merge patch.
func ApplyPatch(doc any, patch []byte) (any, error) {
	original, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}

	var patched []byte

	trimmed := bytes.TrimSpace(patch)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		ops, err := jsonpatch.DecodePatch(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: decode JSON patch: %w", ErrPatch, err)
		}

		patched, err = ops.Apply(original)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	} else {
		patched, err = jsonpatch.MergePatch(original, trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: merge patch: %w", ErrPatch, err)
		}
	}

	out, err := decodeJSON(patched)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}

	return out, nil
}

// PatchFile reads a patch document from path. YAML patches are converted to
// JSON.
func PatchFile(path string) ([]byte, error) {
	doc, err := ReadFile(path, FormatAuto)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}

	return data, nil
}
