package schemaconv

import (
	"maps"
)

const (
	definitionsKey    = "definitions"
	altDefinitionsKey = "alt_definitions"
)

// Library is a source of named definitions, as found in a definitions file or
// embedded in a schema.
type Library struct {
	// Definitions apply to every target.
	Definitions map[string]any `json:"definitions,omitempty" jsonschema_description:"Named schema fragments usable as type names by every target."`
	// AltDefinitions hold dialect-specific bodies that override Definitions
	// for targets of that dialect.
	AltDefinitions map[Dialect]map[string]any `json:"alt_definitions,omitempty" jsonschema_description:"Dialect-specific definitions keyed by dialect (json or mongodb)."`
}

// LibraryFromNode reads the `definitions` and `alt_definitions` keys of a
// parsed document. Any other keys are ignored.
func LibraryFromNode(node any) (*Library, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, newStructuralError("/", "non-object definitions document encountered")
	}

	lib := &Library{}

	if raw, ok := obj[definitionsKey]; ok {
		defs, ok := raw.(map[string]any)
		if !ok {
			return nil, newStructuralError("/"+definitionsKey, "non-object type encountered")
		}

		lib.Definitions = deepCopyObject(defs)
	}

	if raw, ok := obj[altDefinitionsKey]; ok {
		buckets, ok := raw.(map[string]any)
		if !ok {
			return nil, newStructuralError("/"+altDefinitionsKey, "non-object type encountered")
		}

		lib.AltDefinitions = make(map[Dialect]map[string]any, len(buckets))

		for _, dialect := range sortedKeys(buckets) {
			defs, ok := buckets[dialect].(map[string]any)
			if !ok {
				return nil, newStructuralError(childPath("/"+altDefinitionsKey, dialect), "non-object type encountered")
			}

			lib.AltDefinitions[Dialect(dialect)] = deepCopyObject(defs)
		}
	}

	return lib, nil
}

// Clone returns a deep copy of the library.
func (l *Library) Clone() *Library {
	out := &Library{
		Definitions: deepCopyObject(l.Definitions),
	}

	if l.AltDefinitions != nil {
		out.AltDefinitions = make(map[Dialect]map[string]any, len(l.AltDefinitions))
		for d, defs := range l.AltDefinitions {
			out.AltDefinitions[d] = deepCopyObject(defs)
		}
	}

	return out
}

// Merge overlays other onto l. Definitions, and definitions within each
// dialect bucket, are replaced by name.
func (l *Library) Merge(other *Library) {
	if other == nil {
		return
	}

	if len(other.Definitions) > 0 {
		if l.Definitions == nil {
			l.Definitions = map[string]any{}
		}

		maps.Copy(l.Definitions, deepCopyObject(other.Definitions))
	}

	for d, defs := range other.AltDefinitions {
		if l.AltDefinitions == nil {
			l.AltDefinitions = map[Dialect]map[string]any{}
		}

		if l.AltDefinitions[d] == nil {
			l.AltDefinitions[d] = map[string]any{}
		}

		maps.Copy(l.AltDefinitions[d], deepCopyObject(defs))
	}
}

// DefinitionSet maps definition names to their schema bodies.
type DefinitionSet map[string]any

// MergeDefinitions builds the working definition set for a dialect. Libraries
// are applied in order, each contributing its plain definitions followed by
// its bucket for the dialect, so later libraries take precedence. Bodies are
// replaced whole, never merged.
func MergeDefinitions(dialect Dialect, libs ...*Library) DefinitionSet {
	defs := DefinitionSet{}

	for _, lib := range libs {
		if lib == nil {
			continue
		}

		for name, body := range lib.Definitions {
			defs[name] = DeepCopy(body)
		}

		for name, body := range lib.AltDefinitions[dialect] {
			defs[name] = DeepCopy(body)
		}
	}

	return defs
}

func (s DefinitionSet) has(name string) bool {
	_, ok := s[name]

	return ok
}
