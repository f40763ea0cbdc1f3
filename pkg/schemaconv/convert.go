package schemaconv

import (
	"fmt"
	"log/slog"
)

// Convert converts schema for the given target and returns a new document.
// The input is not modified.
//
// Definitions are taken from the built-in library, then from external in
// order, then from the `definitions` and `alt_definitions` keys of the schema
// itself; later sources replace earlier ones by name.
func Convert(schema any, target Target, external ...*Library) (map[string]any, error) {
	obj, ok := schema.(map[string]any)
	if !ok {
		return nil, newStructuralError("/", "non-object type encountered")
	}

	embedded, err := LibraryFromNode(obj)
	if err != nil {
		return nil, err
	}

	body := make(map[string]any, len(obj))
	for k, v := range obj {
		if k == definitionsKey || k == altDefinitionsKey {
			continue
		}

		body[k] = v
	}

	libs := make([]*Library, 0, len(external)+2)
	libs = append(libs, &builtinLibrary)
	libs = append(libs, external...)
	libs = append(libs, embedded)

	defs := MergeDefinitions(target.Dialect(), libs...)

	slog.Debug("converting schema",
		slog.String("target", target.String()),
		slog.Int("definitions", len(defs)),
	)

	switch target {
	case Draft4Target:
		return newDraft4Target(defs).convert(body)
	case Mongo36Target:
		return newMongo36Target(defs).convert(body)
	case Mongo32Target:
		return newMongo32Target(defs).convert(body)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownTarget, target)
}
