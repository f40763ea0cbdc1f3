package schemaconv

import (
	"log/slog"
	"maps"
)

const refPrefix = "#/definitions/"

// draft4Target emits JSON Schema Draft 4, referencing definitions with $ref
// and dropping definitions the schema cannot reach.
type draft4Target struct {
	walker

	defs DefinitionSet
	// deps maps a definition to the definitions its body references.
	deps map[string]map[string]struct{}
	used map[string]struct{}
	// inDefinitions is set while the definitions themselves are walked; the
	// first object path segment then names the depending definition.
	inDefinitions bool
}

func newDraft4Target(defs DefinitionSet) *draft4Target {
	t := &draft4Target{
		defs: defs,
		deps: map[string]map[string]struct{}{},
		used: map[string]struct{}{},
	}
	t.r = t

	return t
}

func (t *draft4Target) convert(schema map[string]any) (map[string]any, error) {
	t.inDefinitions = true

	defs, err := t.convertInnerType(map[string]any(t.defs), "/"+definitionsKey, nil)
	if err != nil {
		return nil, err
	}

	t.inDefinitions = false

	body, err := t.convertObject(schema, "/", nil)
	if err != nil {
		return nil, err
	}

	t.prune(defs)

	result := map[string]any{
		"$schema": draft4SchemaURI,
	}
	if len(defs) > 0 {
		result[definitionsKey] = defs
	}

	maps.Copy(result, body)

	return result, nil
}

func (t *draft4Target) resolveType(token, srcPath string, objPath []string) (map[string]any, error) {
	switch {
	case has(numericAliases, token):
		return map[string]any{"type": "number"}, nil
	case has(jsonSchemaTypes, token):
		return map[string]any{"type": token}, nil
	case t.defs.has(token):
		t.recordDependency(token, objPath)

		return map[string]any{"$ref": refPrefix + token}, nil
	}

	return nil, &UnknownTypeError{TypeName: token, Path: srcPath}
}

func (t *draft4Target) recordDependency(name string, objPath []string) {
	if !t.inDefinitions || len(objPath) == 0 {
		t.markUsed(name)

		return
	}

	depender := objPath[0]
	if t.deps[depender] == nil {
		t.deps[depender] = map[string]struct{}{}
	}

	if depender != name {
		t.deps[depender][name] = struct{}{}
	}
}

// markUsed marks name and everything reachable from it in the dependency
// graph as used.
func (t *draft4Target) markUsed(name string) {
	stack := []string{name}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if has(t.used, n) {
			continue
		}

		t.used[n] = struct{}{}

		for dep := range t.deps[n] {
			if !has(t.used, dep) {
				stack = append(stack, dep)
			}
		}
	}
}

// prune removes every unused definition from both the working set and the
// converted definitions.
func (t *draft4Target) prune(converted map[string]any) {
	for _, name := range sortedKeys(t.defs) {
		if has(t.used, name) {
			continue
		}

		slog.Debug("pruning unused definition", slog.String("definition", name))

		delete(t.defs, name)
		delete(converted, name)
	}
}
