package schemaconv

import (
	"errors"
)

const jsonSchemaKey = "$jsonSchema"

// mongo36Target emits MongoDB `$jsonSchema` validators. Definitions are
// expanded inline wherever they are used.
type mongo36Target struct {
	walker

	defs DefinitionSet
	// converted holds definition bodies that have already been walked.
	converted map[string]map[string]any
	// converting holds definitions currently being walked.
	converting map[string]struct{}
}

func newMongo36Target(defs DefinitionSet) *mongo36Target {
	t := &mongo36Target{}
	t.init(defs)

	return t
}

func (t *mongo36Target) init(defs DefinitionSet) {
	t.defs = defs
	t.converted = map[string]map[string]any{}
	t.converting = map[string]struct{}{}
	t.r = t
}

func (t *mongo36Target) convert(schema map[string]any) (map[string]any, error) {
	body, err := t.convertBody(schema)
	if err != nil {
		return nil, err
	}

	return map[string]any{jsonSchemaKey: body}, nil
}

// convertBody resolves every definition, then walks the schema itself.
func (t *mongo36Target) convertBody(schema map[string]any) (map[string]any, error) {
	for _, name := range sortedKeys(t.defs) {
		if _, err := t.definition(name); err != nil {
			return nil, err
		}
	}

	return t.convertObject(schema, "/", nil)
}

func (t *mongo36Target) resolveType(token, srcPath string, _ []string) (map[string]any, error) {
	if alias, ok := bsonAliases[token]; ok {
		return map[string]any{"bsonType": alias}, nil
	}

	if has(bsonTypes, token) {
		return map[string]any{"bsonType": token}, nil
	}

	if t.defs.has(token) && !has(t.converting, token) {
		body, err := t.definition(token)
		if err != nil {
			return nil, err
		}

		return deepCopyObject(body), nil
	}

	return nil, &UnknownTypeError{TypeName: token, Path: srcPath}
}

// definition returns the converted body of the named definition, converting
// it first if needed. A definition that cannot be expanded because it refers
// to itself is reduced to its base type.
func (t *mongo36Target) definition(name string) (map[string]any, error) {
	if body, ok := t.converted[name]; ok {
		return body, nil
	}

	t.converting[name] = struct{}{}
	defer delete(t.converting, name)

	srcPath := childPath("/"+definitionsKey, name)
	raw := t.defs[name]

	body, err := t.convertObject(raw, srcPath, []string{name})
	if err != nil {
		var typeErr *UnknownTypeError
		if !errors.As(err, &typeErr) || typeErr.TypeName != name {
			return nil, err
		}

		body, err = t.resolveAlias(name, raw, srcPath)
		if err != nil {
			return nil, err
		}
	}

	t.converted[name] = body

	return body, nil
}

func (t *mongo36Target) resolveAlias(name string, raw any, srcPath string) (map[string]any, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, newStructuralError(srcPath, "wrong definition in type %q", name)
	}

	token, ok := obj["type"].(string)
	if !ok {
		return nil, newStructuralError(srcPath, "wrong definition in type %q", name)
	}

	return t.resolveType(token, childPath(srcPath, "type"), []string{name})
}
