package schemaconv

import (
	"strings"
)

// mongo32Target emits a MongoDB 3.2 query filter. The schema is resolved as
// for MongoDB 3.6 and its required fields are then flattened into dotted
// paths.
type mongo32Target struct {
	mongo36Target
}

func newMongo32Target(defs DefinitionSet) *mongo32Target {
	t := &mongo32Target{}
	t.init(defs)

	return t
}

func (t *mongo32Target) convert(schema map[string]any) (map[string]any, error) {
	body, err := t.convertBody(schema)
	if err != nil {
		return nil, err
	}

	flat := map[string]any{}
	if err := flatten(body, "/", nil, flat); err != nil {
		return nil, err
	}

	return flat, nil
}

// flatten records the required fields of node under their dotted paths.
// Only required properties are descended into, so constraints below an
// optional field are not represented.
func flatten(node map[string]any, srcPath string, objPath []string, flat map[string]any) error {
	required, err := requiredNames(node, srcPath)
	if err != nil {
		return err
	}

	for _, name := range required {
		entry := flatEntry(flat, strings.Join(appendPath(objPath, name), "."))
		entry["$exists"] = true
	}

	if len(objPath) > 0 {
		if entry, ok := flat[strings.Join(objPath, ".")].(map[string]any); ok {
			assertOperators(node, entry)
		}
	}

	raw, ok := node["properties"]
	if !ok {
		return nil
	}

	props, ok := raw.(map[string]any)
	if !ok {
		return newStructuralError(childPath(srcPath, "properties"), "non-object type encountered")
	}

	isRequired := set(required...)

	for _, name := range sortedKeys(props) {
		if !has(isRequired, name) {
			continue
		}

		propPath := childPath(childPath(srcPath, "properties"), name)

		child, ok := props[name].(map[string]any)
		if !ok {
			return newStructuralError(propPath, "non-object type encountered")
		}

		if err := flatten(child, propPath, appendPath(objPath, name), flat); err != nil {
			return err
		}
	}

	return nil
}

// assertOperators copies type, pattern and enum constraints into entry. Any
// of them implies existence, so $exists is dropped when one is present.
func assertOperators(node, entry map[string]any) {
	asserted := false

	for key, op := range map[string]string{
		"bsonType": "$type",
		"pattern":  "$regex",
		"enum":     "$in",
	} {
		if v, ok := node[key]; ok {
			entry[op] = v
			asserted = true
		}
	}

	if asserted {
		delete(entry, "$exists")
	}
}

func flatEntry(flat map[string]any, path string) map[string]any {
	entry, ok := flat[path].(map[string]any)
	if !ok {
		entry = map[string]any{}
		flat[path] = entry
	}

	return entry
}

func requiredNames(node map[string]any, srcPath string) ([]string, error) {
	raw, ok := node["required"]
	if !ok {
		return nil, nil
	}

	path := childPath(srcPath, "required")

	list, ok := raw.([]any)
	if !ok {
		return nil, newStructuralError(path, "non-array type encountered")
	}

	names := make([]string, 0, len(list))

	for i, v := range list {
		name, ok := v.(string)
		if !ok {
			return nil, newStructuralError(indexPath(path, i), "non-string required field encountered")
		}

		names = append(names, name)
	}

	return names, nil
}
