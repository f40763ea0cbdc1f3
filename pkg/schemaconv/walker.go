package schemaconv

import (
	"maps"
)

// resolver maps a type token to the keys that replace it in the output.
type resolver interface {
	resolveType(token, srcPath string, objPath []string) (map[string]any, error)
}

// walker performs the structural descent shared by all targets.
type walker struct {
	r resolver
}

func (w *walker) convertObject(node any, srcPath string, objPath []string) (map[string]any, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, newStructuralError(srcPath, "non-object type encountered")
	}

	result := make(map[string]any, len(obj))

	// Keys contributed by the type come first so that sibling keywords
	// written next to it take precedence.
	if v, ok := obj["type"]; ok {
		path := childPath(srcPath, "type")

		token, ok := v.(string)
		if !ok {
			return nil, newStructuralError(path, "non-string type encountered")
		}

		resolved, err := w.r.resolveType(token, path, objPath)
		if err != nil {
			return nil, err
		}

		maps.Copy(result, resolved)
	}

	for _, k := range sortedKeys(obj) {
		v := obj[k]
		path := childPath(srcPath, k)

		var err error

		switch k {
		case "type":
			continue
		case "definitions", "properties":
			v, err = w.convertInnerType(v, path, objPath)
		case "allOf", "anyOf", "oneOf", "not":
			v, err = w.convertArray(v, path, objPath)
		case "items":
			v, err = w.convertObject(v, path, objPath)
		default:
			v = DeepCopy(v)
		}

		if err != nil {
			return nil, err
		}

		result[k] = v
	}

	return result, nil
}

func (w *walker) convertArray(node any, srcPath string, objPath []string) ([]any, error) {
	arr, ok := node.([]any)
	if !ok {
		return nil, newStructuralError(srcPath, "non-array type encountered")
	}

	result := make([]any, 0, len(arr))

	for i, v := range arr {
		converted, err := w.convertObject(v, indexPath(srcPath, i), objPath)
		if err != nil {
			return nil, err
		}

		result = append(result, converted)
	}

	return result, nil
}

func (w *walker) convertInnerType(node any, srcPath string, objPath []string) (map[string]any, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, newStructuralError(srcPath, "non-object type encountered")
	}

	result := make(map[string]any, len(obj))

	for _, k := range sortedKeys(obj) {
		converted, err := w.convertObject(obj[k], childPath(srcPath, k), appendPath(objPath, k))
		if err != nil {
			return nil, err
		}

		result[k] = converted
	}

	return result, nil
}
