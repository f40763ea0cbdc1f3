package schemaconv

import (
	"maps"
	"slices"
	"strconv"
)

// DeepCopy returns a copy of a schema tree that shares no containers with v.
// Scalars are returned as-is.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyObject(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = DeepCopy(e)
		}

		return out
	default:
		return v
	}
}

func deepCopyObject(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = DeepCopy(v)
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// childPath appends a key to a slash-separated source path.
func childPath(srcPath, key string) string {
	if srcPath == "" || srcPath[len(srcPath)-1] != '/' {
		srcPath += "/"
	}

	return srcPath + key
}

func indexPath(srcPath string, i int) string {
	return srcPath + "[" + strconv.Itoa(i) + "]"
}

// appendPath returns a new slice so sibling branches never share a backing
// array.
func appendPath(objPath []string, key string) []string {
	out := make([]string, len(objPath), len(objPath)+1)
	copy(out, objPath)

	return append(out, key)
}
