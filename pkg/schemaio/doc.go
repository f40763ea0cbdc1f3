// Package schemaio reads and writes the documents handled by schemaconv.
//
// Documents may be JSON or YAML, optionally gzip-compressed. Before
// conversion a document can be narrowed with a JSON pointer and adjusted
// with a JSON merge patch or an RFC 6902 JSON patch.
package schemaio
