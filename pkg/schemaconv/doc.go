// Package schemaconv converts JSON Schema documents between dialects.
//
// The input is a Draft-4 schema in which the `type` keyword may also name
// MongoDB BSON types or reusable definitions. It can be converted into:
//   - A pruned, standards-compliant Draft-4 schema, where definitions are
//     referenced with `$ref` and unreachable definitions are removed.
//   - A MongoDB 3.6 `$jsonSchema` validator, where definitions are expanded
//     inline.
//   - A MongoDB 3.2 query-style validator, which flattens the required fields
//     of the schema into a single filter document.
//
// Schemas are generic trees as produced by [encoding/json]: objects are
// map[string]any, arrays are []any, and everything else is a scalar.
package schemaconv
