package schemaconv

// Dialect selects the `alt_definitions` bucket a target reads from.
type Dialect string

const (
	// JSONDialect is used by the Draft-4 target.
	JSONDialect Dialect = "json"
	// MongoDialect is used by the MongoDB targets.
	MongoDialect Dialect = "mongodb"
)

const draft4SchemaURI = "http://json-schema.org/draft-04/schema#"

var (
	jsonSchemaTypes = set(
		"string",
		"number",
		"boolean",
		"null",
		"object",
		"array",
		"integer",
	)

	// numericAliases collapse into "number" in JSON Schema.
	numericAliases = set(
		"double",
		"int",
		"long",
		"decimal",
	)

	bsonTypes = set(
		"string",
		"number",
		"bool",
		"null",
		"object",
		"array",
		"int",
		"long",
		"double",
		"decimal",
		"date",
		"timestamp",
		"objectId",
		"binData",
	)

	// bsonAliases harmonize JSON Schema names with their BSON equivalents.
	bsonAliases = map[string]string{
		"integer": "int",
		"boolean": "bool",
	}
)

var builtinLibrary = Library{
	Definitions: map[string]any{
		"geoJson": map[string]any{
			"type":     "object",
			"required": []any{"type", "coordinates"},
			"properties": map[string]any{
				"type": map[string]any{
					"type": "string",
					"enum": []any{
						"Point",
						"LineString",
						"Polygon",
						"MultiPoint",
						"MultiLineString",
						"MultiPolygon",
					},
				},
				"coordinates": map[string]any{
					"type": "array",
				},
			},
		},
	},
	AltDefinitions: map[Dialect]map[string]any{
		JSONDialect: {
			"binData": map[string]any{
				"type":     "object",
				"required": []any{"$binary", "$type"},
				"properties": map[string]any{
					"$binary": map[string]any{
						"type":    "string",
						"pattern": "^[=0-9A-Za-z+/]*$",
					},
					"$type": map[string]any{
						"type":    "string",
						"pattern": "^[0-9A-Za-z]{1,2}$",
					},
				},
				"additionalProperties": false,
			},
			"date": map[string]any{
				"type":     "object",
				"required": []any{"$date"},
				"properties": map[string]any{
					"$date": map[string]any{
						"type":    "string",
						"pattern": `^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}(\.[0-9]{3})?Z$`,
					},
				},
				"additionalProperties": false,
			},
			"objectId": map[string]any{
				"type":     "object",
				"required": []any{"$oid"},
				"properties": map[string]any{
					"$oid": map[string]any{
						"type":    "string",
						"pattern": "^[0-9A-Fa-f]{24}$",
					},
				},
				"additionalProperties": false,
			},
		},
	},
}

// BuiltinLibrary returns a copy of the built-in definitions. The copy may be
// modified freely.
func BuiltinLibrary() *Library {
	return builtinLibrary.Clone()
}

func set(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

func has(s map[string]struct{}, name string) bool {
	_, ok := s[name]

	return ok
}
