package schemaconv

import (
	"fmt"
	"strings"
)

// Target selects the output representation of a conversion.
type Target string

const (
	// Draft4Target produces a JSON Schema Draft 4 document.
	Draft4Target Target = "draft4"
	// Mongo32Target produces a MongoDB 3.2 query filter.
	Mongo32Target Target = "mongo32"
	// Mongo36Target produces a MongoDB 3.6 `$jsonSchema` validator.
	Mongo36Target Target = "mongo36"
)

// Targets lists every supported target.
var Targets = []Target{Draft4Target, Mongo32Target, Mongo36Target}

// ParseTarget returns the [Target] named by s.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Draft4Target, Mongo32Target, Mongo36Target:
		return t, nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownTarget, s)
}

// Dialect returns the alternate definitions bucket used by the target.
func (t Target) Dialect() Dialect {
	if t == Draft4Target {
		return JSONDialect
	}

	return MongoDialect
}

func (t Target) String() string {
	return string(t)
}
