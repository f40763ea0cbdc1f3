package schemaconv

import (
	"errors"
	"fmt"
)

var (
	// ErrStructural indicates a schema keyword holds a value of the wrong shape.
	ErrStructural = errors.New("invalid schema structure")

	// ErrUnknownType indicates a type token could not be resolved.
	ErrUnknownType = errors.New("unrecognized type")

	// ErrUnknownTarget indicates an unsupported conversion target.
	ErrUnknownTarget = errors.New("unrecognized target type")
)

// StructuralError is returned when the input does not match the shape a
// schema keyword requires, e.g. `items` is not an object.
type StructuralError struct {
	// Path is the slash-separated location in the source document.
	Path string
	Msg  string
}

func newStructuralError(path, format string, args ...any) *StructuralError {
	return &StructuralError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s when parsing %s", e.Msg, e.Path)
}

func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}

// UnknownTypeError is returned when a type token is neither a primitive type,
// a type native to the target, nor the name of a known definition.
type UnknownTypeError struct {
	TypeName string
	Path     string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s %q encountered when parsing %s", ErrUnknownType, e.TypeName, e.Path)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}
