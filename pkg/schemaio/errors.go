package schemaio

import (
	"errors"
)

var (
	// ErrRead indicates an error occurred while reading input.
	ErrRead = errors.New("read")

	// ErrDecode indicates the input could not be parsed.
	ErrDecode = errors.New("decode")

	// ErrEncode indicates the output could not be rendered.
	ErrEncode = errors.New("encode")

	// ErrWrite indicates an error occurred while writing output.
	ErrWrite = errors.New("write")

	// ErrPointer indicates a JSON pointer could not be resolved.
	ErrPointer = errors.New("resolve JSON pointer")

	// ErrPatch indicates a patch could not be applied.
	ErrPatch = errors.New("apply patch")

	// ErrInvalidFormat indicates an unsupported document format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrDefinitions indicates a definitions file could not be loaded.
	ErrDefinitions = errors.New("load definitions")
)
