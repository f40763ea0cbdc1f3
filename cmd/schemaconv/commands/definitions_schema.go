package commands

import (
	"fmt"

	invopopjsonschema "github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/macropower/schemaconv/pkg/schemaconv"
	"github.com/macropower/schemaconv/pkg/schemaio"
)

// NewDefinitionsSchemaCmd returns a command printing the JSON Schema of
// definitions files.
func NewDefinitionsSchemaCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "definitions-schema",
		Short: "Show the JSON Schema of definitions files",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			format, err := schemaio.ParseFormat(args.GetConfig().OutputFormat)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			return writeResult(cc, args, DefinitionsSchema(), format)
		},
	}
}

// DefinitionsSchema reflects the JSON Schema of [schemaconv.Library].
func DefinitionsSchema() *invopopjsonschema.Schema {
	r := &invopopjsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	s := r.Reflect(&schemaconv.Library{})
	s.Title = "schemaconv definitions"
	s.Description = "Named schema fragments that may be used as type names in a schema."

	return s
}
