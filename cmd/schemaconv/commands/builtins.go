package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/schemaconv/pkg/schemaconv"
	"github.com/macropower/schemaconv/pkg/schemaio"
)

const builtinsDesc = `Print the built-in definitions.

With --type, print the definitions available to that target instead, after
merging any definitions files given with --def.
`

// NewBuiltinsCmd returns the builtins command.
func NewBuiltinsCmd(arg *RootArgs) *cobra.Command {
	args := NewConvertArgs(arg)

	cmd := &cobra.Command{
		Use:   "builtins",
		Short: "Show the built-in definitions",
		Long:  builtinsDesc,
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			cfg := args.GetConfig()

			format, err := schemaio.ParseFormat(cfg.OutputFormat)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			if cfg.Type == "" {
				return writeResult(cc, arg, schemaconv.BuiltinLibrary(), format)
			}

			target, err := schemaconv.ParseTarget(cfg.Type)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			lib, err := schemaio.LoadDefinitions(cc.Context(), cfg.Definitions...)
			if err != nil {
				return err
			}

			defs := schemaconv.MergeDefinitions(target.Dialect(), schemaconv.BuiltinLibrary(), lib)

			return writeResult(cc, arg, defs, format)
		},
	}

	cmd.Flags().StringVarP(args.target, "type", "t", "", "Show the definitions available to this target")
	cmd.Flags().StringArrayVarP(args.definitions, "def", "d", nil, "Add a definitions file (repeatable)")
	must(cmd.MarkFlagFilename("def", "json", "yaml", "yml"))

	return cmd
}
