package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/schemaconv/pkg/schemaconv"
	"github.com/macropower/schemaconv/pkg/schemaio"
)

// ConvertArgs holds the arguments for converting a schema.
type ConvertArgs struct {
	target      *string
	definitions *[]string
	inputFormat *string
	pointer     *string
	patch       *string
	*RootArgs
}

// NewConvertArgs creates a new [ConvertArgs].
func NewConvertArgs(args *RootArgs) *ConvertArgs {
	return &ConvertArgs{
		target:      new(string),
		definitions: new([]string),
		inputFormat: new(string),
		pointer:     new(string),
		patch:       new(string),
		RootArgs:    args,
	}
}

func (a *ConvertArgs) GetPointer() string {
	return *a.pointer
}

func (a *ConvertArgs) GetPatch() string {
	return *a.patch
}

func runConvert(cc *cobra.Command, args *ConvertArgs, input string) error {
	cfg := args.GetConfig()

	target, err := schemaconv.ParseTarget(cfg.Type)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	inFormat, err := schemaio.ParseFormat(cfg.InputFormat)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	outFormat, err := schemaio.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	var doc any
	if input == "" || input == schemaio.StdinName {
		doc, err = schemaio.Read(cc.InOrStdin(), schemaio.StdinName, inFormat)
	} else {
		doc, err = schemaio.ReadFile(input, inFormat)
	}

	if err != nil {
		return err
	}

	if ptr := args.GetPointer(); ptr != "" {
		doc, err = schemaio.Select(doc, ptr)
		if err != nil {
			return err
		}
	}

	if patchFile := args.GetPatch(); patchFile != "" {
		patch, err := schemaio.PatchFile(patchFile)
		if err != nil {
			return err
		}

		doc, err = schemaio.ApplyPatch(doc, patch)
		if err != nil {
			return err
		}
	}

	lib, err := schemaio.LoadDefinitions(cc.Context(), cfg.Definitions...)
	if err != nil {
		return err
	}

	slog.Info("converting schema",
		slog.String("input", input),
		slog.String("target", target.String()),
		slog.Int("definition_files", len(cfg.Definitions)),
	)

	result, err := schemaconv.Convert(doc, target, lib)
	if err != nil {
		return fmt.Errorf("convert schema: %w", err)
	}

	return writeResult(cc, args.RootArgs, result, outFormat)
}

// writeResult prints doc to stdout, or to the output file when one is set.
func writeResult(cc *cobra.Command, args *RootArgs, doc any, format schemaio.Format) error {
	out := args.GetOutput()
	if out == "" {
		return schemaio.Encode(cc.OutOrStdout(), doc, schemaio.OutputFormat(format, ""))
	}

	return schemaio.WriteFile(out, doc, schemaio.OutputFormat(format, out))
}
