package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/macropower/schemaconv/internal/config"
	"github.com/macropower/schemaconv/pkg/log"
	"github.com/macropower/schemaconv/pkg/schemaconv"
	"github.com/macropower/schemaconv/pkg/schemaio"
	"github.com/macropower/schemaconv/pkg/version"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrConfig           = errors.New("load configuration")
)

const rootExample = `  # Convert a schema to JSON Schema Draft 4
  schemaconv schema.json

  # Produce a MongoDB 3.6 validator using extra definitions
  schemaconv -t mongo36 -d common.json -d mongo.json schema.json

  # Convert a schema embedded in another document, reading from stdin
  cat api.yaml | schemaconv -t mongo32 --pointer /components/schemas/User
`

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()
	convertArgs := NewConvertArgs(args)

	cmd := &cobra.Command{
		Use:           name + " [flags] [input file]",
		Short:         shortDesc,
		Long:          longDesc,
		Example:       rootExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
		Args: func(cc *cobra.Command, pArgs []string) error {
			if err := cobra.MaximumNArgs(1)(cc, pArgs); err != nil {
				return fmt.Errorf("%w: at most one input file can be provided: %w", ErrInvalidArgument, err)
			}

			return nil
		},
		RunE: func(cc *cobra.Command, pArgs []string) error {
			input := ""
			if len(pArgs) > 0 {
				input = pArgs[0]
			}

			return runConvert(cc, convertArgs, input)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	})

	pflags := cmd.PersistentFlags()
	pflags.StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	pflags.StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	pflags.StringVar(args.configFile, "config", "", "Read settings from this file (default .schemaconv.yaml)")
	pflags.StringVarP(args.output, "output", "o", "", "Write the result to this file instead of stdout")
	pflags.StringVar(args.outputFormat, "output_format", string(schemaio.FormatAuto),
		"Set the output format (auto, json, yaml)")
	pflags.StringVar(args.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	pflags.StringVar(args.memProfile, "memprofile", "", "Write a memory profile to this file")

	must(cmd.MarkPersistentFlagFilename("config", "yaml", "yml", "json", "toml"))
	must(cmd.MarkPersistentFlagFilename("output"))
	must(cmd.MarkPersistentFlagFilename("cpuprofile"))
	must(cmd.MarkPersistentFlagFilename("memprofile"))

	flags := cmd.Flags()
	flags.StringVarP(convertArgs.target, "type", "t", string(schemaconv.Draft4Target),
		"Set the target type (draft4, mongo32, mongo36)")
	flags.StringArrayVarP(convertArgs.definitions, "def", "d", nil, "Add a definitions file (repeatable)")
	flags.StringVar(convertArgs.inputFormat, "input_format", string(schemaio.FormatAuto),
		"Set the input format (auto, json, yaml)")
	flags.StringVar(convertArgs.pointer, "pointer", "", "Convert the sub-document at this JSON pointer")
	flags.StringVar(convertArgs.patch, "patch", "", "Apply a JSON merge patch or JSON patch file before converting")

	must(cmd.MarkFlagFilename("def", "json", "yaml", "yml"))
	must(cmd.MarkFlagFilename("patch", "json", "yaml", "yml"))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		cfg, err := config.Load(cc.Flags(), args.GetConfigFile())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}

		args.config = cfg

		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		if args.GetCPUProfile() != "" {
			f, err := os.Create(args.GetCPUProfile())
			if err != nil {
				return fmt.Errorf("failed to create CPU profile: %w", err)
			}

			err = pprof.StartCPUProfile(f)
			if err != nil {
				must(f.Close())

				return fmt.Errorf("failed to start CPU profile: %w", err)
			}
		}

		slog.Debug("ready to go", slog.String("command", cc.Name()))

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		slog.Debug("shutting down")

		if args.GetCPUProfile() != "" {
			pprof.StopCPUProfile()
		}

		if args.GetMemProfile() != "" {
			f, err := os.Create(args.GetMemProfile())
			if err != nil {
				return fmt.Errorf("failed to create memory profile: %w", err)
			}

			runtime.GC() //nolint:revive // Get up-to-date statistics for the profile.

			err = pprof.Lookup("allocs").WriteTo(f, 0)
			if err != nil {
				must(f.Close())

				return fmt.Errorf("failed to write memory profile: %w", err)
			}

			must(f.Close())
		}

		return nil
	}

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewBuiltinsCmd(args))
	cmd.AddCommand(NewDefinitionsSchemaCmd(args))

	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
