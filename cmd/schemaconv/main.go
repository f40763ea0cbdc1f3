package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/macropower/schemaconv/cmd/schemaconv/commands"
	"github.com/macropower/schemaconv/pkg/log"
)

const (
	cmdName = "schemaconv"

	shortDesc = "Convert JSON Schemas to JSON Schema Draft 4 or MongoDB validators."
	longDesc  = `Convert a JSON Schema to a JSON Schema Draft 4 document or a MongoDB validator.

The input schema may use MongoDB type names such as objectId, date or long,
and may use the name of any definition as a type. Definitions come from a
built-in library, from files given with --def, and from the schema itself.

Targets:
  draft4   JSON Schema Draft 4; definitions are referenced with $ref and
           unused definitions are removed.
  mongo36  A MongoDB 3.6 $jsonSchema validator; definitions are expanded.
  mongo32  A MongoDB 3.2 query filter built from the required fields.

When no input file is given, the schema is read from stdin.
`
)

func init() {
	slog.SetDefault(slog.New(log.CreateHandler(os.Stderr, slog.LevelWarn, log.TextFormat)))
}

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fd := os.Stderr.Fd()
		commands.PrintError(os.Stderr, err, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
		os.Exit(commands.ExitCode(err))
	}
}
