package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	ExitOK = iota
	ExitError
	ExitUsage
)

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidArgument):
		return ExitUsage
	default:
		return ExitError
	}
}

// PrintError writes err to w, in red when colorize is set.
func PrintError(w io.Writer, err error, colorize bool) {
	prefix := color.New(color.FgRed, color.Bold)
	body := color.New(color.FgRed)

	if colorize {
		prefix.EnableColor()
		body.EnableColor()
	} else {
		prefix.DisableColor()
		body.DisableColor()
	}

	prefix.Fprint(w, "Error: ")
	body.Fprintln(w, strings.TrimLeft(err.Error(), "\n"))

	if errors.Is(err, ErrInvalidArgument) {
		fmt.Fprintln(w, "Run with --help for usage.")
	}
}
