// Package command provides the command definitions of the shortcut CLI.
//
// The CLI works directly on the local contact store: it imports contacts, lists
// their addresses and creates navigation shortcuts, acting as the address picker
// when no reference is given.
package command

import (
	"fmt"
	"io"
	"os"

	domainerrors "navshortcut/internal/domain/errors"
	"navshortcut/internal/errors"

	"github.com/urfave/cli/v2"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "shortcut",
		Usage:     "Create navigation shortcuts for contact addresses",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags:     globalFlags(),
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Metadata:  map[string]any{},
		Commands: []*cli.Command{
			ImportCommand(),
			ListCommand(),
			CreateCommand(),
		},
		After: closePipeline,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config-dir",
			Usage: "Directory holding config.yaml, relative to the working directory",
		},
		&cli.StringFlag{
			Name:    "store",
			Aliases: []string{"s"},
			Usage:   "Contact database path (overrides store.path)",
			EnvVars: []string{"SHORTCUT_STORE"},
		},
		&cli.StringFlag{
			Name:  "locale",
			Usage: "Locale of address type labels (overrides label.locale)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
	}
}

// userError keeps the details of validation failures visible on the command line.
func userError(err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.Details() != "" {
		return errors.Errorf("%s: %s", appErr.Message(), appErr.Details())
	}

	return err
}

func writer(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}

	return os.Stdout
}
