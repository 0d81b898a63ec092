// Package main provides the entry point of the shortcut CLI.
package main

import (
	"fmt"
	"os"

	"navshortcut/internal/cli/command"
)

func main() {
	if err := command.App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
