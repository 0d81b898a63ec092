package command

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"navshortcut/internal/errors"

	"github.com/urfave/cli/v2"
)

// ListCommand returns the list command.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List the stored addresses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: table, json",
				Value:   "table",
			},
		},
		Action: listAddresses,
	}
}

func listAddresses(c *cli.Context) error {
	p, err := pipelineFrom(c)
	if err != nil {
		return err
	}

	summaries, err := p.addresses.ListAddresses(c.Context)
	if err != nil {
		return err
	}

	w := writer(c)
	switch c.String("output") {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return errors.WithStack(encoder.Encode(summaries))
	case "table":
	default:
		return errors.Errorf("unknown output format %q", c.String("output"))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "REF\tNAME\tTYPE\tADDRESS\tPHOTO")
	for _, s := range summaries {
		photo := "no"
		if s.HasPhoto {
			photo = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Ref, s.DisplayName, p.labels.TypeLabel(s.Type, s.Label), s.FormattedAddress, photo)
	}
	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintf(w, "\nTotal: %d addresses\n", len(summaries))

	return nil
}
