package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// ImportCommand returns the import command.
func ImportCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import contacts and their addresses from a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Contacts YAML file",
				Required: true,
			},
		},
		Action: importContacts,
	}
}

func importContacts(c *cli.Context) error {
	contacts, err := ReadContactsFile(c.String("file"))
	if err != nil {
		return err
	}

	p, err := pipelineFrom(c)
	if err != nil {
		return err
	}

	refs, err := p.addresses.ImportContacts(c.Context, contacts)
	if err != nil {
		return userError(err)
	}

	w := writer(c)
	for _, ref := range refs {
		fmt.Fprintln(w, ref)
	}
	fmt.Fprintf(w, "\nImported %d contacts, %d addresses\n", len(contacts), len(refs))

	return nil
}
