package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"navshortcut/internal/domain/entity"
	"navshortcut/internal/errors"
	"navshortcut/internal/util"

	"github.com/urfave/cli/v2"
)

const (
	iconFileName     = "icon.png"
	shortcutFileName = "shortcut.json"
	qrCodeFileName   = "qrcode.png"
)

// CreateCommand returns the create command.
func CreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a navigation shortcut, prompting for the address when --ref is omitted",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "ref",
				Aliases: []string{"r"},
				Usage:   "Address reference, as printed by list",
			},
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"d"},
				Usage:    "Directory receiving icon.png and shortcut.json",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "qrcode",
				Usage: "Also write a QR code of the navigation URI",
			},
		},
		Action: createShortcut,
	}
}

// shortcutFile is the JSON document written next to the icon.
type shortcutFile struct {
	Ref         string              `json:"ref"`
	DisplayName *string             `json:"displayName"`
	Intent      entity.LaunchIntent `json:"intent"`
	Icon        iconFile            `json:"icon"`
}

type iconFile struct {
	File   string `json:"file"`
	Size   int    `json:"size"`
	SHA256 string `json:"sha256"`
}

func createShortcut(c *cli.Context) error {
	p, err := pipelineFrom(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	loopCtx, finish := context.WithCancel(ctx)
	defer finish()

	w := writer(c)
	outDir := c.String("out")

	// Both callbacks run on this goroutine inside p.loop.Run.
	var result error
	settled := false
	onCreated := func(ref string, payload *entity.ShortcutPayload) {
		settled = true
		result = writeShortcut(w, outDir, ref, payload)
		if result == nil && c.Bool("qrcode") {
			result = writeQRCode(ctx, p, w, outDir, ref)
		}
		finish()
	}
	onAborted := func() {
		settled = true
		fmt.Fprintln(w, "aborted")
		finish()
	}

	if ref := c.String("ref"); ref != "" {
		p.shortcuts.CreateNavigationShortcut(ctx, ref, onCreated)
	} else {
		picker := newPromptPicker(p.addresses, p.labels, c.App.Reader, w)
		if err := p.shortcuts.PickAndCreate(ctx, picker, onCreated, onAborted); err != nil {
			return err
		}
	}

	// From here on this goroutine is the interactive thread.
	if err := p.loop.Run(loopCtx); err != nil {
		return errors.Wrap(err, "interactive loop failed")
	}
	if !settled {
		return errors.New("interrupted before the shortcut was created")
	}

	return result
}

func writeShortcut(w io.Writer, outDir, ref string, payload *entity.ShortcutPayload) error {
	png, err := payload.Icon.PNG()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	iconPath := filepath.Join(outDir, iconFileName)
	if err := os.WriteFile(iconPath, png, 0o644); err != nil {
		return errors.Wrap(err, "failed to write icon")
	}

	doc, err := json.MarshalIndent(shortcutFile{
		Ref:         ref,
		DisplayName: payload.DisplayName,
		Intent:      payload.Intent,
		Icon: iconFile{
			File:   iconFileName,
			Size:   payload.Icon.Size(),
			SHA256: util.Checksum(png),
		},
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode shortcut")
	}
	if err := os.WriteFile(filepath.Join(outDir, shortcutFileName), append(doc, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "failed to write shortcut")
	}

	name := "(no name)"
	if payload.DisplayName != nil {
		name = *payload.DisplayName
	}
	fmt.Fprintf(w, "Created shortcut %q\n", name)
	fmt.Fprintf(w, "  intent: %s\n", payload.Intent.URI)
	fmt.Fprintf(w, "  icon:   %s (%dpx, %s)\n", iconPath, payload.Icon.Size(), util.FormatBytes(int64(len(png))))

	return nil
}

func writeQRCode(ctx context.Context, p *pipeline, w io.Writer, outDir, ref string) error {
	png, err := p.addresses.NavigationQRCode(ctx, ref)
	if err != nil {
		return userError(err)
	}

	qrPath := filepath.Join(outDir, qrCodeFileName)
	if err := os.WriteFile(qrPath, png, 0o644); err != nil {
		return errors.Wrap(err, "failed to write QR code")
	}
	fmt.Fprintf(w, "  qrcode: %s\n", qrPath)

	return nil
}
