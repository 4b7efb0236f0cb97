package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mihirlaud/conseil/internal/document"
)

// BuildCmd returns the build command.
func BuildCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "commit",
			Aliases: []string{"m"},
			Usage:   "Commit label as printed by the commits command (default: newest commit)",
		},
		&cli.StringSliceFlag{
			Name:  "set",
			Usage: "Set slot text as kind:N=text, N counting from 1 (can be specified multiple times)",
		},
		&cli.IntFlag{
			Name:  "context-lines",
			Usage: "Unchanged lines shown around each change",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (markdown, console, json, csv, ci)",
			Value:   "markdown",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path; markdown defaults to the configured export path, \"-\" is stdout",
		},
	)

	return &cli.Command{
		Name:   "build",
		Usage:  "Build the document for one commit and write it",
		Flags:  flags,
		Action: buildAction,
	}
}

func buildAction(c *cli.Context) error {
	format, err := getOutputFormat(c.String("format"))
	if err != nil {
		return err
	}

	edits := make([]slotEdit, 0, len(c.StringSlice("set")))
	for _, raw := range c.StringSlice("set") {
		edit, err := parseSlotEdit(raw)
		if err != nil {
			return err
		}
		edits = append(edits, edit)
	}

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	if !ctx.HasCommits() {
		return fmt.Errorf("no commits found in %s", ctx.RepoPath)
	}

	label := c.String("commit")
	if label == "" {
		label = ctx.Session.Ancestry()[0].Label
	}
	if err := ctx.Session.SelectCommit(label); err != nil {
		return fmt.Errorf("failed to build document: %w", err)
	}

	for _, e := range edits {
		if err := ctx.Session.EditSlot(e.Kind, e.Index, e.Text); err != nil {
			return fmt.Errorf("--set %s:%d: %w", e.Kind, e.Index+1, err)
		}
	}

	return writeDocumentReport(c, ctx, format)
}

// slotEdit is one parsed --set value. Index is zero-based.
type slotEdit struct {
	Kind  document.SlotKind
	Index int
	Text  string
}

// parseSlotEdit parses "kind:N=text" where N is one-based, matching the
// default "Heading 1" placeholder numbering.
func parseSlotEdit(s string) (slotEdit, error) {
	ref, text, ok := strings.Cut(s, "=")
	if !ok {
		return slotEdit{}, fmt.Errorf("invalid --set %q (expected kind:N=text)", s)
	}
	kindStr, numStr, ok := strings.Cut(ref, ":")
	if !ok {
		return slotEdit{}, fmt.Errorf("invalid --set %q (expected kind:N=text)", s)
	}

	kind, err := document.ParseSlotKind(strings.ToLower(strings.TrimSpace(kindStr)))
	if err != nil {
		return slotEdit{}, fmt.Errorf("invalid --set %q: %w", s, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil || n < 1 {
		return slotEdit{}, fmt.Errorf("invalid --set %q: slot number must be a positive integer", s)
	}

	return slotEdit{Kind: kind, Index: n - 1, Text: text}, nil
}
