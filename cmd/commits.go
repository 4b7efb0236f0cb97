package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// CommitsCmd returns the commits command.
func CommitsCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Maximum number of commits to list (0 = all)",
		},
		&cli.BoolFlag{
			Name:  "ids",
			Usage: "Print the full commit id before each label",
		},
	)

	return &cli.Command{
		Name:   "commits",
		Usage:  "List first-parent history as selectable commit labels",
		Flags:  flags,
		Action: commitsAction,
	}
}

func commitsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasCommits() {
		fmt.Fprintln(c.App.Writer, "No commits found.")
		return nil
	}

	id := color.New(color.FgYellow)
	for _, ref := range ctx.Session.Ancestry() {
		if c.Bool("ids") {
			id.Fprintf(c.App.Writer, "%s ", ref.ID)
		}
		fmt.Fprintln(c.App.Writer, ref.Label)
	}
	return nil
}
