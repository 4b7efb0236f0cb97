package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mihirlaud/conseil/config"
)

// InitCmd returns the init command.
func InitCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write the default configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "Destination (.json, .yaml or .yml)",
				Value: config.DefaultPath,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: initAction,
	}
}

func initAction(c *cli.Context) error {
	path := c.String("path")

	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	color.New(color.FgGreen).Fprintf(c.App.Writer, "Wrote %s\n", path)
	return nil
}
