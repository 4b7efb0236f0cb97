package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mihirlaud/conseil/internal/output"
)

func writeDocumentReport(c *cli.Context, ctx *CommandContext, format output.OutputFormat) error {
	opts := OutputOptions(c, ctx, format)
	report := &output.DocumentReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Document:    ctx.Session.Document(),
	}

	writer := output.NewDocumentWriter(opts.Format)
	if err := writer.Write(report, opts); err != nil {
		return err
	}

	if opts.OutputPath != "" {
		ctx.Logger.Debug("Wrote document", "path", opts.OutputPath, "format", opts.Format)
		color.New(color.FgGreen).Fprintf(c.App.ErrWriter, "Wrote %s\n", opts.OutputPath)
	}
	return nil
}

// OutputOptions creates OutputOptions from CLI flags. Markdown without an
// explicit --output goes to the configured export path; "-" forces stdout.
func OutputOptions(c *cli.Context, ctx *CommandContext, format output.OutputFormat) output.OutputOptions {
	path := c.String("output")
	switch {
	case path == "-":
		path = ""
	case path == "" && format == output.FormatMarkdown:
		path = ctx.Config.Export.Path
	}

	return output.OutputOptions{
		Format:     format,
		OutputPath: path,
		Stdout:     c.App.Writer,
	}
}
