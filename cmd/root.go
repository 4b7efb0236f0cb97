package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mihirlaud/conseil/config"
	"github.com/mihirlaud/conseil/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "conseil",
		Usage:   "Turn Git commit diffs into editable markdown write-ups",
		Version: "0.2.0",
		Commands: []*cli.Command{
			CommitsCmd(),
			BuildCmd(),
			InitCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		// --set values are free text and may contain commas.
		DisableSliceFlagSeparator: true,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch or revision to start from (default: from config or HEAD)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) (output.OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "markdown", "md":
		return output.FormatMarkdown, nil
	case "console", "preview":
		return output.FormatConsole, nil
	case "json":
		return output.FormatJSON, nil
	case "csv":
		return output.FormatCSV, nil
	case "ci", "ndjson":
		return output.FormatCI, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected one of %v)", s, output.Formats)
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if branch := c.String("branch"); branch != "" {
		cfg.History.Branch = branch
	}
	if c.IsSet("limit") {
		cfg.History.MaxCommits = c.Int("limit")
	}
	if c.IsSet("context-lines") {
		cfg.Diff.ContextLines = c.Int("context-lines")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the text logger written to w. Debug output is enabled by --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
