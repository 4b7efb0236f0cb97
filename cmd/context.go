package cmd

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/mihirlaud/conseil/config"
	"github.com/mihirlaud/conseil/internal/document"
	"github.com/mihirlaud/conseil/internal/git"
)

// CommandContext holds common state for command execution.
// It loads configuration and opens the repository into a session.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Logger   *slog.Logger
	Session  *document.Session
}

// NewCommandContext creates a context from CLI flags.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logger := newLogger(c.App.ErrWriter, c.Bool("verbose"))
	repoPath := c.String("repo")

	session := document.NewSession(
		document.GoGitOpener(git.OpenOptions{
			Branch:       cfg.History.Branch,
			ContextLines: cfg.Diff.ContextLines,
			Include:      cfg.Filters.Include,
			Exclude:      cfg.Filters.Exclude,
		}),
		document.SessionOptions{
			Template: templateFromConfig(cfg),
			Walk:     git.WalkOptions{MaxCommits: cfg.History.MaxCommits},
			Logger:   logger,
		},
	)

	if err := session.OpenRepository(repoPath); err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Logger:   logger,
		Session:  session,
	}, nil
}

// HasCommits returns true if the walk found any commits.
func (ctx *CommandContext) HasCommits() bool {
	return len(ctx.Session.Ancestry()) > 0
}

func templateFromConfig(cfg *config.Config) document.Template {
	return document.NewTemplate(cfg.Intro.Content, cfg.Hunk.Content, cfg.Outro.Content)
}
