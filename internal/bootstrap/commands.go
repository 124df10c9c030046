package bootstrap

import (
	"context"
	"os"

	"github.com/chmouel/gitaid/internal/app"
	"github.com/chmouel/gitaid/internal/buildinfo"
	"github.com/chmouel/gitaid/internal/cli"
	"github.com/chmouel/gitaid/internal/git"
	"github.com/chmouel/gitaid/internal/theme"
	urfavecli "github.com/urfave/cli/v3"
)

// CommitTimedCommand returns the git-commit-timed command.
func CommitTimedCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:                   "git-commit-timed",
		Usage:                  "Commit with the date of the most recently modified committed file",
		UsageText:              "git commit-timed [-a] [-m <msg>] [--dry-run] [--] [<file>...]",
		Version:                buildinfo.Version(),
		UseShortOptionHandling: true,
		HideHelpCommand:        true,
		Flags:                  commitFlags(),
		Action:                 runCommitTimed,
	}
}

func runCommitTimed(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	opts := cli.CommitOptions{
		All:    cmd.Bool("all"),
		Paths:  cmd.Args().Slice(),
		Prefix: os.Getenv("GIT_PREFIX"),
		UTC:    cfg.UTC || cmd.Bool("utc"),
		DryRun: cmd.Bool("dry-run"),
		Out:    cmd.Root().Writer,
	}
	if cmd.IsSet("message") {
		msg := cmd.String("message")
		opts.Message = &msg
	}
	return cli.CommitTimed(ctx, git.NewService(""), opts)
}

// MergeResultCommand returns the git-merge-result command.
func MergeResultCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:                   "git-merge-result",
		Usage:                  "Show which parent each file of a merge commit comes from",
		UsageText:              "git merge-result [-v] [-i] [--color=<when>] [<commit>]",
		ArgsUsage:              "[<commit>]",
		Version:                buildinfo.Version(),
		UseShortOptionHandling: true,
		HideHelpCommand:        true,
		Flags:                  mergeFlags(),
		Action:                 runMergeResult,
	}
}

func runMergeResult(ctx context.Context, cmd *urfavecli.Command) error {
	if cmd.NArg() > 1 {
		return &cli.UsageError{Msg: "at most one commit expected"}
	}
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := applyMergeFlags(cfg, cmd); err != nil {
		return err
	}

	rev := cfg.DefaultRevision
	if cmd.NArg() == 1 {
		rev = cmd.Args().First()
	}
	svc := git.NewService("")

	if cmd.Bool("interactive") {
		report, err := cli.AnalyzeMerge(ctx, svc, rev)
		if err != nil {
			return err
		}
		return app.Run(ctx, report, app.Options{
			Revision:  rev,
			Theme:     theme.GetTheme(cfg.Theme),
			ShowIcons: cfg.ShowIcons,
			Verbose:   cfg.Verbose,
		})
	}

	out := cmd.Root().Writer
	return cli.MergeResult(ctx, svc, cli.MergeOptions{
		Revision: rev,
		Verbose:  cfg.Verbose,
		Marker:   markerFunc(cfg, out),
		Out:      out,
	})
}
