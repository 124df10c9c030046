// Package bootstrap wires the gitaid commands: flags, configuration, logging
// and exit codes shared by both binaries.
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/chmouel/gitaid/internal/cli"
	"github.com/chmouel/gitaid/internal/config"
	"github.com/chmouel/gitaid/internal/theme"
	urfavecli "github.com/urfave/cli/v3"
)

// commonFlags returns the flags both helpers accept.
// Note: --version is provided by urfave/cli through Command.Version.
func commonFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file (- for stderr)",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=gitaid.key=value",
		},
	}
}

func commitFlags() []urfavecli.Flag {
	return append(commonFlags(),
		&urfavecli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Usage:   "Also commit modified and deleted tracked files, like git commit -a",
		},
		&urfavecli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   "Commit message, passed to git commit -m",
		},
		&urfavecli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Print the git commit command instead of running it",
		},
		&urfavecli.BoolFlag{
			Name:  "utc",
			Usage: "Pass the commit date in UTC",
		},
	)
}

func mergeFlags() []urfavecli.Flag {
	return append(commonFlags(),
		&urfavecli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Also list unchanged files and one-sided deletions",
		},
		&urfavecli.StringFlag{
			Name:  "color",
			Usage: "Colour markers: auto, always or never",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Colour theme: " + strings.Join(theme.AvailableThemes(), ", "),
		},
		&urfavecli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "Browse the result interactively",
		},
	)
}

// applyMergeFlags overlays the merge-result flags on cfg. Flags left unset
// keep the configured value.
func applyMergeFlags(cfg *config.AppConfig, cmd *urfavecli.Command) error {
	if cmd.IsSet("verbose") {
		cfg.Verbose = cmd.Bool("verbose")
	}
	if cmd.IsSet("color") {
		mode := config.NormalizeColor(cmd.String("color"))
		if mode == "" {
			return &cli.UsageError{Msg: fmt.Sprintf("invalid --color %q: want auto, always or never", cmd.String("color"))}
		}
		cfg.Color = mode
	}
	if name := cmd.String("theme"); name != "" {
		normalized := config.NormalizeThemeName(name)
		if normalized == "" {
			return &cli.UsageError{Msg: fmt.Sprintf("unknown theme %q", name)}
		}
		cfg.Theme = normalized
	}
	return nil
}
