package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/gitaid/internal/buildinfo"
	"github.com/chmouel/gitaid/internal/cli"
	"github.com/chmouel/gitaid/internal/config"
	"github.com/chmouel/gitaid/internal/git"
	"github.com/chmouel/gitaid/internal/log"
	"github.com/chmouel/gitaid/internal/provenance"
	"github.com/chmouel/gitaid/internal/theme"
	"github.com/muesli/termenv"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd)) //nolint:gosec
}

// Run executes cmd with args and returns the process exit status.
func Run(ctx context.Context, cmd *urfavecli.Command, args []string) int {
	// -v belongs to --verbose
	urfavecli.VersionFlag = &urfavecli.BoolFlag{Name: "version", Usage: "print the version"}
	urfavecli.VersionPrinter = func(cmd *urfavecli.Command) {
		fmt.Fprint(cmd.Root().Writer, buildinfo.Describe(cmd.Root().Name))
	}

	err := cmd.Run(ctx, args)
	if closeErr := log.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", closeErr)
	}
	if err == nil {
		return 0
	}

	errOut := cmd.ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}
	var cmdErr *git.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Stderr != "" {
		// an interactive git already printed its own diagnostics
		fmt.Fprintf(errOut, "%s: %v\n", cmd.Name, err)
	}
	return ExitCode(err)
}

// ExitCode maps an error returned by a command to a process exit status:
// usage errors exit 2, failed git invocations exit with git's status and
// anything else exits 1.
func ExitCode(err error) int {
	var usage *cli.UsageError
	var cmdErr *git.CommandError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usage):
		return exitUsage
	case errors.As(err, &cmdErr) && cmdErr.ExitCode > 0:
		return cmdErr.ExitCode
	}
	return exitFailure
}

// setup configures debug logging and loads the layered configuration.
func setup(cmd *urfavecli.Command) (*config.AppConfig, error) {
	debugLog := cmd.String("debug-log")
	if debugLog != "" {
		setLogFile(debugLog)
	}

	cfg, err := config.Load(cmd.String("config-file"), "", cmd.StringSlice("config"))
	if err != nil {
		_ = log.SetFile("")
		return nil, &cli.UsageError{Msg: fmt.Sprintf("error loading config: %v", err), Err: err}
	}

	// no flag: the configured file, or drop what was buffered so far
	if debugLog == "" {
		setLogFile(cfg.DebugLog)
	}
	log.Printf("%s: theme=%s color=%s revision=%s", cmd.Name, cfg.Theme, cfg.Color, cfg.DefaultRevision)
	return cfg, nil
}

func setLogFile(path string) {
	if path != "" && path != log.StderrPath {
		if expanded, err := config.ExpandPath(path); err == nil {
			path = expanded
		}
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

// colorEnabled resolves the colour mode against the output stream.
func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(interface{ Fd() uintptr })
	return ok && isTerminal(f.Fd())
}

// markerFunc returns the marker decorator for the report, or nil for plain
// markers.
func markerFunc(cfg *config.AppConfig, out io.Writer) func(provenance.Kind) string {
	if !colorEnabled(cfg.Color, out) {
		return nil
	}
	if lipgloss.ColorProfile() == termenv.Ascii {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
	return theme.GetTheme(cfg.Theme).Marker
}
