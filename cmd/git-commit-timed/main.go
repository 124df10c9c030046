// Package main is the entry point for git-commit-timed.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/chmouel/gitaid/internal/bootstrap"
	"github.com/chmouel/gitaid/internal/buildinfo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	buildinfo.Enrich()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := bootstrap.Run(ctx, bootstrap.CommitTimedCommand(), os.Args)
	stop()
	os.Exit(code)
}
