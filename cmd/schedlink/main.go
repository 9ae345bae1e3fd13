// Package main provides the entry point for the schedlink CLI tool.
package main

import (
	"context"
	"os"

	"github.com/schedlink/schedlink/cmd/schedlink/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)

	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
