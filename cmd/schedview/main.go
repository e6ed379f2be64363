// Package main provides the entry point for the schedview CLI tool.
package main

import "github.com/umleo/schedview/cmd/schedview/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
