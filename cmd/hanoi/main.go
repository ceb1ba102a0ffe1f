// Package main is the entry point for the hanoi terminal game.
package main

import (
	"os"

	"hanoi/cmd/hanoi/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand(cli.IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	cli.Execute(rootCmd)
}
