// Package main provides the CLI entrypoint for optics-generator.
//
// optics-generator is a Go codegen tool that:
//   - Parses Go packages (AST + go/types) to describe the requested structs
//   - Derives one typed lens or optional per eligible member
//   - Writes them as shared selectors or as methods of a requesting container
package main

import (
	"fmt"
	"os"

	"optics-generator/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
