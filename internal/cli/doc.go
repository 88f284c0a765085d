// Package cli implements the optics-generator command line.
//
// Commands:
//   - gen: derive, render and write accessors for every manifest request
//   - check: render without writing and report stale or missing files
//   - list: print the derived accessors with their declaration paths
//   - init: write a manifest for the given types
//
// Every command accepts --format text|json. JSON responses carry the
// derivation run identity so output of concurrent runs can be told apart.
package cli
