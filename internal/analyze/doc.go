// Package analyze implements the type introspector for Go source.
//
// It uses golang.org/x/tools/go/packages with go/types to describe named
// struct types as target types (members, promotion through embedding,
// copy-with-update support) and named empty struct types as requesting
// containers.
//
// Key types:
//   - Analyzer: loads packages on demand and answers Describe / Container
//   - PackageInfo: name, directory and package-level identifiers of a loaded package
package analyze
