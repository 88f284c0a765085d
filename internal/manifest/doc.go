// Package manifest provides the YAML schema, parsing and defaults of the
// derivation manifest (optics.yaml).
//
// # Schema Overview
//
//	version: "1"
//	packages:                # one pattern or a list
//	  - ./examples/people
//	output:
//	  dir: ""                # empty writes next to each package
//	  comments: true
//	derive:
//	  strict: false
//	  report_skipped: false
//	  report_duplicates: false
//	  warn_empty: true
//	requests:
//	  - type: optics-generator/examples/people.Person
//	  - type: optics-generator/examples/people.Person
//	    family: optional-owner
//	    container: optics-generator/examples/hr.staffLenses
//
// A request without a container uses the shared shape; family defaults to
// lens. Package patterns are resolved relative to the manifest's directory.
package manifest
