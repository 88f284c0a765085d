// Package emit assigns derived accessors to containers, names them and
// renders them as Go source.
//
// Two shapes exist:
//   - shared: every target type gets one exported selector variable
//     (LensOfPerson, OptionalOfPerson) holding one accessor field per member,
//     rendered into lens_of.gen.go / optional_of.gen.go of the target's package;
//   - nested: accessors become methods of a caller-designated empty struct
//     type, rendered into one file per target whose name is derived from a
//     stable hash of the qualified identities involved.
//
// Identifiers are escaped by a NamePolicy and kept unique per scope.
package emit
