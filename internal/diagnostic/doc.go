// Package diagnostic provides structured errors, warnings and notes reported
// by the derivation engine.
//
// Every diagnostic carries a stable code, a message template with positional
// arguments, a severity and the source location supplied by the host.
//
// Codes:
//   - OPT0001: optionality-wrapped target type rejected
//   - OPT0002: target type does not support copy-with-update
//   - OPT0003: request malformed (container must be non-generic and static-only)
//   - OPT0004: requesting container's target type does not support copy-with-update
//   - OPT0005: target type could not be resolved
//   - OPT0006: target type cannot be named from the container's package
//   - OPT0100: target type has no eligible members (warning)
//   - OPT0101: duplicate request in one run (info)
//   - OPT0102: member skipped by the classifier (info)
//   - OPT0103: member skipped because its type cannot be named (warning)
package diagnostic
