// Package utils provides shared helpers for confgen.
//
// # Filesystem Utilities
//
//   - FileExists: existence check that errs on the side of "exists"
//   - EnsureParentDir: creates the directory for an output file
//   - WriteFileAtomic: temp file + rename, so output appears only on success
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//
// # I/O Utilities
//
//   - ReadStdin, StdinIsPiped: piped input for the value commands
//
// # Terminal Utilities
//
//   - ReadPassphrase: non-echoing read used by masked prompts
package utils
