// Package audit records confgen runs.
//
// Every generate, encrypt and decrypt invocation appends one JSON object to:
//
//	<user config dir>/confgen/audit.jsonl
//
// Entries hold the operation, template and output paths, the names of the
// encrypted fields, how the master secret was obtained and how many attempts
// validation took. Values, secrets and ciphertexts are never written.
//
// # Usage
//
//	entry := audit.LogWithUser("generate")
//	entry.OutputPath = outputPath
//	audit.Log(entry)
//
// Logging is best-effort and never fails the operation. ReadEntries skips
// malformed lines left by partial writes.
package audit
