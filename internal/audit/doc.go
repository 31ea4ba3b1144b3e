// Package audit records what trick did to a project.
//
// Every command that changes the config or touches the store appends one
// entry to a JSON Lines file inside the store directory:
//
//	.trick/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - OS user name
//   - Operation name
//   - Targets and files involved, when any
//
// # Usage
//
//	entry := audit.NewEntry("encrypt")
//	entry.Targets = []string{"db"}
//	entry.Files = encrypted
//	audit.Log(project.AuditLogPath(config), entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries to parse the audit log for display. Malformed entries are
// silently skipped to handle partial writes.
package audit
