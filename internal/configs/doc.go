// Package configs manages project and user configuration for trick.
//
// Configuration is stored at two levels:
//
//   - Project config: trick.config.json at the project root (targets,
//     store directory, passphrase location, defaults, KDF settings)
//   - User settings: <user config dir>/trick/config.toml (defaults used by
//     `trick init` and as the fallback passphrase directory)
//
// # Project Configuration
//
// The project config is pretty-printed JSON. Targets are an ordered JSON
// object so that listing and default processing follow declaration order.
// Load returns DefaultConfig when the file does not exist yet.
//
// Every command goes through Update, which loads the config, applies a
// Mutator, and saves only when the mutator reports a change. Update holds an
// exclusive file lock for the whole cycle, so concurrent trick processes
// serialize instead of losing writes. Save replaces the file atomically.
//
// # Target Registry
//
// Config methods implement the target operations: AddFiles, RemoveFiles,
// RemoveTarget, ListTargets, SetDefaults, AddDefault, RemoveDefault. Each
// mutating method reports whether the config changed.
//
// # Legacy Layout
//
// Configs written by early versions (targets as an array of
// {secret_name, files}, top-level iteration_count, default_secret_name) are
// converted in memory on load. The converted layout is written on the next
// change.
//
// # Project Root
//
// ResolveProject honors an explicit --root directory, and otherwise walks up
// from the working directory to the nearest directory containing
// trick.config.json or .git.
package configs
