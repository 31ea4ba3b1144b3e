// Package passphrase locates the passphrase that protects each target.
//
// Resolution order for a target:
//
//  1. The TRICK_PASSPHRASE_<TARGET> environment variable
//  2. The JSON map at passphrase_file_path, keyed by target name
//  3. The file <passphrase_directory>/<target>
//
// When the project config sets no directory, the user settings default is
// used. Values are whitespace-trimmed and are never logged.
package passphrase
