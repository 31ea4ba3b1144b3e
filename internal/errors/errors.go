package errors

import (
	"errors"
	"fmt"
)

// Config errors indicate the project configuration could not be read, written, or located.
var (
	// ErrConfigRead indicates the config file exists but could not be read or parsed.
	ErrConfigRead = errors.New("failed to read the configuration file")

	// ErrConfigWrite indicates the config file could not be written.
	ErrConfigWrite = errors.New("failed to write the configuration file")

	// ErrRootNotFound indicates no project root could be discovered.
	ErrRootNotFound = errors.New("project root not found")

	// ErrProjectAlreadyInitialized indicates a config file already exists at the project root.
	ErrProjectAlreadyInitialized = errors.New("project has already been initialized")

	// ErrInvalidRootDirectory indicates a store directory that is absolute or escapes the project.
	ErrInvalidRootDirectory = errors.New("root directory must be a relative path inside the project")
)

// Target errors indicate problems with target names or the target list.
var (
	// ErrTargetNotFound indicates the referenced target is not in the config.
	ErrTargetNotFound = errors.New("target not found")

	// ErrInvalidTargetName indicates a target name that cannot be stored.
	ErrInvalidTargetName = errors.New("invalid target name")

	// ErrNoTargetSpecified indicates no target was given and no default is set.
	ErrNoTargetSpecified = errors.New("no target given, and no default target is set")

	// ErrNoFilesGiven indicates a command that needs files received none.
	ErrNoFilesGiven = errors.New("no files given")

	// ErrInvalidUsage indicates bad command-line arguments or flags.
	ErrInvalidUsage = errors.New("invalid usage")
)

// Passphrase errors indicate the passphrase store could not provide a passphrase.
var (
	// ErrPassphraseFileNotFound indicates the passphrase file or directory entry is missing.
	ErrPassphraseFileNotFound = errors.New("passphrase file not found")

	// ErrPassphraseNotFound indicates the passphrase store has no usable entry for the target.
	ErrPassphraseNotFound = errors.New("passphrase not found")

	// ErrEmptyPassphrase indicates an attempt to store an empty passphrase.
	ErrEmptyPassphrase = errors.New("passphrase must not be empty")

	// ErrPassphraseMismatch indicates the confirmation prompt did not match.
	ErrPassphraseMismatch = errors.New("passphrases do not match")
)

// Cryptographic errors indicate failures during encryption or decryption operations.
var (
	// ErrEncryptFailed indicates file encryption failed.
	ErrEncryptFailed = errors.New("failed to encrypt file")

	// ErrDecryptFailed indicates file decryption failed.
	ErrDecryptFailed = errors.New("failed to decrypt file")

	// ErrWrongPassphrase indicates the ciphertext did not decrypt under the given passphrase.
	ErrWrongPassphrase = errors.New("bad decrypt")

	// ErrCorruptCiphertext indicates the ciphertext is not in the expected format.
	ErrCorruptCiphertext = errors.New("bad magic number")

	// ErrInvalidIterationCount indicates a non-positive PBKDF2 iteration count.
	ErrInvalidIterationCount = errors.New("iteration count must be a positive integer")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrFileOutsideProject indicates a file path resolves outside the project root.
	ErrFileOutsideProject = errors.New("file is outside the project root")

	// ErrInvalidDateFormat indicates a date filter could not be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// TargetNotFoundError reports a target name that is absent from the config.
type TargetNotFoundError struct {
	Name string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("Target not found: %s", e.Name)
}

func (e *TargetNotFoundError) Unwrap() error { return ErrTargetNotFound }

// RootNotFoundError reports the directory the root search started from.
type RootNotFoundError struct {
	Start string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("No project root found from %s", e.Start)
}

func (e *RootNotFoundError) Unwrap() error { return ErrRootNotFound }

// PassphraseFileNotFoundError reports the passphrase file or directory entry
// that was expected. Target is set when the lookup was for a known target.
type PassphraseFileNotFoundError struct {
	Path   string
	Target string
}

func (e *PassphraseFileNotFoundError) Error() string {
	return fmt.Sprintf("Passphrase file not found: %s", e.Path)
}

func (e *PassphraseFileNotFoundError) Unwrap() error { return ErrPassphraseFileNotFound }

// PassphraseNotFoundError reports a passphrase store that exists but has no entry for a target.
type PassphraseNotFoundError struct {
	Path   string
	Target string
}

func (e *PassphraseNotFoundError) Error() string {
	return fmt.Sprintf("Passphrase for target %s is not found in %s", e.Target, e.Path)
}

func (e *PassphraseNotFoundError) Unwrap() error { return ErrPassphraseNotFound }

// EncryptError reports a per-file encryption failure. Detail carries the
// underlying diagnostic and is empty when the source file does not exist.
type EncryptError struct {
	Path   string
	Detail string
	Err    error
}

func (e *EncryptError) Error() string {
	return fmt.Sprintf("Fail to encrypt source file: %s", e.Path)
}

func (e *EncryptError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEncryptFailed}
	}
	return []error{ErrEncryptFailed, e.Err}
}

// DecryptError reports a per-file decryption failure. Path is the encrypted artifact.
type DecryptError struct {
	Path   string
	Detail string
	Err    error
}

func (e *DecryptError) Error() string {
	return fmt.Sprintf("Fail to decrypt encrypted file: %s", e.Path)
}

func (e *DecryptError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDecryptFailed}
	}
	return []error{ErrDecryptFailed, e.Err}
}
