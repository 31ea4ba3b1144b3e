package errors

import "errors"

// Kind is the category an error is reported under.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfigRead
	KindConfigWrite
	KindRootNotFound
	KindTargetNotFound
	KindPassphraseFileNotFound
	KindPassphraseNotFound
	KindEncrypt
	KindDecrypt
	KindUsage
)

// Exit codes returned by the trick binary.
const (
	ExitOK         = 0
	ExitClassified = 1
	ExitUnknown    = 2
)

var kindNames = map[Kind]string{
	KindUnknown:                "unknown",
	KindConfigRead:             "config-read",
	KindConfigWrite:            "config-write",
	KindRootNotFound:           "root-not-found",
	KindTargetNotFound:         "target-not-found",
	KindPassphraseFileNotFound: "passphrase-file-not-found",
	KindPassphraseNotFound:     "passphrase-not-found",
	KindEncrypt:                "encrypt",
	KindDecrypt:                "decrypt",
	KindUsage:                  "usage",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// usageErrors are classified errors caused by how the command was invoked.
var usageErrors = []error{
	ErrProjectAlreadyInitialized,
	ErrInvalidRootDirectory,
	ErrInvalidTargetName,
	ErrNoTargetSpecified,
	ErrNoFilesGiven,
	ErrInvalidUsage,
	ErrEmptyPassphrase,
	ErrPassphraseMismatch,
	ErrInvalidIterationCount,
	ErrNoFilesFound,
	ErrFileOutsideProject,
	ErrInvalidDateFormat,
}

// Classify returns the kind of err. Encrypt and decrypt are checked before
// the config kinds because a per-file failure may wrap an I/O cause.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	switch {
	case errors.Is(err, ErrEncryptFailed):
		return KindEncrypt
	case errors.Is(err, ErrDecryptFailed):
		return KindDecrypt
	case errors.Is(err, ErrConfigRead):
		return KindConfigRead
	case errors.Is(err, ErrConfigWrite):
		return KindConfigWrite
	case errors.Is(err, ErrRootNotFound):
		return KindRootNotFound
	case errors.Is(err, ErrTargetNotFound):
		return KindTargetNotFound
	case errors.Is(err, ErrPassphraseFileNotFound):
		return KindPassphraseFileNotFound
	case errors.Is(err, ErrPassphraseNotFound):
		return KindPassphraseNotFound
	}

	for _, usage := range usageErrors {
		if errors.Is(err, usage) {
			return KindUsage
		}
	}

	return KindUnknown
}

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if Classify(err) == KindUnknown {
		return ExitUnknown
	}
	return ExitClassified
}
