// Package errors provides typed error values for the trick application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. Errors that
// need to carry data (a target name, a file path, a cipher diagnostic) are
// struct types that unwrap to the matching sentinel, so both errors.Is() and
// errors.As() work.
//
// # Error Kinds
//
// Every error is reported under one Kind:
//
//   - Config errors: ErrConfigRead, ErrConfigWrite, ErrRootNotFound
//   - Target errors: TargetNotFoundError
//   - Passphrase errors: PassphraseFileNotFoundError, PassphraseNotFoundError
//   - Crypto errors: EncryptError, DecryptError
//   - Usage errors: ErrNoTargetSpecified, ErrInvalidTargetName, and friends
//   - Anything else is KindUnknown
//
// # Exit Codes
//
// ExitCode maps an error to the process exit status: 0 for success, 1 for a
// classified error, and 2 for anything Classify does not recognise.
//
// # Usage
//
// Return errors from internal packages:
//
//	if !ok {
//	    return nil, &errors.TargetNotFoundError{Name: name}
//	}
//
// Handle errors in the CLI layer:
//
//	var notFound *kerrors.TargetNotFoundError
//	if errors.As(err, &notFound) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %v", errors.ErrConfigRead, err)
package errors
