package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	kerrors "github.com/trick-cli/trick/internal/errors"
	"github.com/trick-cli/trick/internal/ui"
)

// renderError writes err as a user-facing message followed by any detail
// and hint lines.
func renderError(w io.Writer, err error) {
	var b strings.Builder
	b.WriteString(ui.Error.Sprint("✗") + " " + errorMessage(err) + "\n")

	for _, line := range errorDetails(err) {
		b.WriteString(ui.Indent(line, 2) + "\n")
	}
	for _, hint := range errorHints(err) {
		b.WriteString(ui.Info.Sprint("→") + " " + hint + "\n")
	}

	fmt.Fprint(w, b.String())
}

// errorMessage prefers the message of the innermost typed error so wrapping
// context such as "encrypt target db:" stays out of the headline.
func errorMessage(err error) string {
	var (
		encryptErr    *kerrors.EncryptError
		decryptErr    *kerrors.DecryptError
		targetErr     *kerrors.TargetNotFoundError
		rootErr       *kerrors.RootNotFoundError
		fileErr       *kerrors.PassphraseFileNotFoundError
		passphraseErr *kerrors.PassphraseNotFoundError
	)

	switch {
	case errors.As(err, &encryptErr):
		return encryptErr.Error()
	case errors.As(err, &decryptErr):
		return decryptErr.Error()
	case errors.As(err, &targetErr):
		return targetErr.Error()
	case errors.As(err, &rootErr):
		return rootErr.Error()
	case errors.As(err, &fileErr):
		return fileErr.Error()
	case errors.As(err, &passphraseErr):
		return passphraseErr.Error()
	}

	return err.Error()
}

func errorDetails(err error) []string {
	var encryptErr *kerrors.EncryptError
	if errors.As(err, &encryptErr) && encryptErr.Detail != "" {
		return strings.Split(strings.TrimRight(encryptErr.Detail, "\n"), "\n")
	}

	var decryptErr *kerrors.DecryptError
	if errors.As(err, &decryptErr) && decryptErr.Detail != "" {
		return strings.Split(strings.TrimRight(decryptErr.Detail, "\n"), "\n")
	}

	return nil
}

func errorHints(err error) []string {
	switch kerrors.Classify(err) {
	case kerrors.KindRootNotFound:
		return []string{"Run " + ui.Code.Sprint("trick init") + " to create a project here"}

	case kerrors.KindPassphraseFileNotFound, kerrors.KindPassphraseNotFound:
		return []string{"Run " + ui.Code.Sprint("trick set-passphrase "+passphraseTarget(err))}

	case kerrors.KindEncrypt:
		var encryptErr *kerrors.EncryptError
		if errors.As(err, &encryptErr) && encryptErr.Detail == "" {
			return []string{"Make sure the file exists and you have enough permission to access it."}
		}

	case kerrors.KindDecrypt:
		var decryptErr *kerrors.DecryptError
		if errors.As(err, &decryptErr) && decryptErr.Detail == "" {
			return []string{"Make sure the file exists and you have enough permission to access it."}
		}

	case kerrors.KindUsage:
		if errors.Is(err, kerrors.ErrNoTargetSpecified) {
			return []string{"Name a target, or run " + ui.Code.Sprint("trick set-default <target>")}
		}
	}

	return nil
}

func passphraseTarget(err error) string {
	var fileErr *kerrors.PassphraseFileNotFoundError
	if errors.As(err, &fileErr) && fileErr.Target != "" {
		return fileErr.Target
	}

	var passphraseErr *kerrors.PassphraseNotFoundError
	if errors.As(err, &passphraseErr) && passphraseErr.Target != "" {
		return passphraseErr.Target
	}

	return "<target>"
}
