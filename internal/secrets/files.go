package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/trick-cli/trick/internal/errors"
	"github.com/trick-cli/trick/internal/utils"
)

// EncryptFile encrypts src into the artifact at dest, creating the parent
// directory of dest when needed.
func EncryptFile(src, dest, passphrase string, iterations int) error {
	plaintext, err := os.ReadFile(src)
	if err != nil {
		encryptErr := &kerrors.EncryptError{Path: src, Err: err}
		if !os.IsNotExist(err) {
			encryptErr.Detail = err.Error()
		}
		return encryptErr
	}

	ciphertext, err := Encrypt(plaintext, passphrase, iterations)
	if err != nil {
		return &kerrors.EncryptError{Path: src, Detail: err.Error(), Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return &kerrors.EncryptError{Path: src, Detail: err.Error(), Err: err}
	}

	// #nosec G306 -- artifacts are ciphertext meant to be committed.
	if err := utils.WriteFileAtomic(dest, ciphertext, 0644); err != nil {
		return &kerrors.EncryptError{Path: src, Detail: fmt.Sprintf("writing %s: %v", dest, err), Err: err}
	}

	return nil
}

// DecryptFile restores src from the artifact at dest. The restored file is
// readable by its owner only.
func DecryptFile(src, dest, passphrase string, iterations int) error {
	ciphertext, err := os.ReadFile(dest)
	if err != nil {
		decryptErr := &kerrors.DecryptError{Path: dest, Err: err}
		if !os.IsNotExist(err) {
			decryptErr.Detail = err.Error()
		}
		return decryptErr
	}

	plaintext, err := Decrypt(ciphertext, passphrase, iterations)
	if err != nil {
		return &kerrors.DecryptError{Path: dest, Detail: cipherDetail(err), Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(src), 0755); err != nil {
		return &kerrors.DecryptError{Path: dest, Detail: err.Error(), Err: err}
	}

	if err := utils.WriteFileAtomic(src, plaintext, 0600); err != nil {
		return &kerrors.DecryptError{Path: dest, Detail: fmt.Sprintf("writing %s: %v", src, err), Err: err}
	}

	return nil
}

// cipherDetail reduces cipher errors to the short diagnostic openssl prints.
func cipherDetail(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrWrongPassphrase):
		return kerrors.ErrWrongPassphrase.Error()
	case errors.Is(err, kerrors.ErrCorruptCiphertext):
		return kerrors.ErrCorruptCiphertext.Error()
	default:
		return err.Error()
	}
}
