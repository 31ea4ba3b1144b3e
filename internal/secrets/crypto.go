package secrets

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	kerrors "github.com/trick-cli/trick/internal/errors"
)

const (
	saltMagic = "Salted__"
	saltSize  = 8
	keySize   = 32
)

// randReader supplies salts. Tests replace it to get reproducible output.
var randReader io.Reader = rand.Reader

// deriveKeyIV returns the AES-256 key and CBC IV for passphrase and salt.
func deriveKeyIV(passphrase string, salt []byte, iterations int) (key, iv []byte) {
	material := pbkdf2.Key([]byte(passphrase), salt, iterations, keySize+aes.BlockSize, sha256.New)
	return material[:keySize], material[keySize:]
}

// Encrypt seals plaintext in the OpenSSL salted container.
func Encrypt(plaintext []byte, passphrase string, iterations int) ([]byte, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: got %d", kerrors.ErrInvalidIterationCount, iterations)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key, iv := deriveKeyIV(passphrase, salt, iterations)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	padded := pad(plaintext)
	out := make([]byte, len(saltMagic)+saltSize+len(padded))
	copy(out, saltMagic)
	copy(out[len(saltMagic):], salt)

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[len(saltMagic)+saltSize:], padded)
	return out, nil
}

// Decrypt opens a container produced by Encrypt or by openssl enc. It fails
// with ErrCorruptCiphertext when the data is not a salted container and with
// ErrWrongPassphrase when the padding does not check out.
func Decrypt(data []byte, passphrase string, iterations int) ([]byte, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: got %d", kerrors.ErrInvalidIterationCount, iterations)
	}

	headerSize := len(saltMagic) + saltSize
	if len(data) < headerSize || !bytes.Equal(data[:len(saltMagic)], []byte(saltMagic)) {
		return nil, kerrors.ErrCorruptCiphertext
	}

	body := data[headerSize:]
	if len(body) == 0 || len(body)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size", kerrors.ErrCorruptCiphertext, len(body))
	}

	key, iv := deriveKeyIV(passphrase, data[len(saltMagic):headerSize], iterations)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, body)

	return unpad(plaintext)
}

func pad(data []byte) []byte {
	n := aes.BlockSize - len(data)%aes.BlockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func unpad(data []byte) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, kerrors.ErrWrongPassphrase
	}

	want := bytes.Repeat([]byte{byte(n)}, n)
	if subtle.ConstantTimeCompare(data[len(data)-n:], want) != 1 {
		return nil, kerrors.ErrWrongPassphrase
	}

	return data[:len(data)-n], nil
}
