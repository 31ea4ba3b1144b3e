// Package secrets encrypts target files into the project store and restores
// them.
//
// # File Format
//
// Artifacts use the OpenSSL enc container, so a store can be read with
//
//	openssl enc -d -aes-256-cbc -pbkdf2 -iter N -md sha256 -in f.enc
//
// The layout is the literal "Salted__", an 8-byte random salt, then the
// AES-256-CBC ciphertext of the PKCS#7 padded plaintext. Key and IV are the
// first 32 and next 16 bytes of PBKDF2-HMAC-SHA256 over the passphrase and
// salt. Encryption is non-deterministic because the salt is random.
//
// CBC carries no authentication tag. A wrong passphrase is detected by the
// padding check, which misses roughly once in 256 attempts.
//
// # Store Layout
//
// A file tracked as config/app.env is stored at <store>/config/app.env.enc,
// where <store> is the root_directory of the project config.
//
// # Batches
//
// EncryptFiles and DecryptFiles process files in the order given and stop at
// the first failure. Files handled before the failure stay processed.
package secrets
