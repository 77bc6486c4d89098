// Package cryptox implements the content cipher for journal entries and
// the credential digest for the journal password.
//
// Entries are sealed with AES-256-GCM under a key derived from a password
// via Argon2id. Every encryption uses a fresh random salt and nonce; both
// are stored alongside the ciphertext in a single opaque blob, so a blob
// is self-contained:
//
//	blob = salt (16 bytes) || nonce (12 bytes) || ciphertext
//
// When no user password is involved, a fixed fallback password keys the
// same transform. That mode obfuscates entries at rest but provides no
// real confidentiality since the fallback is embedded in the program.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/origami-app/origami/internal/common"
)

const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32

	saltLength  = 16
	nonceLength = 12
)

// fallbackMasterPassword keys entries stored without a user password.
const fallbackMasterPassword = "default_master_key_2024"

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
}

// EncryptText seals plaintext under the given password and returns the
// self-contained blob described in the package comment.
func EncryptText(plaintext, password string) ([]byte, error) {
	salt := common.GenerateRandByteArray(saltLength)
	key := deriveKey([]byte(password), salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(nonceLength)
	ciphertext := aesgcm.Seal(nil, nonce, []byte(plaintext), nil)

	blob := make([]byte, 0, saltLength+nonceLength+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)
	return blob, nil
}

// DecryptText opens a blob produced by EncryptText. A wrong password makes
// GCM authentication fail, which is reported as common.ErrDecrypt.
func DecryptText(blob []byte, password string) (string, error) {
	if len(blob) < saltLength+nonceLength {
		return "", fmt.Errorf("%w: blob too short", common.ErrDecrypt)
	}
	salt := blob[:saltLength]
	nonce := blob[saltLength : saltLength+nonceLength]
	ciphertext := blob[saltLength+nonceLength:]

	key := deriveKey([]byte(password), salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecrypt, err)
	}
	return string(plaintext), nil
}

// EncryptWithMasterKey seals plaintext under the fallback password.
func EncryptWithMasterKey(plaintext string) ([]byte, error) {
	return EncryptText(plaintext, fallbackMasterPassword)
}

// DecryptWithMasterKey opens a blob sealed under the fallback password.
func DecryptWithMasterKey(blob []byte) (string, error) {
	return DecryptText(blob, fallbackMasterPassword)
}

// HashPassword returns the hex-encoded SHA-256 digest of the password.
// This is the credential digest stored in settings, not an encryption key.
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}
