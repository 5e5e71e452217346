// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ErrDecrypt is returned when an AES-GCM authentication tag does not match,
// which for a wrapped DEK almost always means a wrong password.
var ErrDecrypt = errors.New("decryption failed")

// KDFParams are the Argon2id tuning parameters of a vault. They are stored
// next to the salt so that a vault opens with the parameters it was
// created with.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultKDFParams are the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultKDFParams = KDFParams{
	Time:    1,
	Memory:  64 * 1024, // 64 MiB
	Threads: 4,
}

const keyLen = 32 // 256 bits

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	params KDFParams
}

// NewKeyChainService constructs a [KeyChainService] with [DefaultKDFParams].
func NewKeyChainService() KeyChainService {
	return NewKeyChainServiceWithParams(DefaultKDFParams)
}

// NewKeyChainServiceWithParams constructs a [KeyChainService] with the given
// Argon2id parameters. Zero fields fall back to [DefaultKDFParams].
func NewKeyChainServiceWithParams(params KDFParams) KeyChainService {
	if params.Time == 0 {
		params.Time = DefaultKDFParams.Time
	}
	if params.Memory == 0 {
		params.Memory = DefaultKDFParams.Memory
	}
	if params.Threads == 0 {
		params.Threads = DefaultKDFParams.Threads
	}
	return &keyChainService{params: params}
}

// Params implements [KeyChainService].
func (k *keyChainService) Params() KDFParams {
	return k.params
}

// GenerateEncryptionSalt implements [KeyChainService]. It reads 16 random
// bytes from the OS CSPRNG.
func (k *keyChainService) GenerateEncryptionSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateDEK implements [KeyChainService]. It reads 32 random bytes from
// the OS CSPRNG.
func (k *keyChainService) GenerateDEK() ([]byte, error) {
	dek := make([]byte, keyLen)
	if _, err := io.ReadFull(rand.Reader, dek); err != nil {
		return nil, err
	}
	return dek, nil
}

// GenerateKEK implements [KeyChainService]. The result exists only in memory
// and is never written to the vault.
func (k *keyChainService) GenerateKEK(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		k.params.Time,
		k.params.Memory,
		k.params.Threads,
		keyLen,
	)
}

// GetEncryptedDEK implements [KeyChainService]. A random 12-byte nonce is
// prepended to the ciphertext: blob = nonce ‖ ciphertext.
func (k *keyChainService) GetEncryptedDEK(DEK, KEK []byte) ([]byte, error) {
	return seal(KEK, DEK)
}

// DecryptDEK implements [KeyChainService]. It unwraps the blob produced by
// [keyChainService.GetEncryptedDEK].
func (k *keyChainService) DecryptDEK(encryptedDEK, KEK []byte) ([]byte, error) {
	return open(KEK, encryptedDEK)
}

// EncryptData implements [KeyChainService]. The output is a Base64
// (standard encoding) string of nonce (12 bytes) ‖ ciphertext.
func (k *keyChainService) EncryptData(data any, DEK []byte) (string, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	// 2. Encrypt: nonce || ciphertext
	blob, err := seal(DEK, plaintext)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptData implements [KeyChainService]. target must be a non-nil
// pointer, identical to the requirement of [encoding/json.Unmarshal].
func (k *keyChainService) DecryptData(encryptedB64 string, DEK []byte, target any) error {
	// 1. Decode base64 blob
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}

	// 2. Decrypt and verify auth tag
	plaintext, err := open(DEK, blob)
	if err != nil {
		return err
	}

	// 3. Unmarshal JSON into target
	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func seal(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return append(nonce, gcm.Seal(nil, nonce, plaintext, nil)...), nil
}

func open(key, blob []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	return plaintext, nil
}
