// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all of the cryptography of a vault file. It knows
// nothing about SQL or about the group/entry tree; it only derives, wraps
// and uses keys.
//
// Key schedule of a vault:
//
//	Salt, DEK = GenerateEncryptionSalt() + GenerateDEK()   (step 1, on create)
//	KEK       = GenerateKEK(password, salt)                (step 2)
//	EncDEK    = GetEncryptedDEK(DEK, KEK)                  (step 3, stored)
//	DEK       = DecryptDEK(EncDEK, KEK)                    (on open)
type KeyChainService interface {
	// GenerateEncryptionSalt returns 16 random bytes. The salt is stored in
	// clear in the vault so that equal passwords yield different KEKs.
	GenerateEncryptionSalt() ([]byte, error)

	// GenerateDEK returns a random 32-byte data-encryption key. The DEK
	// encrypts every group and entry row and is only stored wrapped.
	GenerateDEK() ([]byte, error)

	// GenerateKEK derives the key-encryption key from the vault password and
	// salt with Argon2id using the service's [KDFParams].
	GenerateKEK(password string, salt []byte) []byte

	// GetEncryptedDEK wraps DEK with KEK using AES-GCM and returns
	// nonce || ciphertext.
	GetEncryptedDEK(DEK, KEK []byte) ([]byte, error)

	// DecryptDEK unwraps the encrypted DEK using the KEK.
	// It expects the input blob to be in the format: nonce || ciphertext.
	// Returns [ErrDecrypt] if authentication fails (e.g., wrong password/KEK).
	DecryptDEK(encryptedDEK, KEK []byte) ([]byte, error)

	// EncryptData serializes the given value to JSON and encrypts it with the DEK.
	// Returns a base64-encoded blob (nonce || ciphertext).
	EncryptData(data any, DEK []byte) (string, error)

	// DecryptData decrypts a base64-encoded blob with the DEK and unmarshals
	// the result into the target pointer (same as json.Unmarshal).
	DecryptData(encryptedB64 string, DEK []byte, target any) error

	// Params returns the Argon2id parameters used by GenerateKEK.
	Params() KDFParams
}
