// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package share

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var (
	keysOnce  sync.Once
	keyA      *rsa.PrivateKey
	keyB      *rsa.PrivateKey
	keysError error
)

// testKeys returns two distinct RSA key pairs shared by all tests of the
// package; generating 2048-bit keys per test is too slow.
func testKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PrivateKey) {
	t.Helper()
	keysOnce.Do(func() {
		keyA, keysError = rsa.GenerateKey(rand.Reader, 2048)
		if keysError != nil {
			return
		}
		keyB, keysError = rsa.GenerateKey(rand.Reader, 2048)
	})
	require.NoError(t, keysError)
	return keyA, keyB
}

func writePEM(t *testing.T, blockType string, der []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.pem")
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writePublicKeyPEM(t *testing.T, pub *rsa.PublicKey) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	return writePEM(t, "PUBLIC KEY", der)
}

// embeddedKey encodes the public half of priv the way share producers do.
func embeddedKey(t *testing.T, priv *rsa.PrivateKey) []byte {
	t.Helper()
	b, err := EncodeRSAKey(NewSigner(priv).PublicKey())
	require.NoError(t, err)
	return b
}
