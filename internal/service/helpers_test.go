// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-share/internal/crypto"
	"github.com/MKhiriev/go-pass-share/internal/share"
	"github.com/MKhiriev/go-pass-share/internal/store"
	"github.com/MKhiriev/go-pass-share/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var (
	keysOnce   sync.Once
	trustedRSA *rsa.PrivateKey
	otherRSA   *rsa.PrivateKey
	keysError  error
)

func testKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PrivateKey) {
	t.Helper()
	keysOnce.Do(func() {
		trustedRSA, keysError = rsa.GenerateKey(rand.Reader, 2048)
		if keysError != nil {
			return
		}
		otherRSA, keysError = rsa.GenerateKey(rand.Reader, 2048)
	})
	require.NoError(t, keysError)
	return trustedRSA, otherRSA
}

func testVaults() *store.Vaults {
	return store.NewVaults(store.Options{KDF: crypto.KDFParams{Time: 1, Memory: 1024, Threads: 1}})
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writePublicKeyPEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return writeFile(t, "trusted.pem", pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func writePrivateKeyPEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	der := x509.MarshalPKCS1PrivateKey(key)
	return writeFile(t, "signer.pem", pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: der}))
}

// tree describes vault content: group name -> entries.
type tree map[string][]models.EntryFields

// newVaultFile creates a saved vault holding content below its root.
func newVaultFile(t *testing.T, password string, content tree) string {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "vault.db")
	v, err := testVaults().Create(ctx, path, password)
	require.NoError(t, err)
	defer v.Close()

	for name, entries := range content {
		g, err := v.CreateGroup(v.Root(), models.GroupFields{Name: name})
		require.NoError(t, err)
		for _, e := range entries {
			_, err = v.CreateEntry(g, e)
			require.NoError(t, err)
		}
	}
	require.NoError(t, v.Save(ctx))

	return path
}

// newShareFile builds a container whose payload is a vault with content,
// signed by key.
func newShareFile(t *testing.T, key *rsa.PrivateKey, password string, content tree) string {
	t.Helper()

	payload, err := os.ReadFile(newVaultFile(t, password, content))
	require.NoError(t, err)

	container, err := share.Seal(payload, share.NewSigner(key), "alice")
	require.NoError(t, err)

	return writeFile(t, "team.share", container)
}

func openVault(t *testing.T, path, password string) store.VaultRepository {
	t.Helper()
	v, err := testVaults().Open(context.Background(), path, password)
	require.NoError(t, err)
	t.Cleanup(func() { v.Close() })
	return v
}

func sampleShare() tree {
	return tree{
		"Group1": {
			{Title: "Entry1", Username: "user1", Password: "pass1", URL: "https://one"},
			{Title: "Entry2", Username: "user2", Password: "pass2"},
		},
		"Group2": {
			{Title: "Entry3", Username: "user3", Password: "pass3", Notes: "n3", Icon: 7},
		},
	}
}
