// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-share/internal/merge"
	"github.com/MKhiriev/go-pass-share/internal/share"
	"github.com/MKhiriev/go-pass-share/models"
)

func newTestExportService() ExportService {
	return NewExportService(testVaults(), merge.NewEngine(nil), nil)
}

// nestedVault creates a vault with Team/Ops below the root.
func nestedVault(t *testing.T, password string) string {
	t.Helper()
	ctx := context.Background()

	path := newVaultFile(t, password, tree{
		"Team":     {{Title: "Wiki", Username: "team", Password: "w"}},
		"Personal": {{Title: "Bank", Username: "me", Password: "secret"}},
	})

	v, err := testVaults().Open(ctx, path, password)
	require.NoError(t, err)
	defer v.Close()

	ops, err := v.CreateGroup(v.FindGroup(v.Root(), "Team"), models.GroupFields{Name: "Ops", Notes: "on call"})
	require.NoError(t, err)
	_, err = v.CreateEntry(ops, models.EntryFields{Title: "SSH", Username: "root", Password: "r00t"})
	require.NoError(t, err)
	require.NoError(t, v.Save(ctx))

	return path
}

func TestExport_ThenImportRoundTrip(t *testing.T) {
	signerKey, _ := testKeys(t)
	ctx := context.Background()

	output := filepath.Join(t.TempDir(), "team.share")
	exported, err := newTestExportService().Export(ctx, models.ExportRequest{
		VaultPath:      nestedVault(t, "vault-pw"),
		VaultPassword:  "vault-pw",
		GroupPath:      "Team",
		SharePassword:  "share-pw",
		SigningKeyPath: writePrivateKeyPEM(t, signerKey),
		SignerName:     "bob",
		OutputPath:     output,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, exported.EntriesExported)
	assert.Equal(t, share.NewTrustedKey(&signerKey.PublicKey).Fingerprint(), exported.KeyFingerprint)

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, int64(exported.Bytes), info.Size())

	target := newVaultFile(t, "mine", nil)
	imported, err := newTestImportService().Import(ctx, models.ImportRequest{
		SharePath:     output,
		SharePassword: "share-pw",
		VaultPath:     target,
		VaultPassword: "mine",
		TrustPath:     writePublicKeyPEM(t, signerKey),
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", imported.Signer)
	assert.Equal(t, 2, imported.EntriesImported)

	v := openVault(t, target, "mine")
	// the exported group's content lands directly below the root
	assert.NotNil(t, v.FindEntry(v.Root(), "Wiki", "team"))
	ops := v.FindGroup(v.Root(), "Ops")
	require.NotNil(t, ops)
	assert.Equal(t, "on call", ops.Notes)
	assert.Equal(t, "r00t", v.FindEntry(ops, "SSH", "root").Password)
	assert.Nil(t, v.FindGroup(v.Root(), "Personal"))
}

func TestExport_WholeVault(t *testing.T) {
	signerKey, _ := testKeys(t)

	result, err := newTestExportService().Export(context.Background(), models.ExportRequest{
		VaultPath:      nestedVault(t, "pw"),
		VaultPassword:  "pw",
		SharePassword:  "pw",
		SigningKeyPath: writePrivateKeyPEM(t, signerKey),
		OutputPath:     filepath.Join(t.TempDir(), "all.share"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.EntriesExported)
}

func TestExport_GroupNotFound(t *testing.T) {
	signerKey, _ := testKeys(t)
	output := filepath.Join(t.TempDir(), "x.share")

	_, err := newTestExportService().Export(context.Background(), models.ExportRequest{
		VaultPath:      nestedVault(t, "pw"),
		VaultPassword:  "pw",
		GroupPath:      "Team/Missing",
		SigningKeyPath: writePrivateKeyPEM(t, signerKey),
		OutputPath:     output,
	})
	requireStage(t, err, StageLocate)
	require.ErrorIs(t, err, ErrGroupPathNotFound)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_OutputExists(t *testing.T) {
	signerKey, _ := testKeys(t)
	output := writeFile(t, "existing.share", []byte("keep me"))

	req := models.ExportRequest{
		VaultPath:      nestedVault(t, "pw"),
		VaultPassword:  "pw",
		GroupPath:      "Team/Ops",
		SigningKeyPath: writePrivateKeyPEM(t, signerKey),
		OutputPath:     output,
	}

	_, err := newTestExportService().Export(context.Background(), req)
	requireStage(t, err, StageWrite)
	require.ErrorIs(t, err, ErrOutputExists)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))

	req.Overwrite = true
	result, err := newTestExportService().Export(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, result.EntriesExported)

	data, err = os.ReadFile(output)
	require.NoError(t, err)
	_, err = share.Extract(data)
	require.NoError(t, err)
}

func TestExport_BadSigningKey(t *testing.T) {
	_, err := newTestExportService().Export(context.Background(), models.ExportRequest{
		VaultPath:      nestedVault(t, "pw"),
		VaultPassword:  "pw",
		SigningKeyPath: writeFile(t, "junk.pem", []byte("not a key")),
		OutputPath:     filepath.Join(t.TempDir(), "x.share"),
	})
	requireStage(t, err, StageLoadKey)
	require.ErrorIs(t, err, share.ErrInvalidPrivateKey)
}

func TestExport_WrongVaultPassword(t *testing.T) {
	signerKey, _ := testKeys(t)

	_, err := newTestExportService().Export(context.Background(), models.ExportRequest{
		VaultPath:      nestedVault(t, "pw"),
		VaultPassword:  "nope",
		SigningKeyPath: writePrivateKeyPEM(t, signerKey),
		OutputPath:     filepath.Join(t.TempDir(), "x.share"),
	})
	requireStage(t, err, StageOpenSource)
}
