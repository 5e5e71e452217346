// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"share": { "file": "/shares/team.share" },
		"vault": { "path": "/vaults/mine.db" },
		"trust_certificate": "/keys/team.pem",
		"export": {
			"group": "Team/Ops",
			"signing_key": "/keys/me.pem",
			"signer": "alice",
			"overwrite": true
		},
		"kdf": { "time": 2, "memory": 32768, "threads": 2 },
		"log": { "level": "debug", "format": "console" },
		"dry_run": true
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/shares/team.share", cfg.Share.File)
	assert.Equal(t, "/vaults/mine.db", cfg.Vault.Path)
	assert.Equal(t, "/keys/team.pem", cfg.TrustCertificate)
	assert.Equal(t, Export{Group: "Team/Ops", SigningKey: "/keys/me.pem", Signer: "alice", Overwrite: true}, cfg.Export)
	assert.Equal(t, KDF{Time: 2, Memory: 32768, Threads: 2}, cfg.KDF)
	assert.Equal(t, Log{Level: "debug", Format: "console"}, cfg.Log)
	assert.True(t, cfg.DryRun)

	// the JSON file never names another JSON file
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_PasswordsAreRejected(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"vault": {"path": "x.db", "password": "secret"}}`), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"vault": `), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_WrongType(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"kdf": {"threads": "four"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}
