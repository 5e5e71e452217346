// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"SHARE_FILE",
	"SHARE_PASSWORD",
	"VAULT_PATH",
	"VAULT_PASSWORD",
	"TRUST_CERTIFICATE",
	"EXPORT_GROUP",
	"EXPORT_SIGNING_KEY",
	"EXPORT_SIGNER",
	"EXPORT_OVERWRITE",
	"KDF_TIME",
	"KDF_MEMORY",
	"KDF_THREADS",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"DRY_RUN",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"SHARE_FILE":        "/shares/team.share",
		"SHARE_PASSWORD":    "share-secret",
		"VAULT_PATH":        "/vaults/mine.db",
		"VAULT_PASSWORD":    "vault-secret",
		"TRUST_CERTIFICATE": "/keys/team.pem",

		"EXPORT_GROUP":       "Team/Ops",
		"EXPORT_SIGNING_KEY": "/keys/me.pem",
		"EXPORT_SIGNER":      "alice",
		"EXPORT_OVERWRITE":   "true",

		"KDF_TIME":    "3",
		"KDF_MEMORY":  "65536",
		"KDF_THREADS": "2",

		"LOG_LEVEL":  "debug",
		"LOG_FORMAT": "console",
		"DRY_RUN":    "true",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, Share{File: "/shares/team.share", Password: "share-secret"}, cfg.Share)
	assert.Equal(t, Vault{Path: "/vaults/mine.db", Password: "vault-secret"}, cfg.Vault)
	assert.Equal(t, "/keys/team.pem", cfg.TrustCertificate)
	assert.Equal(t, Export{Group: "Team/Ops", SigningKey: "/keys/me.pem", Signer: "alice", Overwrite: true}, cfg.Export)
	assert.Equal(t, KDF{Time: 3, Memory: 65536, Threads: 2}, cfg.KDF)
	assert.Equal(t, Log{Level: "debug", Format: "console"}, cfg.Log)
	assert.True(t, cfg.DryRun)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"VAULT_PATH": "/vaults/mine.db",
		"LOG_LEVEL":  "warn",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/vaults/mine.db", cfg.Vault.Path)
	assert.Empty(t, cfg.Vault.Password)
	assert.Empty(t, cfg.Share)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Zero(t, cfg.KDF)
	assert.False(t, cfg.DryRun)
}

func TestParseEnv_NoVariables(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non-numeric kdf time", key: "KDF_TIME", val: "fast"},
		{name: "kdf threads overflow", key: "KDF_THREADS", val: "300"},
		{name: "invalid bool", key: "DRY_RUN", val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every config variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		prev, ok := os.LookupEnv(k)
		require.NoError(t, os.Unsetenv(k))
		if ok {
			t.Cleanup(func() { _ = os.Setenv(k, prev) })
		}
	}
}
