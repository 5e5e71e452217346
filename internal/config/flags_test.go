// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── parseImportFlags ──────────────────────────────────────────────────────────

func TestParseImportFlags_Positionals(t *testing.T) {
	cfg, err := parseImportFlags([]string{"team.share", "mine.db", "team.pem"})
	require.NoError(t, err)

	assert.Equal(t, "team.share", cfg.Share.File)
	assert.Equal(t, "mine.db", cfg.Vault.Path)
	assert.Equal(t, "team.pem", cfg.TrustCertificate)
	assert.Empty(t, cfg.Vault.Password)
	assert.False(t, cfg.DryRun)
}

func TestParseImportFlags_FlagsAfterPositionals(t *testing.T) {
	cfg, err := parseImportFlags([]string{
		"team.share", "--password", "secret", "mine.db", "team.pem", "--share-password", "other", "-dry-run",
	})
	require.NoError(t, err)

	assert.Equal(t, "team.share", cfg.Share.File)
	assert.Equal(t, "mine.db", cfg.Vault.Path)
	assert.Equal(t, "team.pem", cfg.TrustCertificate)
	assert.Equal(t, "secret", cfg.Vault.Password)
	assert.Equal(t, "other", cfg.Share.Password)
	assert.True(t, cfg.DryRun)
}

func TestParseImportFlags_CommonFlags(t *testing.T) {
	cfg, err := parseImportFlags([]string{"-c", "cfg.json", "-log-level", "debug", "-log-format", "console", "-p", "pw"})
	require.NoError(t, err)

	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, Log{Level: "debug", Format: "console"}, cfg.Log)
	assert.Equal(t, "pw", cfg.Vault.Password)
	assert.Empty(t, cfg.Share.File)
}

func TestParseImportFlags_TooManyArguments(t *testing.T) {
	_, err := parseImportFlags([]string{"a", "b", "c", "d"})
	require.ErrorIs(t, err, ErrTooManyArguments)
}

func TestParseImportFlags_UnknownFlag(t *testing.T) {
	_, err := parseImportFlags([]string{"-no-such-flag"})
	require.Error(t, err)
}

func TestParseImportFlags_Help(t *testing.T) {
	_, err := parseImportFlags([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

// ── parseExportFlags ──────────────────────────────────────────────────────────

func TestParseExportFlags_AllFields(t *testing.T) {
	cfg, err := parseExportFlags([]string{
		"mine.db", "out.share",
		"-g", "Team/Ops",
		"-k", "me.pem",
		"-signer", "alice",
		"-p", "vault-pw",
		"-share-password", "share-pw",
		"-overwrite",
		"-kdf-time", "2",
		"-kdf-memory", "2048",
		"-kdf-threads", "1",
	})
	require.NoError(t, err)

	assert.Equal(t, "mine.db", cfg.Vault.Path)
	assert.Equal(t, "out.share", cfg.Share.File)
	assert.Equal(t, Export{Group: "Team/Ops", SigningKey: "me.pem", Signer: "alice", Overwrite: true}, cfg.Export)
	assert.Equal(t, "vault-pw", cfg.Vault.Password)
	assert.Equal(t, "share-pw", cfg.Share.Password)
	assert.Equal(t, KDF{Time: 2, Memory: 2048, Threads: 1}, cfg.KDF)
}

func TestParseExportFlags_LongAliases(t *testing.T) {
	cfg, err := parseExportFlags([]string{"-group", "Team", "-signing-key", "k.pem", "-password", "pw", "mine.db"})
	require.NoError(t, err)

	assert.Equal(t, "Team", cfg.Export.Group)
	assert.Equal(t, "k.pem", cfg.Export.SigningKey)
	assert.Equal(t, "pw", cfg.Vault.Password)
	assert.Equal(t, "mine.db", cfg.Vault.Path)
	assert.Empty(t, cfg.Share.File)
}

func TestParseExportFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "too many positionals", args: []string{"a", "b", "c"}},
		{name: "threads overflow", args: []string{"-kdf-threads", "256"}},
		{name: "non-numeric memory", args: []string{"-kdf-memory", "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseExportFlags(tt.args)
			require.Error(t, err)
		})
	}
}
