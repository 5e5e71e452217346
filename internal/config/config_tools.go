// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-pass-share/internal/crypto"
	"github.com/MKhiriev/go-pass-share/internal/logger"
	"github.com/MKhiriev/go-pass-share/models"
)

// ImportConfig is the share-import view of [StructuredConfig].
type ImportConfig struct {
	SharePath     string
	SharePassword string
	VaultPath     string
	VaultPassword string
	TrustPath     string
	DryRun        bool
	Log           logger.Options
}

// ExportConfig is the share-export view of [StructuredConfig].
type ExportConfig struct {
	VaultPath      string
	VaultPassword  string
	SharePassword  string
	GroupPath      string
	SigningKeyPath string
	SignerName     string
	OutputPath     string
	Overwrite      bool
	KDF            crypto.KDFParams
	Log            logger.Options
}

// GetImportConfig loads the share-import configuration from the JSON file,
// the environment and args (without the program name), in ascending
// priority, and validates it.
func GetImportConfig(args []string) (*ImportConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(parseImportFlags, args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	if err = cfg.validateImport(); err != nil {
		return nil, err
	}

	return &ImportConfig{
		SharePath:     cfg.Share.File,
		SharePassword: cfg.Share.Password,
		VaultPath:     cfg.Vault.Path,
		VaultPassword: cfg.Vault.Password,
		TrustPath:     cfg.TrustCertificate,
		DryRun:        cfg.DryRun,
		Log:           logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format},
	}, nil
}

// GetExportConfig is the share-export counterpart of [GetImportConfig].
func GetExportConfig(args []string) (*ExportConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(parseExportFlags, args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	if err = cfg.validateExport(); err != nil {
		return nil, err
	}

	return &ExportConfig{
		VaultPath:      cfg.Vault.Path,
		VaultPassword:  cfg.Vault.Password,
		SharePassword:  cfg.Share.Password,
		GroupPath:      cfg.Export.Group,
		SigningKeyPath: cfg.Export.SigningKey,
		SignerName:     cfg.Export.Signer,
		OutputPath:     cfg.Share.File,
		Overwrite:      cfg.Export.Overwrite,
		KDF: crypto.KDFParams{
			Time:    cfg.KDF.Time,
			Memory:  cfg.KDF.Memory,
			Threads: cfg.KDF.Threads,
		},
		Log: logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format},
	}, nil
}

// Request builds the import request. An unset share password falls back
// to the vault password.
func (c *ImportConfig) Request() models.ImportRequest {
	sharePassword := c.SharePassword
	if sharePassword == "" {
		sharePassword = c.VaultPassword
	}

	return models.ImportRequest{
		SharePath:     c.SharePath,
		SharePassword: sharePassword,
		VaultPath:     c.VaultPath,
		VaultPassword: c.VaultPassword,
		TrustPath:     c.TrustPath,
		DryRun:        c.DryRun,
	}
}

// Request builds the export request. An unset share password falls back
// to the vault password.
func (c *ExportConfig) Request() models.ExportRequest {
	sharePassword := c.SharePassword
	if sharePassword == "" {
		sharePassword = c.VaultPassword
	}

	return models.ExportRequest{
		VaultPath:      c.VaultPath,
		VaultPassword:  c.VaultPassword,
		GroupPath:      c.GroupPath,
		SharePassword:  sharePassword,
		SigningKeyPath: c.SigningKeyPath,
		SignerName:     c.SignerName,
		OutputPath:     c.OutputPath,
		Overwrite:      c.Overwrite,
	}
}
