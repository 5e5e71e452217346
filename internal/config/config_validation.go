// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// validateImport reports every missing import setting at once.
func (cfg *StructuredConfig) validateImport() error {
	var errs []error

	if strings.TrimSpace(cfg.Share.File) == "" {
		errs = append(errs, ErrMissingShareFile)
	}
	if strings.TrimSpace(cfg.Vault.Path) == "" {
		errs = append(errs, ErrMissingVaultPath)
	}
	if strings.TrimSpace(cfg.TrustCertificate) == "" {
		errs = append(errs, ErrMissingTrustCertificate)
	}

	return errors.Join(append(errs, cfg.Log.validate())...)
}

// validateExport reports every missing export setting at once.
func (cfg *StructuredConfig) validateExport() error {
	var errs []error

	if strings.TrimSpace(cfg.Vault.Path) == "" {
		errs = append(errs, ErrMissingVaultPath)
	}
	if strings.TrimSpace(cfg.Share.File) == "" {
		errs = append(errs, ErrMissingOutput)
	}
	if strings.TrimSpace(cfg.Export.SigningKey) == "" {
		errs = append(errs, ErrMissingSigningKey)
	}

	return errors.Join(append(errs, cfg.Log.validate())...)
}

func (l Log) validate() error {
	if l.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(l.Level)); err != nil {
			return ErrInvalidLogConfigs
		}
	}

	switch strings.ToLower(l.Format) {
	case "", "json", "console":
		return nil
	default:
		return ErrInvalidLogConfigs
	}
}
