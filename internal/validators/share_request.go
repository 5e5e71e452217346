// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pass-share/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldSharePath targets the share container path.
	FieldSharePath = "share_path"

	// FieldVaultPath targets the vault file path.
	FieldVaultPath = "vault_path"

	// FieldTrustPath targets the trusted certificate path of an import.
	FieldTrustPath = "trust_path"

	// FieldSigningKeyPath targets the private key path of an export.
	FieldSigningKeyPath = "signing_key_path"

	// FieldOutputPath targets the container path written by an export.
	FieldOutputPath = "output_path"

	// FieldGroupPath targets the exported group path.
	FieldGroupPath = "group_path"

	// FieldDistinctFiles requires that the vault is not also the share
	// container.
	FieldDistinctFiles = "distinct_files"
)

// ShareRequestValidator validates [models.ImportRequest] and
// [models.ExportRequest] values (or pointers to them).
type ShareRequestValidator struct {
}

func NewShareRequestValidator() Validator {
	return &ShareRequestValidator{}
}

func (v *ShareRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ImportRequest:
		return v.validateImportRequest(ctx, value, fields...)
	case *models.ImportRequest:
		return v.validateImportRequest(ctx, *value, fields...)

	case models.ExportRequest:
		return v.validateExportRequest(ctx, value, fields...)
	case *models.ExportRequest:
		return v.validateExportRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateImportRequest checks by default: SharePath, VaultPath, TrustPath
// and that the share is not the vault itself. Passwords are never checked;
// an empty password is a valid one.
func (v *ShareRequestValidator) validateImportRequest(ctx context.Context, req models.ImportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSharePath, FieldVaultPath, FieldTrustPath, FieldDistinctFiles}
	}

	for _, f := range fields {
		switch f {
		case FieldSharePath:
			if strings.TrimSpace(req.SharePath) == "" {
				return ErrEmptySharePath
			}
		case FieldVaultPath:
			if strings.TrimSpace(req.VaultPath) == "" {
				return ErrEmptyVaultPath
			}
		case FieldTrustPath:
			if strings.TrimSpace(req.TrustPath) == "" {
				return ErrEmptyTrustPath
			}
		case FieldDistinctFiles:
			if samePath(req.SharePath, req.VaultPath) {
				return ErrSameFile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateExportRequest checks by default: VaultPath, SigningKeyPath,
// OutputPath, GroupPath and that the output does not replace the vault.
func (v *ShareRequestValidator) validateExportRequest(ctx context.Context, req models.ExportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVaultPath, FieldSigningKeyPath, FieldOutputPath, FieldGroupPath, FieldDistinctFiles}
	}

	for _, f := range fields {
		switch f {
		case FieldVaultPath:
			if strings.TrimSpace(req.VaultPath) == "" {
				return ErrEmptyVaultPath
			}
		case FieldSigningKeyPath:
			if strings.TrimSpace(req.SigningKeyPath) == "" {
				return ErrEmptySigningKeyPath
			}
		case FieldOutputPath:
			if strings.TrimSpace(req.OutputPath) == "" {
				return ErrEmptyOutputPath
			}
		case FieldGroupPath:
			if _, err := SplitGroupPath(req.GroupPath); err != nil {
				return err
			}
		case FieldDistinctFiles:
			if samePath(req.OutputPath, req.VaultPath) {
				return ErrSameFile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// SplitGroupPath splits a "/"-separated group path into its names. Leading
// and trailing separators are ignored; empty names in between are an
// error. An empty path yields no names.
func SplitGroupPath(path string) ([]string, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil, nil
	}

	names := strings.Split(trimmed, "/")
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, ErrInvalidGroupPath
		}
	}
	return names, nil
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
