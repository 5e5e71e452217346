// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySharePath      = errors.New("share file path is required")
	ErrEmptyVaultPath      = errors.New("vault file path is required")
	ErrEmptyTrustPath      = errors.New("trusted certificate path is required")
	ErrEmptySigningKeyPath = errors.New("signing key path is required")
	ErrEmptyOutputPath     = errors.New("output path is required")
	ErrSameFile            = errors.New("source and destination are the same file")
	ErrInvalidGroupPath    = errors.New("invalid group path")
)
