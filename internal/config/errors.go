// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration values are
// missing or invalid. Several of them may be joined into one error.
var (
	// ErrMissingShareFile indicates that no share container path was given.
	ErrMissingShareFile = errors.New("share file is not configured")
	// ErrMissingVaultPath indicates that no vault path was given.
	ErrMissingVaultPath = errors.New("vault path is not configured")
	// ErrMissingTrustCertificate indicates that no trusted certificate was
	// given for an import.
	ErrMissingTrustCertificate = errors.New("trusted certificate is not configured")
	// ErrMissingSigningKey indicates that no private key was given for an
	// export.
	ErrMissingSigningKey = errors.New("signing key is not configured")
	// ErrMissingOutput indicates that no output path was given for an
	// export.
	ErrMissingOutput = errors.New("output path is not configured")
	// ErrInvalidLogConfigs indicates an unknown log level or format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrTooManyArguments indicates more positional arguments than the
	// tool accepts.
	ErrTooManyArguments = errors.New("too many arguments")
)
