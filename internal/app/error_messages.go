// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// share-import and share-export tools.
//
// All Msg* constants are human-readable message strings that are printed
// on the console or written into log entries to describe the outcome of a
// run. Keeping them in one place ensures consistent wording throughout the
// tools.
package app

const (
	// MsgInvalidDataProvided is printed when the request fails basic
	// validation (e.g. a missing path).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidConfiguration is printed when the configuration cannot be
	// loaded or is incomplete.
	MsgInvalidConfiguration = "invalid configuration"

	// MsgInvalidCertificate is printed when the trusted certificate file
	// cannot be read or holds no RSA public key.
	MsgInvalidCertificate = "trusted certificate is missing or invalid"

	// MsgInvalidSigningKey is printed when the export signing key cannot be
	// read or is not an RSA private key.
	MsgInvalidSigningKey = "signing key is missing or invalid"

	// MsgCorruptShare is printed when the share file is not a readable
	// container or its signature document is malformed.
	MsgCorruptShare = "share file is corrupt or has an invalid format"

	// MsgUntrustedSigner is printed when the share was signed by a key other
	// than the trusted one.
	MsgUntrustedSigner = "share is not signed by the trusted key"

	// MsgVerificationFailed is printed when the signature does not match
	// the share content.
	MsgVerificationFailed = "signature verification failed"

	// MsgInvalidSharePassword is printed when the share vault cannot be
	// unlocked.
	MsgInvalidSharePassword = "invalid share password"

	// MsgInvalidVaultPassword is printed when the local vault cannot be
	// unlocked.
	MsgInvalidVaultPassword = "invalid vault password"

	// MsgVaultNotFound is printed when the local vault file does not exist.
	MsgVaultNotFound = "vault not found"

	// MsgCorruptVault is printed when a vault file exists but is not a
	// readable vault.
	MsgCorruptVault = "vault is corrupt"

	// MsgGroupNotFound is printed when the exported group path does not
	// exist in the vault.
	MsgGroupNotFound = "group not found"

	// MsgOutputExists is printed when an export would replace an existing
	// file without -overwrite.
	MsgOutputExists = "output file already exists"

	// MsgSaveFailed is printed when the merged vault could not be written;
	// the vault file is left unchanged.
	MsgSaveFailed = "vault could not be saved; no changes were written"

	// MsgInternalError is printed when an unexpected failure occurs.
	MsgInternalError = "internal error"

	// MsgImportSucceeded reports a finished import.
	MsgImportSucceeded = "share imported"

	// MsgImportDryRun reports an import that was merged but not saved.
	MsgImportDryRun = "dry run: vault not saved"

	// MsgExportSucceeded reports a finished export.
	MsgExportSucceeded = "share exported"
)
