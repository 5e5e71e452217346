// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ImportRecord is the audit trail of one successful share import. It is
// written into the target vault together with the imported data.
type ImportRecord struct {
	// Signer is the display name taken from the signature document.
	// It is informational only.
	Signer string

	// KeyFingerprint is the lowercase hex SHA-256 fingerprint of the key
	// that verified the share.
	KeyFingerprint string

	// Source is the path of the share file as given by the user.
	Source string

	// EntriesImported is the number of entries created by the merge.
	EntriesImported int

	// ImportedAt is the moment the import was recorded.
	ImportedAt time.Time
}

// ImportResult is returned to the caller of a share import.
type ImportResult struct {
	Signer          string
	KeyFingerprint  string
	EntriesImported int
	// Saved is false for dry runs.
	Saved bool
}

// ExportResult is returned to the caller of a share export.
type ExportResult struct {
	KeyFingerprint  string
	EntriesExported int
	// Bytes is the size of the written container.
	Bytes int
}

// ImportRequest describes one share import.
type ImportRequest struct {
	// SharePath is the share container file.
	SharePath string

	// SharePassword unlocks the vault inside the container. It is a secret
	// of its own and may differ from VaultPassword.
	SharePassword string

	// VaultPath is the vault that receives the imported data.
	VaultPath string

	VaultPassword string

	// TrustPath is the PEM file with the trusted public key or certificate.
	TrustPath string

	// DryRun stops after the merge; the target vault file is not touched.
	DryRun bool
}

// ExportRequest describes one share export.
type ExportRequest struct {
	VaultPath     string
	VaultPassword string

	// GroupPath is the "/"-separated path of the exported group below the
	// root; empty exports the whole vault.
	GroupPath string

	// SharePassword protects the vault written into the container.
	SharePassword string

	// SigningKeyPath is the PEM encoded RSA private key.
	SigningKeyPath string

	// SignerName is recorded in the signature document for display.
	SignerName string

	// OutputPath is where the container is written.
	OutputPath string

	// Overwrite allows replacing an existing OutputPath.
	Overwrite bool
}
