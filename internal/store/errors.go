// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by vault operations to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidCredentials is returned when the wrapped data-encryption key
	// of a vault cannot be unwrapped with the key derived from the supplied
	// password.
	ErrInvalidCredentials = errors.New("invalid vault credentials")

	// ErrVaultNotFound is returned by OpenVault when the vault file does not
	// exist.
	ErrVaultNotFound = errors.New("vault file not found")

	// ErrVaultExists is returned by CreateVault when the target path is
	// already taken.
	ErrVaultExists = errors.New("vault file already exists")

	// ErrCorruptVault is returned when the vault schema is present but its
	// content cannot be interpreted: no key material, no root group, a row
	// that does not decrypt, or a node whose parent is missing.
	ErrCorruptVault = errors.New("vault is corrupt")

	// ErrReadOnly is returned by Save on vaults that have no backing file
	// (payload vaults opened from memory and detached in-memory trees).
	ErrReadOnly = errors.New("vault is read-only")

	// ErrPersistence is returned by Save when writing pending changes fails.
	// The transaction is rolled back, so the file is left as it was.
	ErrPersistence = errors.New("failed to persist vault changes")

	// ErrGroupNotFound is returned when a mutation names a parent group that
	// does not belong to the vault.
	ErrGroupNotFound = errors.New("group does not belong to vault")
)

// Low-level database operation errors. These are wrapped by vault methods
// when a SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan vault rows")
)
