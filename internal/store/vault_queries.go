// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-share/internal/crypto"
	"github.com/MKhiriev/go-pass-share/models"
)

// metaRowID is the primary key of the single vault_meta row.
const metaRowID = 1

// sqlite uses ? placeholders
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// vaultTables must exist before a file is read as a vault.
var vaultTables = []string{"vault_meta", "vault_groups", "vault_entries"}

// currentTables exist once every migration has been applied.
var currentTables = []string{"goose_db_version", "import_audit"}

func buildCountTablesQuery(names []string) (string, []any, error) {
	return builder.
		Select("COUNT(*)").
		From("sqlite_master").
		Where(sq.Eq{"type": "table", "name": names}).
		ToSql()
}

func buildInsertMetaQuery(salt, encryptedDEK []byte, params crypto.KDFParams) (string, []any, error) {
	return builder.
		Insert("vault_meta").
		Columns("id", "salt", "encrypted_dek", "kdf_time", "kdf_memory", "kdf_threads").
		Values(metaRowID, salt, encryptedDEK, params.Time, params.Memory, params.Threads).
		ToSql()
}

func buildSelectMetaQuery() (string, []any, error) {
	return builder.
		Select("salt", "encrypted_dek", "kdf_time", "kdf_memory", "kdf_threads").
		From("vault_meta").
		Where(sq.Eq{"id": metaRowID}).
		ToSql()
}

func buildInsertGroupQuery(id string, parentID sql.NullString, position int, data string) (string, []any, error) {
	return builder.
		Insert("vault_groups").
		Columns("group_id", "parent_id", "position", "data").
		Values(id, parentID, position, data).
		ToSql()
}

// buildSelectGroupsQuery orders rows so that appending them to their parent
// in result order restores every sibling list.
func buildSelectGroupsQuery() (string, []any, error) {
	return builder.
		Select("group_id", "parent_id", "data").
		From("vault_groups").
		OrderBy("position", "created_at").
		ToSql()
}

func buildInsertEntryQuery(id, groupID string, position int, data string) (string, []any, error) {
	return builder.
		Insert("vault_entries").
		Columns("entry_id", "group_id", "position", "data").
		Values(id, groupID, position, data).
		ToSql()
}

func buildSelectEntriesQuery() (string, []any, error) {
	return builder.
		Select("entry_id", "group_id", "data").
		From("vault_entries").
		OrderBy("position", "created_at").
		ToSql()
}

func buildInsertImportQuery(record models.ImportRecord) (string, []any, error) {
	return builder.
		Insert("import_audit").
		Columns("signer", "key_fingerprint", "source", "entries_imported", "imported_at").
		Values(record.Signer, record.KeyFingerprint, record.Source, record.EntriesImported, record.ImportedAt.UTC()).
		ToSql()
}

func buildSelectImportsQuery() (string, []any, error) {
	return builder.
		Select("signer", "key_fingerprint", "source", "entries_imported", "imported_at").
		From("import_audit").
		OrderBy("import_id").
		ToSql()
}
