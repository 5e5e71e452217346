// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-share/models"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execBuilt(ctx context.Context, ex execer, build func() (string, []any, error)) error {
	query, args, err := build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Save writes every pending group, entry and import record in one
// transaction. A vault of an older schema is migrated first. On failure the
// pending rows are kept and the error wraps [ErrPersistence].
func (v *Vault) Save(ctx context.Context) error {
	if v.db == nil {
		return ErrReadOnly
	}
	if v.Pending() == 0 {
		return nil
	}

	if !v.migrated {
		if err := v.db.Migrate(); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		v.migrated = true
	}

	if err := v.save(ctx); err != nil {
		v.logger.Err(err).
			Str("func", "Vault.Save").
			Int("pending", v.Pending()).
			Msg("failed to save vault")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	v.logger.Debug().
		Str("func", "Vault.Save").
		Int("rows", v.Pending()).
		Msg("vault saved")

	v.pending = nil
	v.imports = nil
	return nil
}

func (v *Vault) save(ctx context.Context) error {
	tx, err := v.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, node := range v.pending {
		if err = v.insertNode(ctx, tx, node); err != nil {
			return err
		}
	}

	for _, record := range v.imports {
		if err = execBuilt(ctx, tx, func() (string, []any, error) {
			return buildInsertImportQuery(record)
		}); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (v *Vault) insertNode(ctx context.Context, ex execer, node pendingNode) error {
	switch node.kind {
	case groupNode:
		data, err := v.keys.EncryptData(node.group.GroupFields, v.dek)
		if err != nil {
			return fmt.Errorf("encrypt group %s: %w", node.group.ID, err)
		}
		return execBuilt(ctx, ex, func() (string, []any, error) {
			return buildInsertGroupQuery(node.group.ID, nullableID(node.parentID), node.position, data)
		})
	case entryNode:
		data, err := v.keys.EncryptData(node.entry.EntryFields, v.dek)
		if err != nil {
			return fmt.Errorf("encrypt entry %s: %w", node.entry.ID, err)
		}
		return execBuilt(ctx, ex, func() (string, []any, error) {
			return buildInsertEntryQuery(node.entry.ID, node.parentID, node.position, data)
		})
	default:
		return fmt.Errorf("unknown node kind %d", node.kind)
	}
}

// Imports returns the audit trail of saved imports, oldest first.
func (v *Vault) Imports(ctx context.Context) ([]models.ImportRecord, error) {
	if v.db == nil {
		return nil, ErrReadOnly
	}
	if !v.migrated {
		return nil, nil
	}

	query, args, err := buildSelectImportsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := v.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.ImportRecord
	for rows.Next() {
		var (
			record     models.ImportRecord
			importedAt time.Time
		)
		if err = rows.Scan(&record.Signer, &record.KeyFingerprint, &record.Source, &record.EntriesImported, &importedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		record.ImportedAt = importedAt
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
