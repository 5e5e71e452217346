// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-pass-share/internal/logger"
	"github.com/MKhiriev/go-pass-share/migrations"
)

// DB is an open vault file.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations to the vault file.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).
			Str("func", "DB.Migrate").
			Msg("failed to migrate vault schema")
		return err
	}

	db.logger.Debug().Str("func", "DB.Migrate").Msg("vault schema is up to date")
	return nil
}

// HasTables reports whether every table in names exists. It never writes to
// the file.
func (db *DB) HasTables(ctx context.Context, names []string) (bool, error) {
	query, args, err := buildCountTablesQuery(names)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found int
	if err = db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return found == len(names), nil
}
