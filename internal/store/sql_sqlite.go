// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-share/internal/logger"
)

// NewConnectSQLite opens the vault file at path. With create set the file is
// created first; otherwise a missing file is reported as [ErrVaultNotFound]
// instead of letting the driver create an empty database.
func NewConnectSQLite(ctx context.Context, path string, create bool, log *logger.Logger) (*DB, error) {
	if create {
		if err := createLocalDBFile(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("error creating database file")
			return nil, err
		}
	} else if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, path)
		}
		return nil, fmt.Errorf("error accessing vault file: %w", err)
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// one writer; keeps the whole save in a single connection
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

func createLocalDBFile(dbFile string) error {
	f, err := os.OpenFile(dbFile, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrVaultExists, dbFile)
		}
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
