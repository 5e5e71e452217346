// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-share/internal/crypto"
	"github.com/MKhiriev/go-pass-share/models"
)

// CreateVault creates a new vault file at path protected by password. The
// file holds the key material and an empty root group once this returns.
func CreateVault(ctx context.Context, path, password string, opts Options) (*Vault, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	db, err := NewConnectSQLite(ctx, path, true, log)
	if err != nil {
		return nil, err
	}

	v, err := initVault(ctx, db, password, opts)
	if err != nil {
		db.Close()
		os.Remove(path)
		return nil, err
	}

	log.Info().Str("func", "CreateVault").Str("path", path).Msg("vault created")
	return v, nil
}

func initVault(ctx context.Context, db *DB, password string, opts Options) (*Vault, error) {
	if err := db.Migrate(); err != nil {
		return nil, err
	}

	keys := opts.KeyChain(opts.KDF)

	salt, err := keys.GenerateEncryptionSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	dek, err := keys.GenerateDEK()
	if err != nil {
		return nil, fmt.Errorf("generate data key: %w", err)
	}
	encryptedDEK, err := keys.GetEncryptedDEK(dek, keys.GenerateKEK(password, salt))
	if err != nil {
		return nil, fmt.Errorf("wrap data key: %w", err)
	}

	root := &models.Group{ID: opts.IDs.Generate(), GroupFields: models.GroupFields{Name: opts.RootName}}
	rootData, err := keys.EncryptData(root.GroupFields, dek)
	if err != nil {
		return nil, fmt.Errorf("encrypt root group: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = execBuilt(ctx, tx, func() (string, []any, error) {
		return buildInsertMetaQuery(salt, encryptedDEK, keys.Params())
	}); err != nil {
		return nil, err
	}
	if err = execBuilt(ctx, tx, func() (string, []any, error) {
		return buildInsertGroupQuery(root.ID, nullableID(""), 0, rootData)
	}); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return &Vault{
		db:     db,
		keys:   keys,
		dek:    dek,
		ids:    opts.IDs,
		logger: opts.Logger,
		root:     root,
		groups:   map[string]*models.Group{root.ID: root},
		migrated: true,
	}, nil
}

// OpenVault opens the vault file at path and loads its whole tree.
// A wrong password yields [ErrInvalidCredentials] and a file without the
// vault tables yields [ErrCorruptVault]. Opening never writes to the file.
func OpenVault(ctx context.Context, path, password string, opts Options) (*Vault, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	db, err := NewConnectSQLite(ctx, path, false, log)
	if errors.Is(err, ErrVaultNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptVault, err)
	}

	isVault, err := db.HasTables(ctx, vaultTables)
	if err == nil && !isVault {
		err = errors.New("vault tables are missing")
	}
	if err != nil {
		db.Close()
		log.Err(err).Str("func", "OpenVault").Str("path", path).Msg("vault schema is not usable")
		return nil, fmt.Errorf("%w: %w", ErrCorruptVault, err)
	}

	v, err := loadVault(ctx, db, password, opts)
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().
		Str("func", "OpenVault").
		Str("path", path).
		Int("entries", v.root.CountEntries()).
		Msg("vault opened")
	return v, nil
}

// OpenVaultBytes opens a vault held in memory, such as the payload of a
// share container. The bytes are staged in a private temporary file that is
// removed before returning; the resulting vault is read-only.
func OpenVaultBytes(ctx context.Context, data []byte, password string, opts Options) (*Vault, error) {
	f, err := os.CreateTemp("", "go-pass-share-*.vault")
	if err != nil {
		return nil, fmt.Errorf("create temporary vault file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("write temporary vault file: %w", err)
	}

	v, err := OpenVault(ctx, path, password, opts)
	if err != nil {
		return nil, err
	}

	// the tree is fully in memory; detach from the file before it goes away
	if err = v.db.Close(); err != nil {
		return nil, fmt.Errorf("close temporary vault file: %w", err)
	}
	v.db = nil

	return v, nil
}

type loadedGroup struct {
	group    *models.Group
	parentID sql.NullString
}

func loadVault(ctx context.Context, db *DB, password string, opts Options) (*Vault, error) {
	query, args, err := buildSelectMetaQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		salt, encryptedDEK []byte
		params             crypto.KDFParams
	)
	err = db.QueryRowContext(ctx, query, args...).Scan(&salt, &encryptedDEK, &params.Time, &params.Memory, &params.Threads)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no key material", ErrCorruptVault)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	keys := opts.KeyChain(params)
	dek, err := keys.DecryptDEK(encryptedDEK, keys.GenerateKEK(password, salt))
	if errors.Is(err, crypto.ErrDecrypt) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptVault, err)
	}

	migrated, err := db.HasTables(ctx, currentTables)
	if err != nil {
		return nil, err
	}

	v := &Vault{
		db:       db,
		keys:     keys,
		dek:      dek,
		ids:      opts.IDs,
		logger:   opts.Logger,
		groups:   make(map[string]*models.Group),
		migrated: migrated,
	}

	if err = v.loadGroups(ctx); err != nil {
		return nil, err
	}
	if err = v.loadEntries(ctx); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Vault) loadGroups(ctx context.Context) error {
	query, args, err := buildSelectGroupsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := v.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var loaded []loadedGroup
	for rows.Next() {
		var (
			item loadedGroup
			data string
		)
		item.group = &models.Group{}
		if err = rows.Scan(&item.group.ID, &item.parentID, &data); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = v.keys.DecryptData(data, v.dek, &item.group.GroupFields); err != nil {
			return fmt.Errorf("%w: group %s: %w", ErrCorruptVault, item.group.ID, err)
		}

		if !item.parentID.Valid {
			if v.root != nil {
				return fmt.Errorf("%w: more than one root group", ErrCorruptVault)
			}
			v.root = item.group
		}
		v.groups[item.group.ID] = item.group
		loaded = append(loaded, item)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if v.root == nil {
		return fmt.Errorf("%w: no root group", ErrCorruptVault)
	}

	for _, item := range loaded {
		if !item.parentID.Valid {
			continue
		}
		parent, ok := v.groups[item.parentID.String]
		if !ok {
			return fmt.Errorf("%w: group %s has no parent", ErrCorruptVault, item.group.ID)
		}
		parent.Groups = append(parent.Groups, item.group)
	}

	return nil
}

func (v *Vault) loadEntries(ctx context.Context) error {
	query, args, err := buildSelectEntriesQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := v.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry   = &models.Entry{}
			groupID string
			data    string
		)
		if err = rows.Scan(&entry.ID, &groupID, &data); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = v.keys.DecryptData(data, v.dek, &entry.EntryFields); err != nil {
			return fmt.Errorf("%w: entry %s: %w", ErrCorruptVault, entry.ID, err)
		}

		parent, ok := v.groups[groupID]
		if !ok {
			return fmt.Errorf("%w: entry %s has no group", ErrCorruptVault, entry.ID)
		}
		parent.Entries = append(parent.Entries, entry)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
