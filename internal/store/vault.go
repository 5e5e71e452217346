// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the vault: an encrypted SQLite file holding a
// tree of credential groups and entries.
//
// A [Vault] is loaded into memory in full when it is opened. Mutations
// (CreateGroup, CreateEntry, RecordImport) only change the in-memory tree
// and queue rows; [Vault.Save] writes the queue in a single transaction.
// Until Save succeeds the file is left exactly as it was.
package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-share/internal/crypto"
	"github.com/MKhiriev/go-pass-share/internal/logger"
	"github.com/MKhiriev/go-pass-share/internal/utils"
	"github.com/MKhiriev/go-pass-share/models"
)

// DefaultRootName is the name given to the root group of new vaults.
const DefaultRootName = "Root"

// IDGenerator produces identifiers for new groups and entries.
type IDGenerator interface {
	Generate() string
}

// Options tunes how vaults are created and opened. The zero value is
// usable.
type Options struct {
	// KDF are the Argon2id parameters of new vaults. Existing vaults always
	// open with the parameters stored in them.
	KDF crypto.KDFParams

	// RootName names the root group of new vaults; empty means
	// [DefaultRootName].
	RootName string

	Logger *logger.Logger

	// IDs defaults to [utils.UUIDGenerator].
	IDs IDGenerator

	// KeyChain builds the key chain for a set of KDF parameters; defaults
	// to [crypto.NewKeyChainServiceWithParams].
	KeyChain func(crypto.KDFParams) crypto.KeyChainService
}

func (o Options) withDefaults() Options {
	if o.RootName == "" {
		o.RootName = DefaultRootName
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.IDs == nil {
		o.IDs = utils.NewUUIDGenerator()
	}
	if o.KeyChain == nil {
		o.KeyChain = crypto.NewKeyChainServiceWithParams
	}
	return o
}

type nodeKind int

const (
	groupNode nodeKind = iota
	entryNode
)

// pendingNode is a row created in memory and not yet written.
type pendingNode struct {
	kind     nodeKind
	parentID string
	position int
	group    *models.Group
	entry    *models.Entry
}

// Vault is an opened credential database. It is not safe for concurrent
// use.
type Vault struct {
	db     *DB
	keys   crypto.KeyChainService
	dek    []byte
	ids    IDGenerator
	logger *logger.Logger

	root   *models.Group
	groups map[string]*models.Group

	pending []pendingNode
	imports []models.ImportRecord

	// migrated is false for files written by an older schema; Save
	// migrates them before its first write.
	migrated bool
}

// NewMemoryVault returns a detached vault holding only an empty root group.
// It can be merged into and read from but not saved.
func NewMemoryVault(rootName string) *Vault {
	opts := Options{RootName: rootName}.withDefaults()

	root := &models.Group{ID: opts.IDs.Generate(), GroupFields: models.GroupFields{Name: opts.RootName}}
	return &Vault{
		ids:    opts.IDs,
		logger: opts.Logger,
		root:   root,
		groups: map[string]*models.Group{root.ID: root},
	}
}

// Root returns the root group of the vault.
func (v *Vault) Root() *models.Group {
	return v.root
}

// FindGroup returns the first direct subgroup of parent named name, or nil.
func (v *Vault) FindGroup(parent *models.Group, name string) *models.Group {
	if parent == nil {
		return nil
	}
	return parent.Subgroup(name)
}

// FindEntry returns the first direct entry of parent with the given title
// and username, or nil.
func (v *Vault) FindEntry(parent *models.Group, title, username string) *models.Entry {
	if parent == nil {
		return nil
	}
	return parent.Entry(title, username)
}

// CreateGroup appends a new subgroup to parent.
func (v *Vault) CreateGroup(parent *models.Group, fields models.GroupFields) (*models.Group, error) {
	if err := v.owns(parent); err != nil {
		return nil, err
	}

	group := &models.Group{ID: v.ids.Generate(), GroupFields: fields}
	v.pending = append(v.pending, pendingNode{
		kind:     groupNode,
		parentID: parent.ID,
		position: len(parent.Groups),
		group:    group,
	})
	parent.Groups = append(parent.Groups, group)
	v.groups[group.ID] = group

	return group, nil
}

// CreateEntry appends a new entry to parent.
func (v *Vault) CreateEntry(parent *models.Group, fields models.EntryFields) (*models.Entry, error) {
	if err := v.owns(parent); err != nil {
		return nil, err
	}

	entry := &models.Entry{ID: v.ids.Generate(), EntryFields: fields}
	v.pending = append(v.pending, pendingNode{
		kind:     entryNode,
		parentID: parent.ID,
		position: len(parent.Entries),
		entry:    entry,
	})
	parent.Entries = append(parent.Entries, entry)

	return entry, nil
}

// RecordImport queues an audit row written by the next Save.
func (v *Vault) RecordImport(record models.ImportRecord) {
	v.imports = append(v.imports, record)
}

// Pending reports the number of rows waiting for Save.
func (v *Vault) Pending() int {
	return len(v.pending) + len(v.imports)
}

// ReadOnly reports whether the vault has no backing file.
func (v *Vault) ReadOnly() bool {
	return v.db == nil
}

// Close releases the database handle and forgets the data key.
func (v *Vault) Close() error {
	clear(v.dek)
	v.dek = nil

	if v.db == nil {
		return nil
	}
	err := v.db.Close()
	v.db = nil
	return err
}

func (v *Vault) owns(parent *models.Group) error {
	if parent == nil {
		return ErrGroupNotFound
	}
	if known, ok := v.groups[parent.ID]; !ok || known != parent {
		return ErrGroupNotFound
	}
	return nil
}

func nullableID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}
