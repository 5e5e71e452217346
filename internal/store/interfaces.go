// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository is an opened vault. [*Vault] implements it; it also
// satisfies merge.Target.
type VaultRepository interface {
	Root() *models.Group
	FindGroup(parent *models.Group, name string) *models.Group
	FindEntry(parent *models.Group, title, username string) *models.Entry
	CreateGroup(parent *models.Group, fields models.GroupFields) (*models.Group, error)
	CreateEntry(parent *models.Group, fields models.EntryFields) (*models.Entry, error)
	RecordImport(record models.ImportRecord)
	Imports(ctx context.Context) ([]models.ImportRecord, error)
	Save(ctx context.Context) error
	Close() error
}
