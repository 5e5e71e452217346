// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-share/internal/merge"
	"github.com/MKhiriev/go-pass-share/internal/store"
	"github.com/MKhiriev/go-pass-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ImportService imports signed share containers into a vault.
type ImportService interface {
	Import(ctx context.Context, req models.ImportRequest) (models.ImportResult, error)
}

// ExportService writes a group of a vault into a signed share container.
type ExportService interface {
	Export(ctx context.Context, req models.ExportRequest) (models.ExportResult, error)
}

// VaultStore opens and creates vaults. [store.Vaults] implements it.
type VaultStore interface {
	Open(ctx context.Context, path, password string) (store.VaultRepository, error)
	OpenBytes(ctx context.Context, data []byte, password string) (store.VaultRepository, error)
	Create(ctx context.Context, path, password string) (store.VaultRepository, error)
}

// Merger merges group trees. [merge.Engine] implements it.
type Merger interface {
	Merge(ctx context.Context, source *models.Group, target merge.Target) (int, error)
	MergeInto(ctx context.Context, source *models.Group, target merge.Target, into *models.Group) (int, error)
}
