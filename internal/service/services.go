// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-share/internal/logger"
	"github.com/MKhiriev/go-pass-share/internal/merge"
)

type Services struct {
	ImportService ImportService
	ExportService ExportService
}

func NewServices(vaults VaultStore, logger *logger.Logger) *Services {
	engine := merge.NewEngine(logger)

	return &Services{
		ImportService: NewImportValidationService().Wrap(NewImportService(vaults, engine, logger)),
		ExportService: NewExportValidationService().Wrap(NewExportService(vaults, engine, logger)),
	}
}
