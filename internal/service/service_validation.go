// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-share/internal/logger"
	"github.com/MKhiriev/go-pass-share/internal/validators"
	"github.com/MKhiriev/go-pass-share/models"
)

type ImportValidationService struct {
	inner     ImportService
	validator validators.Validator
}

func NewImportValidationService() ImportServiceWrapper {
	return &ImportValidationService{
		validator: validators.NewShareRequestValidator(),
	}
}

func (v *ImportValidationService) Import(ctx context.Context, req models.ImportRequest) (models.ImportResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "ImportValidationService.Import").
			Msg("import request rejected")
		return models.ImportResult{}, stageError(StageValidate, fmt.Errorf("error during import request validation: %w", err))
	}

	return v.inner.Import(ctx, req)
}

func (v *ImportValidationService) Wrap(wrapped ImportService) ImportService {
	v.inner = wrapped
	return v
}

type ExportValidationService struct {
	inner     ExportService
	validator validators.Validator
}

func NewExportValidationService() ExportServiceWrapper {
	return &ExportValidationService{
		validator: validators.NewShareRequestValidator(),
	}
}

func (v *ExportValidationService) Export(ctx context.Context, req models.ExportRequest) (models.ExportResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "ExportValidationService.Export").
			Msg("export request rejected")
		return models.ExportResult{}, stageError(StageValidate, fmt.Errorf("error during export request validation: %w", err))
	}

	return v.inner.Export(ctx, req)
}

func (v *ExportValidationService) Wrap(wrapped ExportService) ExportService {
	v.inner = wrapped
	return v
}
