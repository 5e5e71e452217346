// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// ImportServiceWrapper defines middleware composition for ImportService.
// Implementations wrap an existing ImportService to add behavior such as
// validation.
type ImportServiceWrapper interface {
	Wrap(ImportService) ImportService // returns a decorated ImportService applying additional behavior
}

// ExportServiceWrapper is the ExportService counterpart of
// [ImportServiceWrapper].
type ExportServiceWrapper interface {
	Wrap(ExportService) ExportService
}
