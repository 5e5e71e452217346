// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-share/internal/logger"
	"github.com/MKhiriev/go-pass-share/internal/share"
	"github.com/MKhiriev/go-pass-share/internal/store"
	"github.com/MKhiriev/go-pass-share/internal/validators"
	"github.com/MKhiriev/go-pass-share/models"
)

type exportService struct {
	vaults VaultStore
	merger Merger

	logger *logger.Logger
}

func NewExportService(vaults VaultStore, merger Merger, log *logger.Logger) ExportService {
	if log == nil {
		log = logger.Nop()
	}
	return &exportService{
		vaults: vaults,
		merger: merger,
		logger: log,
	}
}

// Export copies the group at req.GroupPath into a fresh vault protected by
// req.SharePassword, signs that vault file and writes the container to
// req.OutputPath.
func (s *exportService) Export(ctx context.Context, req models.ExportRequest) (models.ExportResult, error) {
	log := s.logger.With().
		Str("func", "exportService.Export").
		Str("vault", req.VaultPath).
		Str("group", req.GroupPath).
		Logger()

	if !req.Overwrite {
		if _, err := os.Stat(req.OutputPath); err == nil {
			return models.ExportResult{}, stageError(StageWrite, fmt.Errorf("%w: %s", ErrOutputExists, req.OutputPath))
		}
	}

	source, err := s.vaults.Open(ctx, req.VaultPath, req.VaultPassword)
	if err != nil {
		return models.ExportResult{}, stageError(StageOpenSource, err)
	}
	defer source.Close()

	group, err := locateGroup(source, req.GroupPath)
	if err != nil {
		return models.ExportResult{}, stageError(StageLocate, err)
	}

	signer, err := share.LoadSigner(req.SigningKeyPath)
	if err != nil {
		return models.ExportResult{}, stageError(StageLoadKey, err)
	}

	payload, exported, err := s.buildPayload(ctx, group, req.SharePassword)
	if err != nil {
		return models.ExportResult{}, stageError(StageCreateShare, err)
	}

	container, err := share.Seal(payload, signer, req.SignerName)
	if err != nil {
		return models.ExportResult{}, stageError(StageSign, err)
	}

	if err = writeFileAtomic(req.OutputPath, container); err != nil {
		return models.ExportResult{}, stageError(StageWrite, err)
	}

	result := models.ExportResult{
		KeyFingerprint:  signer.PublicKey().Fingerprint(),
		EntriesExported: exported,
		Bytes:           len(container),
	}
	log.Info().
		Str("output", req.OutputPath).
		Int("entries", exported).
		Str("fingerprint", result.KeyFingerprint).
		Msg("share exported")

	return result, nil
}

// buildPayload merges group into a new vault file and returns its bytes.
func (s *exportService) buildPayload(ctx context.Context, group *models.Group, password string) ([]byte, int, error) {
	dir, err := os.MkdirTemp("", "go-pass-share-export-*")
	if err != nil {
		return nil, 0, fmt.Errorf("create temporary directory: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, share.PayloadName)
	vault, err := s.vaults.Create(ctx, path, password)
	if err != nil {
		return nil, 0, err
	}
	defer vault.Close()

	exported, err := s.merger.MergeInto(ctx, group, vault, vault.Root())
	if err != nil {
		return nil, 0, err
	}
	if err = vault.Save(ctx); err != nil {
		return nil, 0, err
	}
	if err = vault.Close(); err != nil {
		return nil, 0, fmt.Errorf("close share vault: %w", err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read share vault: %w", err)
	}
	return payload, exported, nil
}

func locateGroup(v store.VaultRepository, path string) (*models.Group, error) {
	names, err := validators.SplitGroupPath(path)
	if err != nil {
		return nil, err
	}

	group := v.Root()
	for _, name := range names {
		next := v.FindGroup(group, name)
		if next == nil {
			return nil, fmt.Errorf("%w: %q", ErrGroupPathNotFound, path)
		}
		group = next
	}
	return group, nil
}

// writeFileAtomic writes data next to path and renames it into place, so
// a failed export never leaves a truncated container behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".share-*")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	tmpPath := tmp.Name()

	_, err = tmp.Write(data)
	err = errors.Join(err, tmp.Close())
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
