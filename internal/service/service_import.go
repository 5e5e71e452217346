// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-pass-share/internal/logger"
	"github.com/MKhiriev/go-pass-share/internal/share"
	"github.com/MKhiriev/go-pass-share/models"
)

type importService struct {
	vaults VaultStore
	merger Merger
	now    func() time.Time

	logger *logger.Logger
}

func NewImportService(vaults VaultStore, merger Merger, log *logger.Logger) ImportService {
	if log == nil {
		log = logger.Nop()
	}
	return &importService{
		vaults: vaults,
		merger: merger,
		now:    time.Now,
		logger: log,
	}
}

// Import runs the import pipeline. Every step must succeed before the next
// one starts; in particular nothing is merged unless the embedded key equals
// the trusted key and the signature verifies, and the target file is only
// written by the final save.
func (s *importService) Import(ctx context.Context, req models.ImportRequest) (models.ImportResult, error) {
	log := s.logger.With().
		Str("func", "importService.Import").
		Str("share", req.SharePath).
		Str("vault", req.VaultPath).
		Logger()

	trusted, err := share.LoadTrustedKey(req.TrustPath)
	if err != nil {
		return models.ImportResult{}, stageError(StageTrust, err)
	}

	data, err := os.ReadFile(req.SharePath)
	if err != nil {
		return models.ImportResult{}, stageError(StageExtract, fmt.Errorf("read share file: %w", err))
	}
	container, err := share.Extract(data)
	if err != nil {
		return models.ImportResult{}, stageError(StageExtract, err)
	}

	doc, err := share.ParseSignatureDocument(container.Signature)
	if err != nil {
		return models.ImportResult{}, stageError(StageParse, err)
	}

	if err = share.Check(container.Payload, doc.SignatureHex, doc.Key, trusted); err != nil {
		log.Warn().Err(err).Str("signer", doc.Signer).Msg("share rejected")
		return models.ImportResult{}, stageError(StageVerify, err)
	}

	result := models.ImportResult{
		Signer:         doc.Signer,
		KeyFingerprint: trusted.Fingerprint(),
	}
	log.Info().
		Str("signer", result.Signer).
		Str("fingerprint", result.KeyFingerprint).
		Msg("share signature verified")

	source, err := s.vaults.OpenBytes(ctx, container.Payload, req.SharePassword)
	if err != nil {
		return result, stageError(StageOpenShare, err)
	}
	defer source.Close()

	target, err := s.vaults.Open(ctx, req.VaultPath, req.VaultPassword)
	if err != nil {
		return result, stageError(StageOpenTarget, err)
	}
	defer target.Close()

	imported, err := s.merger.Merge(ctx, source.Root(), target)
	if err != nil {
		return result, stageError(StageMerge, err)
	}
	result.EntriesImported = imported

	if req.DryRun {
		log.Info().Int("entries", imported).Msg("dry run, vault left unchanged")
		return result, nil
	}

	target.RecordImport(models.ImportRecord{
		Signer:          result.Signer,
		KeyFingerprint:  result.KeyFingerprint,
		Source:          req.SharePath,
		EntriesImported: imported,
		ImportedAt:      s.now(),
	})

	if err = target.Save(ctx); err != nil {
		return result, stageError(StageSave, err)
	}
	result.Saved = true

	log.Info().Int("entries", imported).Msg("share imported")
	return result, nil
}
