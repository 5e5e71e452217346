// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"errors"

	"github.com/MKhiriev/go-pass-share/internal/app"
	"github.com/MKhiriev/go-pass-share/internal/service"
	"github.com/MKhiriev/go-pass-share/internal/share"
	"github.com/MKhiriev/go-pass-share/internal/store"
)

// Describe maps err to one of the app.Msg* messages. The failing stage
// decides which password or file an error refers to.
func Describe(err error) string {
	stage, _ := service.StageOf(err)

	switch {
	case err == nil:
		return ""
	case stage == service.StageValidate:
		return app.MsgInvalidDataProvided
	case errors.Is(err, share.ErrTrustMismatch):
		return app.MsgUntrustedSigner
	case errors.Is(err, share.ErrVerificationFailed):
		return app.MsgVerificationFailed
	case errors.Is(err, share.ErrInvalidCertificate), stage == service.StageTrust:
		return app.MsgInvalidCertificate
	case errors.Is(err, share.ErrInvalidPrivateKey), stage == service.StageLoadKey:
		return app.MsgInvalidSigningKey
	case isShareFormatError(err), stage == service.StageExtract, stage == service.StageParse:
		return app.MsgCorruptShare
	case errors.Is(err, store.ErrInvalidCredentials):
		if stage == service.StageOpenShare {
			return app.MsgInvalidSharePassword
		}
		return app.MsgInvalidVaultPassword
	case errors.Is(err, store.ErrCorruptVault):
		if stage == service.StageOpenShare {
			return app.MsgCorruptShare
		}
		return app.MsgCorruptVault
	case errors.Is(err, store.ErrVaultNotFound):
		return app.MsgVaultNotFound
	case errors.Is(err, service.ErrGroupPathNotFound):
		return app.MsgGroupNotFound
	case errors.Is(err, service.ErrOutputExists):
		return app.MsgOutputExists
	case errors.Is(err, store.ErrPersistence), stage == service.StageSave:
		return app.MsgSaveFailed
	default:
		return app.MsgInternalError
	}
}

func isShareFormatError(err error) bool {
	for _, target := range []error{
		share.ErrFormat,
		share.ErrCorruptArchive,
		share.ErrUnsupportedAlgorithm,
		share.ErrUnsupportedKeyType,
		share.ErrTruncatedData,
		share.ErrMalformedSignature,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
