// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package share

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Check verifies that payload was signed by the holder of trusted.
//
// The embedded key is decoded and must equal the trusted key by value,
// otherwise [ErrTrustMismatch] is returned before any signature math runs.
// The hex signature must decode ([ErrMalformedSignature] otherwise) and
// must verify against payload with the trusted key
// ([ErrVerificationFailed] otherwise). Key decoding errors are returned
// unchanged.
func Check(payload []byte, signatureHex string, embeddedKey []byte, trusted *TrustedKey) error {
	embedded, err := DecodeRSAKey(embeddedKey)
	if err != nil {
		return err
	}

	if !embedded.Equal(trusted.Numbers()) {
		return ErrTrustMismatch
	}

	sig, err := hex.DecodeString(strings.Join(strings.Fields(signatureHex), ""))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedSignature, err)
	}
	if len(sig) == 0 {
		return fmt.Errorf("%w: empty signature", ErrMalformedSignature)
	}

	return trusted.VerifySignature(payload, sig)
}

// Verify is [Check] reduced to a boolean. A trust mismatch or an invalid
// signature is a normal false result; only malformed input is an error.
func Verify(payload []byte, signatureHex string, embeddedKey []byte, trusted *TrustedKey) (bool, error) {
	err := Check(payload, signatureHex, embeddedKey, trusted)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrTrustMismatch), errors.Is(err, ErrVerificationFailed):
		return false, nil
	default:
		return false, err
	}
}

// Seal signs payload with s and packs it together with the resulting
// signature document into a share container.
func Seal(payload []byte, s *Signer, signerName string) ([]byte, error) {
	sig, err := s.Sign(payload)
	if err != nil {
		return nil, err
	}

	key, err := EncodeRSAKey(s.PublicKey())
	if err != nil {
		return nil, err
	}

	doc, err := MarshalSignatureDocument(sig, signerName, key)
	if err != nil {
		return nil, err
	}

	return Build(payload, doc)
}
