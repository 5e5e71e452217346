// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package share

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strings"
)

// RSATag is the algorithm prefix of an RSA signature value.
const RSATag = "rsa|"

// UnknownSigner is reported when the signature document names no signer.
const UnknownSigner = "Unknown"

// Document is the parsed content of a signature document.
type Document struct {
	// SignatureHex is the hex signature with the algorithm tag removed.
	SignatureHex string

	// Signer is the display name of the signer. It plays no part in
	// verification.
	Signer string

	// Key is the decoded embedded key blob (see [DecodeRSAKey]).
	Key []byte
}

type signatureXML struct {
	XMLName     xml.Name       `xml:"KeeShare"`
	Signature   string         `xml:"Signature"`
	Certificate certificateXML `xml:"Certificate"`
}

type certificateXML struct {
	Signer string `xml:"Signer"`
	Key    string `xml:"Key"`
}

// ParseSignatureDocument parses the XML signature document text.
//
// It fails with [ErrFormat] when the text is not a KeeShare document, when
// the signature value is empty, or when the key blob is absent or not
// base64, and with [ErrUnsupportedAlgorithm] when the signature value does
// not start with [RSATag].
func ParseSignatureDocument(text string) (Document, error) {
	var raw signatureXML
	if err := xml.Unmarshal([]byte(text), &raw); err != nil {
		return Document{}, fmt.Errorf("%w: parse signature document: %w", ErrFormat, err)
	}

	sig := strings.TrimSpace(raw.Signature)
	if sig == "" {
		return Document{}, fmt.Errorf("%w: signature element not found in signature document", ErrFormat)
	}
	if !strings.HasPrefix(sig, RSATag) {
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, truncate(sig, 20))
	}

	signer := strings.TrimSpace(raw.Certificate.Signer)
	if signer == "" {
		signer = UnknownSigner
	}

	keyText := strings.Join(strings.Fields(raw.Certificate.Key), "")
	if keyText == "" {
		return Document{}, fmt.Errorf("%w: certificate key not found in signature document", ErrFormat)
	}
	key, err := base64.StdEncoding.DecodeString(keyText)
	if err != nil {
		return Document{}, fmt.Errorf("%w: decode certificate key: %w", ErrFormat, err)
	}

	return Document{
		SignatureHex: strings.TrimPrefix(sig, RSATag),
		Signer:       signer,
		Key:          key,
	}, nil
}

// MarshalSignatureDocument renders a signature document for the given raw
// signature, signer name and embedded key blob.
func MarshalSignatureDocument(signature []byte, signer string, key []byte) (string, error) {
	doc := signatureXML{
		Signature: RSATag + hex.EncodeToString(signature),
		Certificate: certificateXML{
			Signer: signer,
			Key:    base64.StdEncoding.EncodeToString(key),
		},
	}

	out, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal signature document: %w", err)
	}

	return xml.Header + string(out) + "\n", nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
