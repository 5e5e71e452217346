// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package share

import "errors"

// Container and signature document errors.
var (
	// ErrFormat is returned when the container or the signature document is
	// structurally invalid: a required member or field is missing, the XML
	// cannot be parsed, or the key blob is not valid base64.
	ErrFormat = errors.New("invalid share format")

	// ErrCorruptArchive is returned when the container bytes are not a
	// readable ZIP archive.
	ErrCorruptArchive = errors.New("corrupt share archive")

	// ErrUnsupportedAlgorithm is returned when the signature value carries an
	// algorithm tag other than "rsa|".
	ErrUnsupportedAlgorithm = errors.New("unsupported signature algorithm")
)

// Embedded key errors.
var (
	// ErrUnsupportedKeyType is returned when the embedded key type tag is not
	// "ssh-rsa".
	ErrUnsupportedKeyType = errors.New("unsupported key type")

	// ErrTruncatedData is returned when a length prefix of the embedded key
	// points past the end of the buffer.
	ErrTruncatedData = errors.New("truncated key data")
)

// Trust and verification errors.
var (
	// ErrInvalidCertificate is returned when the trusted key file holds
	// neither a PEM public key nor a PEM certificate with an RSA key.
	ErrInvalidCertificate = errors.New("invalid trusted certificate")

	// ErrInvalidPrivateKey is returned when a signing key file cannot be
	// parsed as an RSA private key.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrMalformedSignature is returned when the hex signature cannot be
	// decoded.
	ErrMalformedSignature = errors.New("malformed signature encoding")

	// ErrTrustMismatch is returned when the key embedded in the share does
	// not equal the trusted key.
	ErrTrustMismatch = errors.New("embedded key does not match trusted key")

	// ErrVerificationFailed is returned when the signature does not verify
	// against the payload with the trusted key.
	ErrVerificationFailed = errors.New("signature verification failed")
)
