// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package share reads, verifies and writes signed share containers.
//
// A share container is a ZIP archive with two members: the vault payload
// ([PayloadName]) and an XML signature document ([SignatureName]). The
// signature document carries an RSA PKCS#1 v1.5 / SHA-256 signature over the
// payload, a free-text signer name and a copy of the signer's public key in
// the length-prefixed "ssh-rsa" encoding.
//
// The embedded key is never a root of trust. [Verify] first requires the
// embedded key to be numerically equal to a [TrustedKey] loaded from a file
// the user supplied, and then checks the signature with that trusted key.
//
// The typical import pipeline is:
//
//	trusted, _ := share.LoadTrustedKey(certPath)
//	c, _ := share.Extract(containerBytes)
//	doc, _ := share.ParseSignatureDocument(c.Signature)
//	err := share.Check(c.Payload, doc.SignatureHex, doc.Key, trusted)
package share
