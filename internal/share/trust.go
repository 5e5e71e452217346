// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package share

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
)

// TrustedKey is the externally supplied RSA public key that is the root of
// trust for share verification. Signatures are checked with RSA PKCS#1 v1.5
// over a SHA-256 digest.
type TrustedKey struct {
	pub *rsa.PublicKey
}

// NewTrustedKey wraps an RSA public key.
func NewTrustedKey(pub *rsa.PublicKey) *TrustedKey {
	return &TrustedKey{pub: pub}
}

// LoadTrustedKey reads a PEM file from path and returns the RSA key it
// holds. The first PEM block is interpreted as a standalone public key
// (PKIX or PKCS#1) and, failing that, as an X.509 certificate whose subject
// key is used. Any other content yields [ErrInvalidCertificate].
func LoadTrustedKey(path string) (*TrustedKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trusted key file: %w", err)
	}
	return ParseTrustedKey(data)
}

// ParseTrustedKey is [LoadTrustedKey] for PEM data already in memory.
func ParseTrustedKey(pemData []byte) (*TrustedKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidCertificate)
	}

	if pub, err := parsePublicKey(block.Bytes); err == nil {
		return toTrustedKey(pub)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid PEM public key or certificate", ErrInvalidCertificate)
	}
	return toTrustedKey(cert.PublicKey)
}

func parsePublicKey(der []byte) (any, error) {
	if pub, err := x509.ParsePKIXPublicKey(der); err == nil {
		return pub, nil
	}
	return x509.ParsePKCS1PublicKey(der)
}

func toTrustedKey(pub any) (*TrustedKey, error) {
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: key is %T, not RSA", ErrInvalidCertificate, pub)
	}
	return &TrustedKey{pub: rsaPub}, nil
}

// Numbers returns the exponent and modulus of the key.
func (k *TrustedKey) Numbers() RSAKey {
	return RSAKey{
		E: big.NewInt(int64(k.pub.E)),
		N: new(big.Int).Set(k.pub.N),
	}
}

// Fingerprint returns the key fingerprint, see [RSAKey.Fingerprint].
func (k *TrustedKey) Fingerprint() string {
	return k.Numbers().Fingerprint()
}

// VerifySignature checks sig over data. It returns
// [ErrVerificationFailed] when the signature is not valid.
func (k *TrustedKey) VerifySignature(data, sig []byte) error {
	digest := sha256.Sum256(data)
	if err := rsa.VerifyPKCS1v15(k.pub, crypto.SHA256, digest[:], sig); err != nil {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	return nil
}

// Signer produces share signatures with an RSA private key.
type Signer struct {
	priv *rsa.PrivateKey
}

// NewSigner wraps an RSA private key.
func NewSigner(priv *rsa.PrivateKey) *Signer {
	return &Signer{priv: priv}
}

// LoadSigner reads a PEM encoded RSA private key (PKCS#1 or PKCS#8) from
// path.
func LoadSigner(path string) (*Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key file: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidPrivateKey)
	}

	if priv, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return NewSigner(priv), nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: key is %T, not RSA", ErrInvalidPrivateKey, key)
	}
	return NewSigner(priv), nil
}

// Sign returns the RSA PKCS#1 v1.5 signature of the SHA-256 digest of data.
func (s *Signer) Sign(data []byte) ([]byte, error) {
	digest := sha256.Sum256(data)
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.priv, crypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("sign payload: %w", err)
	}
	return sig, nil
}

// PublicKey returns the numeric public half of the signing key.
func (s *Signer) PublicKey() RSAKey {
	return NewTrustedKey(&s.priv.PublicKey).Numbers()
}
