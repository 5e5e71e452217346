// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package share

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
)

// RSAKeyType is the type tag of an embedded RSA key.
const RSAKeyType = "ssh-rsa"

// RSAKey is the numeric form of an RSA public key. The exponent is kept as
// a big integer so that encodings with arbitrary widths compare correctly.
type RSAKey struct {
	E *big.Int
	N *big.Int
}

// Equal reports whether k and other denote the same key by value.
func (k RSAKey) Equal(other RSAKey) bool {
	if k.E == nil || k.N == nil || other.E == nil || other.N == nil {
		return false
	}
	return k.E.Cmp(other.E) == 0 && k.N.Cmp(other.N) == 0
}

// Fingerprint returns the lowercase hex SHA-256 over the modulus bytes
// followed by the exponent bytes.
func (k RSAKey) Fingerprint() string {
	h := sha256.New()
	h.Write(k.N.Bytes())
	h.Write(k.E.Bytes())
	return hex.EncodeToString(h.Sum(nil))
}

// DecodeRSAKey decodes the embedded key encoding: three consecutive fields,
// each a 4-byte big-endian length followed by that many bytes, holding the
// type tag, the public exponent and the modulus.
//
// It returns [ErrTruncatedData] when a length prefix runs past the buffer and
// [ErrUnsupportedKeyType] when the tag is not [RSAKeyType]. Trailing bytes
// after the modulus are ignored.
func DecodeRSAKey(b []byte) (RSAKey, error) {
	s := cryptobyte.String(b)

	var keyType, e, n cryptobyte.String
	if !readUint32Prefixed(&s, &keyType) {
		return RSAKey{}, fmt.Errorf("%w: key type", ErrTruncatedData)
	}
	if string(keyType) != RSAKeyType {
		return RSAKey{}, fmt.Errorf("%w: expected %s key type, got %q", ErrUnsupportedKeyType, RSAKeyType, truncate(string(keyType), 32))
	}
	if !readUint32Prefixed(&s, &e) {
		return RSAKey{}, fmt.Errorf("%w: exponent", ErrTruncatedData)
	}
	if !readUint32Prefixed(&s, &n) {
		return RSAKey{}, fmt.Errorf("%w: modulus", ErrTruncatedData)
	}

	return RSAKey{
		E: new(big.Int).SetBytes(e),
		N: new(big.Int).SetBytes(n),
	}, nil
}

// readUint32Prefixed reads a 4-byte big-endian length followed by that many
// bytes into out.
func readUint32Prefixed(s *cryptobyte.String, out *cryptobyte.String) bool {
	var l uint32
	var b []byte
	if !s.ReadUint32(&l) || uint64(l) > uint64(len(*s)) || !s.ReadBytes(&b, int(l)) {
		return false
	}
	*out = b
	return true
}

// EncodeRSAKey produces the embedded key encoding of k using minimal
// big-endian integer bytes.
func EncodeRSAKey(k RSAKey) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes([]byte(RSAKeyType))
	})
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(k.E.Bytes())
	})
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(k.N.Bytes())
	})

	out, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode rsa key: %w", err)
	}
	return out, nil
}
