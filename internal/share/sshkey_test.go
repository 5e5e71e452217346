// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package share

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
)

// field encodes one length-prefixed field.
func field(b []byte) []byte {
	out := binary.BigEndian.AppendUint32(nil, uint32(len(b)))
	return append(out, b...)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// TestDecodeRSAKey_RoundTrip verifies that a real 2048-bit key survives
// encoding and decoding.
func TestDecodeRSAKey_RoundTrip(t *testing.T) {
	priv, _ := testKeys(t)
	want := NewSigner(priv).PublicKey()

	encoded, err := EncodeRSAKey(want)
	require.NoError(t, err)

	got, err := DecodeRSAKey(encoded)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
	assert.Equal(t, 0, got.N.Cmp(priv.N))
	assert.Equal(t, int64(priv.E), got.E.Int64())
}

// TestDecodeRSAKey_LeadingZeros verifies that sign-padded integers decode to
// the same numeric values.
func TestDecodeRSAKey_LeadingZeros(t *testing.T) {
	data := concat(
		field([]byte(RSAKeyType)),
		field([]byte{0x00, 0x01, 0x00, 0x01}),
		field([]byte{0x00, 0x00, 0xc3, 0x51}),
	)

	got, err := DecodeRSAKey(data)
	require.NoError(t, err)
	assert.Equal(t, int64(65537), got.E.Int64())
	assert.Equal(t, int64(0xc351), got.N.Int64())

	plain := RSAKey{E: big.NewInt(65537), N: big.NewInt(0xc351)}
	assert.True(t, got.Equal(plain))
}

// TestDecodeRSAKey_TrailingBytesIgnored verifies that data after the
// modulus is not an error.
func TestDecodeRSAKey_TrailingBytesIgnored(t *testing.T) {
	data := concat(field([]byte(RSAKeyType)), field([]byte{3}), field([]byte{5}), []byte{0xff, 0xff})

	got, err := DecodeRSAKey(data)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.E.Int64())
	assert.Equal(t, int64(5), got.N.Int64())
}

// TestDecodeRSAKey_UnsupportedKeyType verifies that other key families are
// rejected.
func TestDecodeRSAKey_UnsupportedKeyType(t *testing.T) {
	for _, tag := range []string{"ssh-ed25519", "ssh-rs", "SSH-RSA", ""} {
		t.Run(tag, func(t *testing.T) {
			data := concat(field([]byte(tag)), field([]byte{3}), field([]byte{5}))
			_, err := DecodeRSAKey(data)
			require.ErrorIs(t, err, ErrUnsupportedKeyType)
		})
	}
}

// TestDecodeRSAKey_Truncated verifies that any declared length running past
// the buffer is reported as truncated data.
func TestDecodeRSAKey_Truncated(t *testing.T) {
	full := concat(field([]byte(RSAKeyType)), field([]byte{1, 0, 1}), field([]byte{9, 9, 9, 9}))

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short length", []byte{0, 0}},
		{"type overruns", concat([]byte{0, 0, 0, 50}, []byte(RSAKeyType))},
		{"missing exponent", field([]byte(RSAKeyType))},
		{"exponent overruns", concat(field([]byte(RSAKeyType)), []byte{0, 0, 1, 0, 1})},
		{"missing modulus", concat(field([]byte(RSAKeyType)), field([]byte{3}))},
		{"modulus cut", full[:len(full)-1]},
		{"huge length", concat(field([]byte(RSAKeyType)), []byte{0xff, 0xff, 0xff, 0xff, 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRSAKey(tt.data)
			require.ErrorIs(t, err, ErrTruncatedData)
		})
	}
}

// TestReadUint32Prefixed verifies the field reader consumes exactly the
// declared length and leaves the input untouched past it.
func TestReadUint32Prefixed(t *testing.T) {
	t.Run("reads fields in order", func(t *testing.T) {
		in := cryptobyte.String(concat(field([]byte("ab")), field(nil), []byte{7}))

		var first, second cryptobyte.String
		require.True(t, readUint32Prefixed(&in, &first))
		require.True(t, readUint32Prefixed(&in, &second))
		assert.Equal(t, "ab", string(first))
		assert.Empty(t, second)
		assert.Equal(t, []byte{7}, []byte(in))
	})

	t.Run("length past end", func(t *testing.T) {
		in := cryptobyte.String(concat([]byte{0, 0, 0, 4}, []byte("abc")))

		var out cryptobyte.String
		assert.False(t, readUint32Prefixed(&in, &out))
	})

	t.Run("max length", func(t *testing.T) {
		in := cryptobyte.String([]byte{0xff, 0xff, 0xff, 0xff, 1, 2})

		var out cryptobyte.String
		assert.False(t, readUint32Prefixed(&in, &out))
	})
}

// TestRSAKey_Equal verifies value comparison, including nil components.
func TestRSAKey_Equal(t *testing.T) {
	a := RSAKey{E: big.NewInt(3), N: big.NewInt(77)}

	assert.True(t, a.Equal(RSAKey{E: big.NewInt(3), N: big.NewInt(77)}))
	assert.False(t, a.Equal(RSAKey{E: big.NewInt(5), N: big.NewInt(77)}))
	assert.False(t, a.Equal(RSAKey{E: big.NewInt(3), N: big.NewInt(91)}))
	assert.False(t, a.Equal(RSAKey{}))
	assert.False(t, RSAKey{}.Equal(RSAKey{}))
}

// TestRSAKey_Fingerprint verifies the digest layout (modulus then exponent).
func TestRSAKey_Fingerprint(t *testing.T) {
	k := RSAKey{E: big.NewInt(3), N: big.NewInt(0x0102)}

	assert.Equal(t,
		"039058c6f2c0cb492c533b0a4d14ef77cc0f78abccced5287d84a1a2011cfb81",
		k.Fingerprint(),
	)
}
