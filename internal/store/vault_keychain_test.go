// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-share/internal/crypto"
	"github.com/MKhiriev/go-pass-share/internal/mock"
	"github.com/MKhiriev/go-pass-share/internal/store"
)

var lowCostOptions = store.Options{KDF: crypto.KDFParams{Time: 1, Memory: 1024, Threads: 1}}

func TestOpenVault_KeyChainFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.db")
	v, err := store.CreateVault(context.Background(), path, "pw", lowCostOptions)
	require.NoError(t, err)
	require.NoError(t, v.Close())

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "authentication failure", err: fmt.Errorf("%w: tag mismatch", crypto.ErrDecrypt), wantErr: store.ErrInvalidCredentials},
		{name: "other failure", err: errors.New("bad key size"), wantErr: store.ErrCorruptVault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			keys := mock.NewMockKeyChainService(ctrl)

			keys.EXPECT().GenerateKEK("pw", gomock.Any()).Return([]byte("kek"))
			keys.EXPECT().DecryptDEK(gomock.Any(), []byte("kek")).Return(nil, tt.err)

			opts := lowCostOptions
			opts.KeyChain = func(params crypto.KDFParams) crypto.KeyChainService {
				assert.Equal(t, lowCostOptions.KDF, params)
				return keys
			}

			_, err := store.OpenVault(context.Background(), path, "pw", opts)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
