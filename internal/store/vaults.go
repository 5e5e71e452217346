// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

var _ VaultRepository = (*Vault)(nil)

// Vaults opens and creates vault files with a fixed set of [Options].
type Vaults struct {
	opts Options
}

func NewVaults(opts Options) *Vaults {
	return &Vaults{opts: opts.withDefaults()}
}

func (s *Vaults) Open(ctx context.Context, path, password string) (VaultRepository, error) {
	return s.open(OpenVault(ctx, path, password, s.opts))
}

func (s *Vaults) OpenBytes(ctx context.Context, data []byte, password string) (VaultRepository, error) {
	return s.open(OpenVaultBytes(ctx, data, password, s.opts))
}

func (s *Vaults) Create(ctx context.Context, path, password string) (VaultRepository, error) {
	return s.open(CreateVault(ctx, path, password, s.opts))
}

// open keeps a failed open from surfacing as a non-nil interface holding a
// nil *Vault.
func (s *Vaults) open(v *Vault, err error) (VaultRepository, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
