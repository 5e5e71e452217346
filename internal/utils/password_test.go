// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptPassword_NotATerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte("secret\n"), 0o600))

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	var out bytes.Buffer
	password, ok, err := PromptPassword(in, &out, "Password: ")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, password)
	assert.Empty(t, out.String(), "no prompt without a terminal")
}
