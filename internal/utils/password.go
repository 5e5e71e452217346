// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PromptPassword reads a password from in without echo. ok is false when
// in is not a terminal; nothing is read or written then.
func PromptPassword(in *os.File, out io.Writer, prompt string) (password string, ok bool, err error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return "", false, nil
	}

	fmt.Fprint(out, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", true, fmt.Errorf("read password: %w", err)
	}

	return string(secret), true, nil
}
