// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the go-pass-share
// packages.
package utils

import "github.com/google/uuid"

// UUIDGenerator hands out vault node identifiers. Version 7 ids sort by
// creation time, which keeps freshly imported rows together in the file.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether id parses as a UUID of any version.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
