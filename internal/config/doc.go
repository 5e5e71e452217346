// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the share-import and share-export tools.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags and positional arguments
//
// The main entry points are [GetImportConfig] and [GetExportConfig]. Both
// return a validated view of the merged [StructuredConfig].
package config
