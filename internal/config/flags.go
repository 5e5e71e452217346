// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"math"
)

// Tool names used as flag set names and in usage output.
const (
	ImportToolName = "share-import"
	ExportToolName = "share-export"
)

// parseImportFlags parses share-import arguments.
//
// Usage:
//
//	share-import [flags] <share_file> <database> <certificate>
//
// Flags:
//
//	-p/-password target vault password (also used for the share when -share-password is unset)
//	-share-password password of the vault inside the share
//	-dry-run merge without saving
//	-c/-config json file path with configs
//	-log-level zerolog level name
//	-log-format json or console
func parseImportFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet(ImportToolName, flag.ContinueOnError)
	fs.StringVar(&cfg.Vault.Password, "p", "", "Vault password")
	fs.StringVar(&cfg.Vault.Password, "password", "", "Vault password (alias)")
	fs.StringVar(&cfg.Share.Password, "share-password", "", "Password of the share (defaults to the vault password)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Merge without saving the vault")
	registerCommonFlags(fs, cfg)
	fs.Usage = usage(fs, "[flags] <share_file> <database> <certificate>")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return nil, err
	}
	if len(positional) > 3 {
		return nil, fmt.Errorf("%w: %v", ErrTooManyArguments, positional[3:])
	}

	targets := []*string{&cfg.Share.File, &cfg.Vault.Path, &cfg.TrustCertificate}
	for i, value := range positional {
		*targets[i] = value
	}

	return cfg, nil
}

// parseExportFlags parses share-export arguments.
//
// Usage:
//
//	share-export [flags] <database> <output>
//
// Flags:
//
//	-g/-group path of the exported group, e.g. "Team/Ops"
//	-k/-signing-key PEM private key path
//	-signer signer name written into the signature
//	-p/-password source vault password
//	-share-password password of the exported vault (defaults to the vault password)
//	-overwrite replace an existing output file
//	-kdf-time, -kdf-memory, -kdf-threads Argon2id parameters of the exported vault
//	-c/-config json file path with configs
//	-log-level zerolog level name
//	-log-format json or console
func parseExportFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var kdfTime, kdfMemory, kdfThreads uint

	fs := flag.NewFlagSet(ExportToolName, flag.ContinueOnError)
	fs.StringVar(&cfg.Export.Group, "g", "", "Exported group path")
	fs.StringVar(&cfg.Export.Group, "group", "", "Exported group path (alias)")
	fs.StringVar(&cfg.Export.SigningKey, "k", "", "Signing key path")
	fs.StringVar(&cfg.Export.SigningKey, "signing-key", "", "Signing key path (alias)")
	fs.StringVar(&cfg.Export.Signer, "signer", "", "Signer name")
	fs.StringVar(&cfg.Vault.Password, "p", "", "Vault password")
	fs.StringVar(&cfg.Vault.Password, "password", "", "Vault password (alias)")
	fs.StringVar(&cfg.Share.Password, "share-password", "", "Password of the share (defaults to the vault password)")
	fs.BoolVar(&cfg.Export.Overwrite, "overwrite", false, "Replace an existing output file")
	fs.UintVar(&kdfTime, "kdf-time", 0, "Argon2id iterations")
	fs.UintVar(&kdfMemory, "kdf-memory", 0, "Argon2id memory in KiB")
	fs.UintVar(&kdfThreads, "kdf-threads", 0, "Argon2id threads")
	registerCommonFlags(fs, cfg)
	fs.Usage = usage(fs, "[flags] <database> <output>")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return nil, err
	}
	if len(positional) > 2 {
		return nil, fmt.Errorf("%w: %v", ErrTooManyArguments, positional[2:])
	}

	targets := []*string{&cfg.Vault.Path, &cfg.Share.File}
	for i, value := range positional {
		*targets[i] = value
	}

	if kdfTime > math.MaxUint32 || kdfMemory > math.MaxUint32 || kdfThreads > math.MaxUint8 {
		return nil, fmt.Errorf("kdf parameter out of range")
	}
	cfg.KDF = KDF{Time: uint32(kdfTime), Memory: uint32(kdfMemory), Threads: uint8(kdfThreads)}

	return cfg, nil
}

func registerCommonFlags(fs *flag.FlagSet, cfg *StructuredConfig) {
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.Format, "log-format", "", "Log format (json, console)")
}

// parseInterleaved parses args allowing flags after positional arguments
// and returns the positional arguments in order.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func usage(fs *flag.FlagSet, synopsis string) func() {
	return func() {
		fmt.Fprintf(fs.Output(), "Usage: %s %s\n\nFlags:\n", fs.Name(), synopsis)
		fs.PrintDefaults()
	}
}
