// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the layout of the JSON config file. Passwords
// have no JSON fields: they come from the environment, flags or the
// terminal prompt only.
type StructuredJSONConfig struct {
	Share struct {
		File string `json:"file"`
	} `json:"share,omitempty"`

	Vault struct {
		Path string `json:"path"`
	} `json:"vault,omitempty"`

	TrustCertificate string `json:"trust_certificate"`

	Export struct {
		Group      string `json:"group"`
		SigningKey string `json:"signing_key"`
		Signer     string `json:"signer"`
		Overwrite  bool   `json:"overwrite"`
	} `json:"export,omitempty"`

	KDF struct {
		Time    uint32 `json:"time"`
		Memory  uint32 `json:"memory"`
		Threads uint8  `json:"threads"`
	} `json:"kdf,omitempty"`

	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"log,omitempty"`

	DryRun bool `json:"dry_run"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()

	var jsonCfg StructuredJSONConfig
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Share:            Share{File: jsonCfg.Share.File},
		Vault:            Vault{Path: jsonCfg.Vault.Path},
		TrustCertificate: jsonCfg.TrustCertificate,
		Export: Export{
			Group:      jsonCfg.Export.Group,
			SigningKey: jsonCfg.Export.SigningKey,
			Signer:     jsonCfg.Export.Signer,
			Overwrite:  jsonCfg.Export.Overwrite,
		},
		KDF: KDF{
			Time:    jsonCfg.KDF.Time,
			Memory:  jsonCfg.KDF.Memory,
			Threads: jsonCfg.KDF.Threads,
		},
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Format: jsonCfg.Log.Format,
		},
		DryRun:       jsonCfg.DryRun,
		JSONFilePath: "",
	}

	return cfg, nil
}
