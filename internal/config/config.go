// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container shared by the
// share-import and share-export tools. It is populated by merging values
// from an optional JSON file, environment variables and command-line
// arguments.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Share holds the share container location and its password.
	Share Share `envPrefix:"SHARE_"`

	// Vault holds the local vault location and its password.
	Vault Vault `envPrefix:"VAULT_"`

	// TrustCertificate is the PEM public key or certificate that imported
	// shares must be signed with.
	// Env: TRUST_CERTIFICATE
	TrustCertificate string `env:"TRUST_CERTIFICATE"`

	// Export holds settings used only by share-export.
	Export Export `envPrefix:"EXPORT_"`

	// KDF holds the Argon2id parameters for vaults created by this process.
	// Existing vaults always open with their stored parameters.
	KDF KDF `envPrefix:"KDF_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// DryRun stops an import after the merge without saving the vault.
	// Env: DRY_RUN
	DryRun bool `env:"DRY_RUN"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Share describes the share container.
type Share struct {
	// File is the path of the container to import or write.
	// Env: SHARE_FILE
	File string `env:"FILE"`

	// Password protects the vault inside the container. When empty, the
	// vault password is used.
	// Env: SHARE_PASSWORD
	Password string `env:"PASSWORD"`
}

// Vault describes the local vault.
type Vault struct {
	// Path is the vault database file.
	// Env: VAULT_PATH
	Path string `env:"PATH"`

	// Password unlocks the vault. Never read from the JSON file.
	// Env: VAULT_PASSWORD
	Password string `env:"PASSWORD"`
}

// Export holds share-export settings.
type Export struct {
	// Group is the "/"-separated path of the exported group. Empty exports
	// the whole vault.
	// Env: EXPORT_GROUP
	Group string `env:"GROUP"`

	// SigningKey is the PEM private key used to sign the container.
	// Env: EXPORT_SIGNING_KEY
	SigningKey string `env:"SIGNING_KEY"`

	// Signer is the display name written into the signature document.
	// Env: EXPORT_SIGNER
	Signer string `env:"SIGNER"`

	// Overwrite allows replacing an existing output file.
	// Env: EXPORT_OVERWRITE
	Overwrite bool `env:"OVERWRITE"`
}

// KDF holds Argon2id parameters. Zero values select the defaults of the
// crypto package.
type KDF struct {
	// Env: KDF_TIME
	Time uint32 `env:"TIME"`
	// Memory in KiB.
	// Env: KDF_MEMORY
	Memory uint32 `env:"MEMORY"`
	// Env: KDF_THREADS
	Threads uint8 `env:"THREADS"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is "json" or "console".
	// Env: LOG_FORMAT
	Format string `env:"FORMAT"`
}
