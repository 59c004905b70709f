// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the vault server. It is
// populated by merging environment variables, command-line flags, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App identifies the program and selects the balance scheme.
	App App `envPrefix:"APP_"`

	// Ledger tunes the ledger host: rent, transaction expiry, caches, retries.
	Ledger Ledger `envPrefix:"LEDGER_"`

	// Storage selects the account store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP and gRPC listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the link to the confidential-compute coprocessor.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers configures background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds program-level settings.
type App struct {
	// ProgramID is the base58 address of the vault program. All derived
	// accounts are derived under it.
	// Env: APP_PROGRAM_ID
	ProgramID string `env:"PROGRAM_ID"`

	// BalanceScheme is "confidential" or "plaintext".
	// Env: APP_BALANCE_SCHEME
	BalanceScheme string `env:"BALANCE_SCHEME"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Ledger holds ledger host settings.
type Ledger struct {
	// LamportsPerByteYear is the rent rate. Accounts are funded with two
	// years of rent for (128 + data length) bytes.
	// Env: LEDGER_LAMPORTS_PER_BYTE_YEAR
	LamportsPerByteYear uint64 `env:"LAMPORTS_PER_BYTE_YEAR"`

	// MaxTransactionAge caps how far ahead a transaction may expire. Seen
	// signatures are kept this long.
	// Env: LEDGER_MAX_TRANSACTION_AGE
	MaxTransactionAge time.Duration `env:"MAX_TRANSACTION_AGE"`

	// SeenSignatureCacheSize is how many unexpired transactions may be
	// remembered at once. New transactions are refused while it is full.
	// Env: LEDGER_SEEN_SIGNATURE_CACHE_SIZE
	SeenSignatureCacheSize int `env:"SEEN_SIGNATURE_CACHE_SIZE"`

	// DerivationCacheSize bounds the derived-address cache.
	// Env: LEDGER_DERIVATION_CACHE_SIZE
	DerivationCacheSize int `env:"DERIVATION_CACHE_SIZE"`

	// MaxRetries bounds re-runs of an invocation after a retryable storage
	// error (serialization failure, deadlock, lost connection).
	// Env: LEDGER_MAX_RETRIES
	MaxRetries uint64 `env:"MAX_RETRIES"`

	// AirdropEnabled exposes the development faucet endpoint.
	// Env: LEDGER_AIRDROP_ENABLED
	AirdropEnabled bool `env:"AIRDROP_ENABLED"`
}

// Storage selects and configures the account store.
type Storage struct {
	// Driver is one of "memory", "postgres" or "sqlite".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational backends.
type DB struct {
	// DSN is a PostgreSQL connection string or an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter configures the coprocessor client. Ignored under the plaintext
// scheme.
type Adapter struct {
	// HTTPAddress is the coprocessor base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every coprocessor round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey signs the HS256 bearer tokens sent with each call. Empty
	// disables authentication.
	// Env: ADAPTER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of those tokens.
	// Env: ADAPTER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of each token.
	// Env: ADAPTER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// MonitorInterval is how often the vault monitor samples the holding
	// account.
	// Env: WORKERS_MONITOR_INTERVAL
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration.
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
