// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to fields left empty by every other source.
const (
	DefaultBalanceScheme          = "confidential"
	DefaultLogLevel               = "info"
	DefaultLamportsPerByteYear    = 3480
	DefaultMaxTransactionAge      = 2 * time.Minute
	DefaultSeenSignatureCacheSize = 65536
	DefaultDerivationCacheSize    = 4096
	DefaultMaxRetries             = 5
	DefaultStorageDriver          = "memory"
	DefaultRequestTimeout         = 30 * time.Second
	DefaultAdapterTimeout         = 10 * time.Second
	DefaultTokenIssuer            = "confidential-vault"
	DefaultTokenDuration          = time.Minute
	DefaultMonitorInterval        = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			BalanceScheme: DefaultBalanceScheme,
			LogLevel:      DefaultLogLevel,
		},
		Ledger: Ledger{
			LamportsPerByteYear:    DefaultLamportsPerByteYear,
			MaxTransactionAge:      DefaultMaxTransactionAge,
			SeenSignatureCacheSize: DefaultSeenSignatureCacheSize,
			DerivationCacheSize:    DefaultDerivationCacheSize,
			MaxRetries:             DefaultMaxRetries,
		},
		Storage: Storage{
			Driver: DefaultStorageDriver,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterTimeout,
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
		},
		Workers: Workers{
			MonitorInterval: DefaultMonitorInterval,
		},
	}
}
