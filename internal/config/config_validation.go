// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/confidential-vault/models"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// validate checks the merged configuration before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if _, err := cfg.App.ParsedProgramID(); err != nil {
		return fmt.Errorf("%w: program id: %v", ErrInvalidAppConfigs, err)
	}
	scheme, err := cfg.App.Scheme()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	if cfg.Ledger.LamportsPerByteYear == 0 || cfg.Ledger.MaxTransactionAge <= 0 ||
		cfg.Ledger.SeenSignatureCacheSize <= 0 || cfg.Ledger.DerivationCacheSize <= 0 {
		return ErrInvalidLedgerConfigs
	}

	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if scheme == models.SchemeConfidential && cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.MonitorInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ParsedProgramID decodes ProgramID.
func (a App) ParsedProgramID() (models.AccountID, error) {
	return models.ParseAccountID(a.ProgramID)
}

// Scheme decodes BalanceScheme.
func (a App) Scheme() (models.BalanceScheme, error) {
	return models.ParseBalanceScheme(a.BalanceScheme)
}
