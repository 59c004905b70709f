package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing or malformed program id or an
	// unknown balance scheme.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLedgerConfigs indicates non-positive ledger limits.
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or a missing DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listener address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a confidential deployment without a
	// coprocessor address.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates a zero monitor interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
