// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists ledger accounts.
//
// Every backend exposes the same transactional contract: an invocation opens
// one [AccountTx], reads the accounts it declared (locking them where the
// backend can), stages writes and commits them together or not at all.
// Addresses that were never written read back as empty accounts.
package store

import (
	"context"

	"github.com/MKhiriev/confidential-vault/models"
)

// AccountStore is the entry point to a persistence backend.
type AccountStore interface {
	ErrorClassificator

	// Begin opens a read-write transaction.
	Begin(ctx context.Context) (AccountTx, error)

	// GetAccount reads committed state outside any transaction.
	GetAccount(ctx context.Context, key models.AccountID) (models.Account, error)

	Close() error
}

// AccountTx is one all-or-nothing unit of work.
type AccountTx interface {
	// GetForUpdate reads key and, where supported, locks it until the
	// transaction ends.
	GetForUpdate(ctx context.Context, key models.AccountID) (models.Account, error)

	// Put stages acc. It becomes visible to others only after Commit.
	Put(ctx context.Context, acc models.Account) error

	Commit() error

	// Rollback discards staged writes. Calling it after Commit is a no-op.
	Rollback() error
}

// ErrorClassificator tells the ledger host whether a failed invocation may be
// re-run.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
