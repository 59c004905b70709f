// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/confidential-vault/models"
)

// TransactionService accepts signed transaction envelopes and runs them
// through the vault program.
type TransactionService interface {
	Submit(ctx context.Context, tx models.Transaction) (models.Receipt, error)
}

// AccountService serves read-only views of ledger state, plus the
// development faucet.
type AccountService interface {
	GetAccount(ctx context.Context, key models.AccountID) (models.Account, error)
	GetVault(ctx context.Context) (models.VaultSummary, error)
	GetConfig(ctx context.Context) (models.DelegateConfig, error)
	GetParticipant(ctx context.Context, owner models.AccountID) (models.ParticipantRecord, error)
	GetIntentKey(ctx context.Context, owner models.AccountID) (models.IntentKey, error)
	Airdrop(ctx context.Context, key models.AccountID, lamports uint64) (models.Account, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// GetAppInfo describes the deployment: version, program and scheme.
	GetAppInfo(ctx context.Context) models.AppInfo
}

// TransactionServiceWrapper defines middleware composition for
// TransactionService. Implementations wrap an existing TransactionService to
// add behavior such as validation.
type TransactionServiceWrapper interface {
	Wrap(TransactionService) TransactionService
}
