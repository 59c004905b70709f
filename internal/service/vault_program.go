// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/confidential-vault/internal/codec"
	"github.com/MKhiriev/confidential-vault/internal/coprocessor"
	"github.com/MKhiriev/confidential-vault/internal/derive"
	"github.com/MKhiriev/confidential-vault/internal/instruction"
	"github.com/MKhiriev/confidential-vault/internal/ledger"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/metrics"
	"github.com/MKhiriev/confidential-vault/internal/validators"
	"github.com/MKhiriev/confidential-vault/models"
)

// VaultProgram is the confidential vault as a [ledger.Program].
//
// Every entry point re-derives the addresses it expects and compares them
// with the accounts it was handed. Balance math goes exclusively through the
// arithmetic unit; the program never sees a plaintext balance.
type VaultProgram struct {
	deriver    *derive.Deriver
	arithmetic coprocessor.Arithmetic
	intents    validators.Validator
	scheme     models.BalanceScheme
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

func NewVaultProgram(
	deriver *derive.Deriver,
	arithmetic coprocessor.Arithmetic,
	intents validators.Validator,
	scheme models.BalanceScheme,
	m *metrics.Metrics,
	logger *logger.Logger,
) *VaultProgram {
	return &VaultProgram{
		deriver:    deriver,
		arithmetic: arithmetic,
		intents:    intents,
		scheme:     scheme,
		metrics:    m,
		logger:     logger,
	}
}

func (p *VaultProgram) ProgramID() models.AccountID {
	return p.deriver.ProgramID()
}

// Process implements [ledger.Program].
func (p *VaultProgram) Process(ctx context.Context, env *ledger.Env, accounts []*ledger.AccountInfo, data []byte) (err error) {
	if env.ProgramID() != p.ProgramID() {
		return ErrWrongProgram
	}

	ix, err := instruction.Decode(data, p.scheme)
	if err != nil {
		return err
	}

	op := ix.Tag().String()
	started := time.Now()
	defer func() {
		p.metrics.ObserveInstruction(op, err, started)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Str("func", "VaultProgram.Process").
				Str("operation", op).Msg("instruction rejected")
		}
	}()

	switch ix := ix.(type) {
	case models.Initialize:
		return p.initialize(ctx, env, accounts, ix)
	case models.Deposit:
		return p.deposit(ctx, env, accounts, ix)
	case models.Withdraw:
		return p.withdraw(ctx, env, accounts, ix)
	case models.DelegatedExecute:
		return p.delegatedExecute(ctx, env, accounts, ix)
	case models.RegisterIntentKey:
		return p.registerIntentKey(ctx, env, accounts, ix)
	default:
		return ErrWrongProgram
	}
}

func requireAccounts(accounts []*ledger.AccountInfo, n int) error {
	if len(accounts) < n {
		return ErrNotEnoughAccounts
	}
	return nil
}

func requireSigner(acc *ledger.AccountInfo) error {
	if !acc.IsSigner {
		return ErrSignerRequired
	}
	return nil
}

func requireAddress(acc *ledger.AccountInfo, want derive.Address, err error) error {
	if err != nil {
		return err
	}
	if acc.Key != want.Key {
		return ErrAddressMismatch
	}
	return nil
}

// loadParticipant reads an existing participant record and checks its owner.
func (p *VaultProgram) loadParticipant(acc *ledger.AccountInfo, owner models.AccountID) (models.ParticipantRecord, error) {
	if !acc.OwnedByProgram() {
		return models.ParticipantRecord{}, ErrUninitializedRecord
	}
	rec, err := codec.DecodeParticipant(acc.Data(), p.scheme)
	if err != nil {
		return models.ParticipantRecord{}, err
	}
	if rec.Owner != owner {
		return models.ParticipantRecord{}, ErrOwnerMismatch
	}
	return rec, nil
}

// loadConfig reads the delegate configuration, failing when it was never
// initialized.
func loadConfig(acc *ledger.AccountInfo) (models.DelegateConfig, error) {
	if !acc.OwnedByProgram() {
		return models.DelegateConfig{}, ErrNotInitialized
	}
	cfg, err := codec.DecodeDelegateConfig(acc.Data())
	if err != nil {
		return models.DelegateConfig{}, err
	}
	if !cfg.Initialized {
		return models.DelegateConfig{}, ErrNotInitialized
	}
	return cfg, nil
}
