// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ledger hosts programs over persisted accounts.
//
// An invocation names a program, the accounts it may touch and opaque
// instruction data. The [Host] locks those accounts, loads them inside one
// store transaction, runs the program against in-memory copies and commits
// the result only if the program succeeds and the ledger invariants hold:
// lamports are conserved, read-only accounts are untouched and only
// program-owned accounts change data. Any error leaves the store unchanged.
package ledger

import (
	"bytes"
	"context"
	"fmt"
	"math/bits"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/metrics"
	"github.com/MKhiriev/confidential-vault/internal/store"
	"github.com/MKhiriev/confidential-vault/models"
)

// MaxAccounts bounds the accounts one invocation may declare.
const MaxAccounts = 64

const defaultRetryBase = 10 * time.Millisecond

// Program is code the host can run.
type Program interface {
	// Process executes one instruction. accounts follow the order the
	// invocation declared them; repeated keys share one *AccountInfo.
	Process(ctx context.Context, env *Env, accounts []*AccountInfo, data []byte) error
}

// Invocation is one request to run a program.
type Invocation struct {
	ProgramID models.AccountID
	Accounts  []models.AccountMeta
	Data      []byte
}

// Host runs programs against an [store.AccountStore].
type Host struct {
	store      store.AccountStore
	locks      *lockTable
	rent       Rent
	maxRetries uint64
	retryBase  time.Duration
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// NewHost builds a host over s. m may be nil.
func NewHost(s store.AccountStore, cfg config.Ledger, m *metrics.Metrics, log *logger.Logger) *Host {
	return &Host{
		store:      s,
		locks:      newLockTable(defaultLockStripes),
		rent:       Rent{LamportsPerByteYear: cfg.LamportsPerByteYear},
		maxRetries: cfg.MaxRetries,
		retryBase:  defaultRetryBase,
		metrics:    m,
		logger:     log,
	}
}

func (h *Host) Rent() Rent {
	return h.rent
}

// Invoke runs program over inv and commits its effects atomically.
func (h *Host) Invoke(ctx context.Context, inv Invocation, program Program) error {
	if len(inv.Accounts) > MaxAccounts {
		return ErrTooManyAccounts
	}

	keys := make([]models.AccountID, 0, len(inv.Accounts))
	for _, meta := range inv.Accounts {
		keys = append(keys, meta.PubKey)
	}

	unlock := h.locks.lock(keys)
	defer unlock()

	return h.withRetry(ctx, "Host.Invoke", func(ctx context.Context) error {
		return h.invokeOnce(ctx, inv, program)
	})
}

// Airdrop credits lamports to key out of thin air. It exists for development
// deployments only.
func (h *Host) Airdrop(ctx context.Context, key models.AccountID, lamports uint64) (models.Account, error) {
	unlock := h.locks.lock([]models.AccountID{key})
	defer unlock()

	var result models.Account
	err := h.withRetry(ctx, "Host.Airdrop", func(ctx context.Context) error {
		tx, err := h.store.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		acc, err := tx.GetForUpdate(ctx, key)
		if err != nil {
			return err
		}
		sum, carry := bits.Add64(acc.Lamports, lamports, 0)
		if carry != 0 {
			return ErrLamportsOverflow
		}
		acc.Lamports = sum

		if err = tx.Put(ctx, acc); err != nil {
			return err
		}
		if err = tx.Commit(); err != nil {
			return err
		}
		result = acc
		return nil
	})
	return result, err
}

func (h *Host) withRetry(ctx context.Context, fn string, f func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(h.maxRetries, retry.NewExponential(h.retryBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if attempt > 0 {
			h.metrics.IncInvocationRetries()
		}
		attempt++

		err := f(ctx)
		if err != nil && h.store.Classify(err) == store.Retryable {
			h.logger.Warn().Err(err).Str("func", fn).Int("attempt", attempt).Msg("retrying after transient storage error")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (h *Host) invokeOnce(ctx context.Context, inv Invocation, program Program) error {
	tx, err := h.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	loaded := make(map[models.AccountID]*AccountInfo, len(inv.Accounts))
	before := make(map[models.AccountID]models.Account, len(inv.Accounts))
	infos := make([]*AccountInfo, 0, len(inv.Accounts))
	order := make([]models.AccountID, 0, len(inv.Accounts))

	for _, meta := range inv.Accounts {
		if info, ok := loaded[meta.PubKey]; ok {
			info.IsSigner = info.IsSigner || meta.IsSigner
			info.IsWritable = info.IsWritable || meta.IsWritable
			infos = append(infos, info)
			continue
		}

		acc, err := tx.GetForUpdate(ctx, meta.PubKey)
		if err != nil {
			h.logger.Err(err).Str("func", "Host.invokeOnce").Str("pubkey", meta.PubKey.String()).Msg("error loading account")
			return err
		}
		before[meta.PubKey] = acc.Clone()

		info := newAccountInfo(acc, meta, inv.ProgramID)
		loaded[meta.PubKey] = info
		infos = append(infos, info)
		order = append(order, meta.PubKey)
	}

	env := &Env{programID: inv.ProgramID, rent: h.rent, logger: h.logger}
	if err = program.Process(ctx, env, infos, inv.Data); err != nil {
		return err
	}

	if err = verify(inv.ProgramID, order, before, loaded); err != nil {
		h.logger.Error().Err(err).Str("func", "Host.invokeOnce").Msg("program broke ledger invariants")
		return err
	}

	for _, key := range order {
		info := loaded[key]
		after := info.account()
		if !info.IsWritable || sameAccount(before[key], after) {
			continue
		}
		if err = tx.Put(ctx, after); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// verify checks the state after a successful program run against the state
// before it.
func verify(
	programID models.AccountID,
	order []models.AccountID,
	before map[models.AccountID]models.Account,
	after map[models.AccountID]*AccountInfo,
) error {
	var sumBefore, sumAfter uint128

	for _, key := range order {
		pre, post := before[key], after[key].account()
		info := after[key]

		sumBefore = sumBefore.add(pre.Lamports)
		sumAfter = sumAfter.add(post.Lamports)

		if sameAccount(pre, post) {
			continue
		}
		if !info.IsWritable {
			return fmt.Errorf("%w: read-only account %s modified", ErrInvariantViolation, key)
		}

		dataChanged := !bytes.Equal(pre.Data, post.Data) || pre.Owner != post.Owner
		if dataChanged {
			createdHere := pre.Owner.IsZero() && len(pre.Data) == 0
			if post.Owner != programID || (pre.Owner != programID && !createdHere) {
				return fmt.Errorf("%w: data of foreign account %s modified", ErrInvariantViolation, key)
			}
		}

		if post.Lamports < pre.Lamports && pre.Owner != programID && !info.IsSigner {
			return fmt.Errorf("%w: unsigned debit of %s", ErrInvariantViolation, key)
		}
	}

	if sumBefore != sumAfter {
		return fmt.Errorf("%w: lamports not conserved", ErrInvariantViolation)
	}
	return nil
}

func sameAccount(a, b models.Account) bool {
	return a.Lamports == b.Lamports && a.Owner == b.Owner && bytes.Equal(a.Data, b.Data)
}

type uint128 struct {
	hi, lo uint64
}

func (u uint128) add(v uint64) uint128 {
	lo, carry := bits.Add64(u.lo, v, 0)
	return uint128{hi: u.hi + carry, lo: lo}
}
