// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/metrics"
	"github.com/MKhiriev/confidential-vault/internal/service"
)

// VaultMonitor periodically samples the vault holding account and publishes
// its lamports as a gauge.
type VaultMonitor struct {
	accounts service.AccountService
	metrics  *metrics.Metrics
	interval time.Duration
	probe    func(error)

	logger *logger.Logger
}

func NewVaultMonitor(accounts service.AccountService, m *metrics.Metrics, interval time.Duration, probe func(error), logger *logger.Logger) *VaultMonitor {
	return &VaultMonitor{
		accounts: accounts,
		metrics:  m,
		interval: interval,
		probe:    probe,
		logger:   logger,
	}
}

// Run samples once immediately and then on every tick.
func (v *VaultMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	v.sample(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.sample(ctx)
		}
	}
}

func (v *VaultMonitor) sample(ctx context.Context) {
	vault, err := v.accounts.GetVault(ctx)
	if v.probe != nil {
		v.probe(err)
	}
	if err != nil {
		if ctx.Err() == nil {
			v.logger.Warn().Err(err).Str("func", "*VaultMonitor.sample").Msg("vault sample failed")
		}
		return
	}
	v.metrics.SetVaultLamports(vault.Lamports)
	v.logger.Debug().Uint64("lamports", vault.Lamports).Msg("vault sampled")
}
