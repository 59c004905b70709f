// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/metrics"
	"github.com/MKhiriev/confidential-vault/internal/service"
	"github.com/MKhiriev/confidential-vault/models"
)

// countingWorker records Run calls and blocks until ctx is cancelled.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

type stubAccounts struct {
	service.AccountService

	mu       sync.Mutex
	lamports uint64
	err      error
	calls    int
}

func (s *stubAccounts) GetVault(context.Context) (models.VaultSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return models.VaultSummary{Lamports: s.lamports}, s.err
}

func (s *stubAccounts) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestWorkers_Run_StartsAllAndStopsOnCancel(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{AccountService: &stubAccounts{}}

	tests := []struct {
		name     string
		interval time.Duration
		want     int
	}{
		{name: "monitor enabled", interval: time.Second, want: 1},
		{name: "monitor disabled", interval: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewWorkers(services, nil, config.Workers{MonitorInterval: tt.interval}, nil, logger.Nop())
			assert.Len(t, ws.workers, tt.want)
		})
	}
}

func TestVaultMonitor_PublishesLamports(t *testing.T) {
	accounts := &stubAccounts{lamports: 1_000_002_560}
	m := metrics.New()

	var probes []error
	var mu sync.Mutex
	probe := func(err error) {
		mu.Lock()
		probes = append(probes, err)
		mu.Unlock()
	}

	monitor := NewVaultMonitor(accounts, m, 10*time.Millisecond, probe, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return accounts.callCount() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	expected := `
# HELP confidential_vault_vault_holding_lamports Lamports held by the vault holding account at the last sample.
# TYPE confidential_vault_vault_holding_lamports gauge
confidential_vault_vault_holding_lamports 1.00000256e+09
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "confidential_vault_vault_holding_lamports"))

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, probes)
	for _, err := range probes {
		assert.NoError(t, err)
	}
}

func TestVaultMonitor_ReportsFailures(t *testing.T) {
	storeErr := errors.New("store unreachable")
	accounts := &stubAccounts{lamports: 42, err: storeErr}
	m := metrics.New()

	probed := make(chan error, 1)
	monitor := NewVaultMonitor(accounts, m, time.Hour, func(err error) {
		select {
		case probed <- err:
		default:
		}
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go monitor.Run(ctx)

	select {
	case err := <-probed:
		assert.ErrorIs(t, err, storeErr)
	case <-time.After(time.Second):
		t.Fatal("probe was not called")
	}

	expected := `
# HELP confidential_vault_vault_holding_lamports Lamports held by the vault holding account at the last sample.
# TYPE confidential_vault_vault_holding_lamports gauge
confidential_vault_vault_holding_lamports 0
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "confidential_vault_vault_holding_lamports"))
}
