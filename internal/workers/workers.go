package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/metrics"
	"github.com/MKhiriev/confidential-vault/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the configured background workers. probe receives the
// outcome of every vault sample and may be nil.
func NewWorkers(services *service.Services, m *metrics.Metrics, cfg config.Workers, probe func(error), logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}
	if cfg.MonitorInterval > 0 {
		w.workers = append(w.workers, NewVaultMonitor(services.AccountService, m, cfg.MonitorInterval, probe, logger))
	}
	return w
}

// Run starts every worker and blocks until all of them return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		worker := worker
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
	if w.logger != nil {
		w.logger.Info().Msg("workers stopped")
	}
}
