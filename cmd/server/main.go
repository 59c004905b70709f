package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/coprocessor"
	"github.com/MKhiriev/confidential-vault/internal/handler"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/metrics"
	"github.com/MKhiriev/confidential-vault/internal/server"
	"github.com/MKhiriev/confidential-vault/internal/service"
	"github.com/MKhiriev/confidential-vault/internal/store"
	"github.com/MKhiriev/confidential-vault/internal/workers"
	"github.com/MKhiriev/confidential-vault/models"
)

const role = "confidential-vault-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role, "info").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewLogger(role, cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	accounts, err := store.NewAccountStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating account store")
	}
	defer func() {
		if err := accounts.Close(); err != nil {
			log.Error().Err(err).Msg("error closing account store")
		}
	}()

	m := metrics.New()

	arithmetic, err := newArithmetic(cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating arithmetic backend")
	}

	services, err := service.NewServices(accounts, arithmetic, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var probe func(error)
	if handlers.GRPC != nil {
		probe = handlers.GRPC.ReportProbe
	}
	bg := workers.NewWorkers(services, m, cfg.Workers, probe, log)
	workersDone := make(chan struct{})
	go func() {
		bg.Run(ctx)
		close(workersDone)
	}()

	srv.RunServer()
	stop()
	<-workersDone
}

func newArithmetic(cfg *config.StructuredConfig, m *metrics.Metrics, log *logger.Logger) (coprocessor.Arithmetic, error) {
	scheme, err := cfg.App.Scheme()
	if err != nil {
		return nil, err
	}
	if scheme == models.SchemePlaintext {
		log.Info().Msg("using plaintext balances")
		return coprocessor.NewPlaintext(), nil
	}

	transport, err := coprocessor.NewHTTPTransport(cfg.Adapter, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("address", cfg.Adapter.HTTPAddress).Msg("using confidential balances")
	return coprocessor.NewAdapter(transport, m), nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
