package service

import (
	"fmt"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/coprocessor"
	"github.com/MKhiriev/confidential-vault/internal/crypto"
	"github.com/MKhiriev/confidential-vault/internal/derive"
	"github.com/MKhiriev/confidential-vault/internal/ledger"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/metrics"
	"github.com/MKhiriev/confidential-vault/internal/store"
	"github.com/MKhiriev/confidential-vault/internal/validators"
)

type Services struct {
	TransactionService TransactionService
	AccountService     AccountService
	AppInfoService     AppInfoService
}

// NewServices assembles the vault program, its ledger host and the services
// in front of them. arithmetic must match the configured balance scheme.
func NewServices(
	accounts store.AccountStore,
	arithmetic coprocessor.Arithmetic,
	cfg config.StructuredConfig,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	programID, err := cfg.App.ParsedProgramID()
	if err != nil {
		return nil, err
	}
	scheme, err := cfg.App.Scheme()
	if err != nil {
		return nil, err
	}
	deriver, err := derive.NewDeriver(programID, cfg.Ledger.DerivationCacheSize)
	if err != nil {
		return nil, fmt.Errorf("error creating address deriver: %w", err)
	}

	verifier := crypto.NewVerifier()
	program := NewVaultProgram(deriver, arithmetic, validators.NewIntentValidator(verifier), scheme, m, logger)
	host := ledger.NewHost(accounts, cfg.Ledger, m, logger)

	transactions, err := NewTransactionService(host, program, verifier, cfg.Ledger, logger)
	if err != nil {
		return nil, err
	}
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TransactionService: NewTransactionValidationService().Wrap(transactions),
		AccountService:     NewAccountService(accounts, host, deriver, scheme, cfg.Ledger.AirdropEnabled, logger),
		AppInfoService:     appInfo,
	}, nil
}
