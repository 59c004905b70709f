package service

import (
	"context"
	"errors"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/confidential-vault/internal/codec"
	"github.com/MKhiriev/confidential-vault/internal/derive"
	"github.com/MKhiriev/confidential-vault/internal/ledger"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/store"
	"github.com/MKhiriev/confidential-vault/models"
)

const solDecimals = -9

type accountService struct {
	accounts       store.AccountStore
	host           *ledger.Host
	deriver        *derive.Deriver
	scheme         models.BalanceScheme
	airdropEnabled bool

	logger *logger.Logger
}

func NewAccountService(
	accounts store.AccountStore,
	host *ledger.Host,
	deriver *derive.Deriver,
	scheme models.BalanceScheme,
	airdropEnabled bool,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		accounts:       accounts,
		host:           host,
		deriver:        deriver,
		scheme:         scheme,
		airdropEnabled: airdropEnabled,
		logger:         logger,
	}
}

func (s *accountService) GetAccount(ctx context.Context, key models.AccountID) (models.Account, error) {
	return s.accounts.GetAccount(ctx, key)
}

func (s *accountService) GetVault(ctx context.Context) (models.VaultSummary, error) {
	addr, err := s.deriver.Vault()
	if err != nil {
		return models.VaultSummary{}, err
	}
	acc, err := s.accounts.GetAccount(ctx, addr.Key)
	if err != nil {
		return models.VaultSummary{}, err
	}

	return models.VaultSummary{
		Address:  addr.Key,
		Lamports: acc.Lamports,
		SOL:      FormatSOL(acc.Lamports),
	}, nil
}

func (s *accountService) GetConfig(ctx context.Context) (models.DelegateConfig, error) {
	addr, err := s.deriver.Config()
	if err != nil {
		return models.DelegateConfig{}, err
	}
	data, err := s.programData(ctx, addr.Key)
	if err != nil {
		return models.DelegateConfig{}, err
	}
	return codec.DecodeDelegateConfig(data)
}

func (s *accountService) GetParticipant(ctx context.Context, owner models.AccountID) (models.ParticipantRecord, error) {
	addr, err := s.deriver.Participant(owner)
	if err != nil {
		return models.ParticipantRecord{}, err
	}
	data, err := s.programData(ctx, addr.Key)
	if err != nil {
		return models.ParticipantRecord{}, err
	}
	return codec.DecodeParticipant(data, s.scheme)
}

// GetIntentKey returns the registered key, or the default key when the owner
// never registered one.
func (s *accountService) GetIntentKey(ctx context.Context, owner models.AccountID) (models.IntentKey, error) {
	addr, err := s.deriver.IntentKey(owner)
	if err != nil {
		return models.IntentKey{}, err
	}
	data, err := s.programData(ctx, addr.Key)
	if errors.Is(err, ErrRecordNotFound) {
		return models.DefaultIntentKey(owner), nil
	}
	if err != nil {
		return models.IntentKey{}, err
	}
	return codec.DecodeIntentKey(data)
}

func (s *accountService) Airdrop(ctx context.Context, key models.AccountID, lamports uint64) (models.Account, error) {
	if !s.airdropEnabled {
		return models.Account{}, ErrAirdropDisabled
	}
	if lamports == 0 {
		return models.Account{}, ErrZeroAirdrop
	}

	acc, err := s.host.Airdrop(ctx, key, lamports)
	if err != nil {
		s.logger.Err(err).Str("func", "accountService.Airdrop").Msg("airdrop failed")
		return models.Account{}, err
	}
	return acc, nil
}

// programData returns the data of an account the vault program owns.
func (s *accountService) programData(ctx context.Context, key models.AccountID) ([]byte, error) {
	acc, err := s.accounts.GetAccount(ctx, key)
	if err != nil {
		return nil, err
	}
	if acc.Owner != s.deriver.ProgramID() {
		return nil, ErrRecordNotFound
	}
	return acc.Data, nil
}

// FormatSOL renders lamports in SOL without trailing zeros.
func FormatSOL(lamports uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), solDecimals).String()
}
