package service

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/crypto"
	"github.com/MKhiriev/confidential-vault/internal/ledger"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/validators"
	"github.com/MKhiriev/confidential-vault/models"
)

type transactionService struct {
	host     *ledger.Host
	program  *VaultProgram
	verifier crypto.Verifier
	maxAge   time.Duration
	now      func() time.Time

	// seen holds the first signature of every accepted envelope until the
	// envelope itself can no longer be submitted.
	seenMu   sync.Mutex
	seen     *expirable.LRU[string, struct{}]
	seenSize int

	logger *logger.Logger
}

func NewTransactionService(
	host *ledger.Host,
	program *VaultProgram,
	verifier crypto.Verifier,
	cfg config.Ledger,
	logger *logger.Logger,
) (TransactionService, error) {
	if cfg.SeenSignatureCacheSize <= 0 || cfg.MaxTransactionAge <= 0 {
		return nil, ErrInvalidReplayWindow
	}

	return &transactionService{
		host:     host,
		program:  program,
		verifier: verifier,
		maxAge:   cfg.MaxTransactionAge,
		seen:     expirable.NewLRU[string, struct{}](0, nil, cfg.MaxTransactionAge),
		seenSize: cfg.SeenSignatureCacheSize,
		now:      time.Now,
		logger:   logger,
	}, nil
}

// Submit authenticates the envelope and runs its instruction. Only accounts
// whose Ed25519 signature over the message digest verifies are treated as
// signers.
func (s *transactionService) Submit(ctx context.Context, tx models.Transaction) (models.Receipt, error) {
	log := logger.FromContext(ctx)

	if tx.Message.ProgramID != s.program.ProgramID() {
		return models.Receipt{}, ErrWrongProgram
	}
	if len(tx.Signatures) == 0 {
		return models.Receipt{}, validators.ErrNoSignatures
	}
	if len(tx.Message.Data) == 0 {
		return models.Receipt{}, validators.ErrEmptyData
	}

	now := s.now()
	if err := s.checkExpiry(tx.Message.ExpiresAt, now); err != nil {
		return models.Receipt{}, err
	}

	digest := tx.Message.Digest()
	signed := make(map[models.AccountID]bool, len(tx.Signatures))
	for _, sig := range tx.Signatures {
		if err := s.verifier.Verify(models.KeySchemeEd25519, sig.PubKey, digest[:], sig.Signature); err != nil {
			log.Debug().Err(err).Str("func", "transactionService.Submit").
				Str("signer", sig.PubKey.String()).Msg("envelope signature rejected")
			return models.Receipt{}, err
		}
		signed[sig.PubKey] = true
	}

	metas := make([]models.AccountMeta, len(tx.Message.Accounts))
	for i, meta := range tx.Message.Accounts {
		meta.IsSigner = meta.IsSigner && signed[meta.PubKey]
		metas[i] = meta
	}

	id := string(tx.Signatures[0].Signature)
	if err := s.remember(id); err != nil {
		return models.Receipt{}, err
	}

	tag := models.InstructionTag(tx.Message.Data[0])
	err := s.host.Invoke(ctx, ledger.Invocation{
		ProgramID: tx.Message.ProgramID,
		Accounts:  metas,
		Data:      tx.Message.Data,
	}, s.program)
	if err != nil {
		// a failed transaction changed nothing and may be resubmitted
		s.seenMu.Lock()
		s.seen.Remove(id)
		s.seenMu.Unlock()
		return models.Receipt{}, err
	}

	log.Info().Str("func", "transactionService.Submit").Str("operation", tag.String()).Msg("transaction committed")

	return models.Receipt{
		Signature:   tx.Signatures[0].Signature,
		Instruction: tag,
		Operation:   tag.String(),
		CommittedAt: s.now(),
	}, nil
}

// remember records id for the lifetime of its envelope. Entries are never
// evicted early, so a full cache refuses new envelopes instead.
func (s *transactionService) remember(id string) error {
	s.seenMu.Lock()
	defer s.seenMu.Unlock()

	if s.seen.Contains(id) {
		return ErrDuplicateTransaction
	}
	if s.seen.Len() >= s.seenSize {
		return ErrTooManyPendingTransactions
	}
	s.seen.Add(id, struct{}{})
	return nil
}

// checkExpiry requires every envelope to expire within maxAge, which is also
// how long its signature stays in the seen cache.
func (s *transactionService) checkExpiry(expiresAt, now time.Time) error {
	if expiresAt.IsZero() {
		return ErrMissingExpiry
	}
	if !now.Before(expiresAt) {
		return ErrTransactionExpired
	}
	if expiresAt.Sub(now) > s.maxAge {
		return ErrExpiryTooFar
	}
	return nil
}
