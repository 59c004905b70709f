package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/confidential-vault/models"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNotEnoughAccounts   = fmt.Errorf("%w: not enough accounts", models.ErrInvalidArgument)
	ErrWrongProgram        = fmt.Errorf("%w: transaction targets another program", models.ErrInvalidArgument)
	ErrZeroDeposit         = fmt.Errorf("%w: deposit amount must be positive", models.ErrInvalidArgument)
	ErrCiphertextMismatch  = fmt.Errorf("%w: ciphertext does not encrypt the stated amount", models.ErrInvalidArgument)
	ErrInvalidKeyScheme    = fmt.Errorf("%w: unknown intent key scheme", models.ErrInvalidArgument)
	ErrTransactionExpired  = fmt.Errorf("%w: transaction expired", models.ErrInvalidArgument)
	ErrExpiryTooFar        = fmt.Errorf("%w: transaction expiry exceeds the maximum age", models.ErrInvalidArgument)
	ErrMissingExpiry       = fmt.Errorf("%w: transaction has no expiry", models.ErrInvalidArgument)
	ErrZeroAirdrop         = fmt.Errorf("%w: airdrop amount must be positive", models.ErrInvalidArgument)
	ErrSignerRequired      = fmt.Errorf("%w: account must sign", models.ErrAuthorization)
	ErrAddressMismatch     = fmt.Errorf("%w: account is not the expected derived address", models.ErrAuthorization)
	ErrOwnerMismatch       = fmt.Errorf("%w: record belongs to another owner", models.ErrAuthorization)
	ErrAuthorityMismatch   = fmt.Errorf("%w: configuration is controlled by another authority", models.ErrAuthorization)
	ErrReceiverMismatch    = fmt.Errorf("%w: receiver is not the configured delegate", models.ErrAuthorization)
	ErrInsufficientBalance = fmt.Errorf("%w: encrypted balance below amount", models.ErrInsufficientFunds)
	ErrNotInitialized      = fmt.Errorf("%w: delegate configuration is not initialized", models.ErrStructuralDecode)
	ErrUninitializedRecord = fmt.Errorf("%w: participant record does not exist", models.ErrStructuralDecode)

	ErrDuplicateTransaction       = errors.New("transaction already submitted")
	ErrTooManyPendingTransactions = errors.New("too many unexpired transactions")
	ErrInvalidReplayWindow        = errors.New("seen-signature cache size and maximum transaction age must be positive")
	ErrRecordNotFound             = errors.New("record not found")
	ErrAirdropDisabled            = errors.New("airdrop is disabled")
)
