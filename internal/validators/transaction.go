package validators

import (
	"context"

	"github.com/MKhiriev/confidential-vault/models"
)

// Field names accepted by [TransactionValidator].
const (
	FieldProgramID  = "program_id"
	FieldAccounts   = "accounts"
	FieldData       = "data"
	FieldSignatures = "signatures"
)

// MaxAccounts bounds the account list of one transaction.
const MaxAccounts = 64

// TransactionValidator checks the shape of a transaction envelope. It does
// not verify signatures cryptographically.
type TransactionValidator struct{}

func NewTransactionValidator() Validator {
	return &TransactionValidator{}
}

func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Transaction:
		return v.validateTransaction(ctx, value, fields...)
	case *models.Transaction:
		return v.validateTransaction(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateTransaction checks every field by default. Signatures must come
// exactly from the accounts marked as signers.
func (v *TransactionValidator) validateTransaction(_ context.Context, tx models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProgramID, FieldAccounts, FieldData, FieldSignatures}
	}

	for _, f := range fields {
		switch f {
		case FieldProgramID:
			if tx.Message.ProgramID.IsZero() {
				return ErrEmptyProgramID
			}
		case FieldAccounts:
			if len(tx.Message.Accounts) == 0 {
				return ErrNoAccounts
			}
			if len(tx.Message.Accounts) > MaxAccounts {
				return ErrTooManyAccounts
			}
		case FieldData:
			if len(tx.Message.Data) == 0 {
				return ErrEmptyData
			}
		case FieldSignatures:
			if err := validateSigners(tx); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateSigners(tx models.Transaction) error {
	if len(tx.Signatures) == 0 {
		return ErrNoSignatures
	}

	signers := make(map[models.AccountID]bool)
	for _, meta := range tx.Message.Accounts {
		if meta.IsSigner {
			signers[meta.PubKey] = false
		}
	}
	for _, sig := range tx.Signatures {
		if _, ok := signers[sig.PubKey]; !ok {
			return ErrUnexpectedSignature
		}
		signers[sig.PubKey] = true
	}
	for _, signed := range signers {
		if !signed {
			return ErrMissingSigner
		}
	}
	return nil
}
