package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/confidential-vault/internal/validators"
	"github.com/MKhiriev/confidential-vault/models"
)

type TransactionValidationService struct {
	inner     TransactionService
	validator validators.Validator
}

func NewTransactionValidationService() TransactionServiceWrapper {
	return &TransactionValidationService{
		validator: validators.NewTransactionValidator(),
	}
}

func (v *TransactionValidationService) Submit(ctx context.Context, tx models.Transaction) (models.Receipt, error) {
	if err := v.validator.Validate(ctx, tx); err != nil {
		return models.Receipt{}, fmt.Errorf("error during transaction validation: %w", err)
	}

	return v.inner.Submit(ctx, tx)
}

func (v *TransactionValidationService) Wrap(wrapped TransactionService) TransactionService {
	v.inner = wrapped
	return v
}
