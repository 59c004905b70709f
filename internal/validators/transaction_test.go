package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/confidential-vault/models"
)

func validTransaction() models.Transaction {
	signer := models.MustParseAccountID("Af2Y56WUFQuTTTYHMCjMozYsDxvTvSM6YQnyv8E6EK3v")
	return models.Transaction{
		Message: models.Message{
			ProgramID: testProgram,
			Accounts: []models.AccountMeta{
				{PubKey: signer, IsSigner: true, IsWritable: true},
				{PubKey: testReceiver, IsWritable: true},
			},
			Data: []byte{2, 1, 0, 0, 0, 0, 0, 0, 0},
		},
		Signatures: []models.Signature{{PubKey: signer, Signature: make([]byte, 64)}},
	}
}

func TestTransactionValidator(t *testing.T) {
	v := NewTransactionValidator()

	tests := []struct {
		name    string
		mutate  func(*models.Transaction)
		wantErr error
	}{
		{"valid", func(*models.Transaction) {}, nil},
		{"no program", func(tx *models.Transaction) { tx.Message.ProgramID = models.AccountID{} }, ErrEmptyProgramID},
		{"no accounts", func(tx *models.Transaction) { tx.Message.Accounts = nil }, ErrNoAccounts},
		{"too many accounts", func(tx *models.Transaction) {
			tx.Message.Accounts = make([]models.AccountMeta, MaxAccounts+1)
		}, ErrTooManyAccounts},
		{"no data", func(tx *models.Transaction) { tx.Message.Data = nil }, ErrEmptyData},
		{"unsigned", func(tx *models.Transaction) { tx.Signatures = nil }, ErrNoSignatures},
		{"signature from non-signer", func(tx *models.Transaction) {
			tx.Signatures = append(tx.Signatures, models.Signature{PubKey: testReceiver})
		}, ErrUnexpectedSignature},
		{"signer without signature", func(tx *models.Transaction) {
			tx.Message.Accounts[1].IsSigner = true
		}, ErrMissingSigner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := v.Validate(context.Background(), &tx)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransactionValidator_ScopedFields(t *testing.T) {
	v := NewTransactionValidator()
	tx := validTransaction()
	tx.Signatures = nil

	assert.NoError(t, v.Validate(context.Background(), tx, FieldProgramID, FieldData))
	assert.ErrorIs(t, v.Validate(context.Background(), tx, "nonce"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
