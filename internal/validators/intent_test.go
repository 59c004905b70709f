// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/confidential-vault/internal/crypto"
	"github.com/MKhiriev/confidential-vault/internal/mock"
	"github.com/MKhiriev/confidential-vault/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	testProgram  = models.MustParseAccountID("BVoHrpXCMPYDn3URmNKgBtKsfVZxYGYhG4eRWHDZiXRj")
	testReceiver = models.MustParseAccountID("9jQtwHhZT1H2TYSMt74msmBmy8UPen4GUysNynPUVkkv")
)

// signedEd25519Intent builds an intent signed by a fresh Ed25519 key that is
// also the user's address, so the default intent key applies.
func signedEd25519Intent(t *testing.T) models.Intent {
	t.Helper()
	seed := sha256.Sum256([]byte("intent-test-user"))
	priv := ed25519.NewKeyFromSeed(seed[:])

	user, err := models.NewAccountID(priv.Public().(ed25519.PublicKey))
	require.NoError(t, err)

	intent := models.Intent{
		ProgramID:  testProgram,
		User:       user,
		Receiver:   testReceiver,
		Amount:     400,
		InputType:  0,
		Ciphertext: []byte("ciphertext-of-400"),
		Key:        models.DefaultIntentKey(user),
	}
	intent.Hash = IntentDigest(intent.ProgramID, intent.User, intent.Receiver, intent.Amount, intent.InputType, intent.Ciphertext)
	intent.Signature = ed25519.Sign(priv, intent.Hash[:])
	return intent
}

// ---------------------------------------------------------------------------
// IntentDigest
// ---------------------------------------------------------------------------

func TestIntentDigest_BindsEveryField(t *testing.T) {
	user := models.MustParseAccountID("Af2Y56WUFQuTTTYHMCjMozYsDxvTvSM6YQnyv8E6EK3v")
	base := IntentDigest(testProgram, user, testReceiver, 10, 0, []byte("ct"))

	assert.Equal(t, base, IntentDigest(testProgram, user, testReceiver, 10, 0, []byte("ct")))
	assert.NotEqual(t, base, IntentDigest(user, user, testReceiver, 10, 0, []byte("ct")))
	assert.NotEqual(t, base, IntentDigest(testProgram, testReceiver, testReceiver, 10, 0, []byte("ct")))
	assert.NotEqual(t, base, IntentDigest(testProgram, user, user, 10, 0, []byte("ct")))
	assert.NotEqual(t, base, IntentDigest(testProgram, user, testReceiver, 11, 0, []byte("ct")))
	assert.NotEqual(t, base, IntentDigest(testProgram, user, testReceiver, 10, 1, []byte("ct")))
	assert.NotEqual(t, base, IntentDigest(testProgram, user, testReceiver, 10, 0, []byte("cu")))
}

// ---------------------------------------------------------------------------
// IntentValidator with the real verifier
// ---------------------------------------------------------------------------

func TestIntentValidator_ValidEd25519(t *testing.T) {
	v := NewIntentValidator(crypto.NewVerifier())
	intent := signedEd25519Intent(t)

	require.NoError(t, v.Validate(context.Background(), intent))
	require.NoError(t, v.Validate(context.Background(), &intent))
}

func TestIntentValidator_ValidSchnorr(t *testing.T) {
	v := NewIntentValidator(crypto.NewVerifier())
	intent := signedEd25519Intent(t)

	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	var pub [32]byte
	copy(pub[:], schnorr.SerializePubKey(priv.PubKey()))

	intent.Key = models.IntentKey{Owner: intent.User, Scheme: models.KeySchemeSchnorrSecp256k1, PublicKey: pub}
	sig, err := schnorr.Sign(priv, intent.Hash[:])
	require.NoError(t, err)
	intent.Signature = sig.Serialize()

	require.NoError(t, v.Validate(context.Background(), intent))
}

func TestIntentValidator_Failures(t *testing.T) {
	v := NewIntentValidator(crypto.NewVerifier())

	tests := []struct {
		name    string
		mutate  func(*models.Intent)
		wantErr error
	}{
		{
			name:    "empty signature",
			mutate:  func(i *models.Intent) { i.Signature = nil },
			wantErr: ErrEmptySignature,
		},
		{
			name:    "amount differs from signed hash",
			mutate:  func(i *models.Intent) { i.Amount++ },
			wantErr: ErrIntentHashMismatch,
		},
		{
			name:    "ciphertext differs from signed hash",
			mutate:  func(i *models.Intent) { i.Ciphertext = []byte("other") },
			wantErr: ErrIntentHashMismatch,
		},
		{
			name:    "tampered signature",
			mutate:  func(i *models.Intent) { i.Signature[0] ^= 0xff },
			wantErr: crypto.ErrInvalidSignature,
		},
		{
			name:    "key registered for somebody else",
			mutate:  func(i *models.Intent) { i.Key.Owner = testReceiver },
			wantErr: ErrIntentKeyOwner,
		},
		{
			name:    "already consumed",
			mutate:  func(i *models.Intent) { i.Consumed = true },
			wantErr: ErrIntentReplayed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := signedEd25519Intent(t)
			tt.mutate(&intent)

			err := v.Validate(context.Background(), intent)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrAuthorization)
		})
	}
}

func TestIntentValidator_UnsupportedTypeAndField(t *testing.T) {
	v := NewIntentValidator(crypto.NewVerifier())

	assert.ErrorIs(t, v.Validate(context.Background(), "intent"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), signedEd25519Intent(t), "bogus"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// IntentValidator with a mocked verifier
// ---------------------------------------------------------------------------

func TestIntentValidator_VerifiesHashUnderIntentKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mock.NewMockVerifier(ctrl)
	v := NewIntentValidator(verifier)
	intent := signedEd25519Intent(t)

	verifier.EXPECT().
		Verify(models.KeySchemeEd25519, intent.Key.PublicKey, intent.Hash[:], intent.Signature).
		Return(nil)

	require.NoError(t, v.Validate(context.Background(), intent, FieldAuthenticity))
}

func TestIntentValidator_ScopedFieldsSkipOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: the verifier must not be called
	v := NewIntentValidator(mock.NewMockVerifier(ctrl))
	intent := signedEd25519Intent(t)
	intent.Consumed = true

	require.NoError(t, v.Validate(context.Background(), intent, FieldSignature, FieldIntentHash))
	assert.ErrorIs(t, v.Validate(context.Background(), intent, FieldReplay), ErrIntentReplayed)
}

func TestIntentValidator_VerifierErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mock.NewMockVerifier(ctrl)
	v := NewIntentValidator(verifier)

	boom := errors.New("verifier offline")
	verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

	err := v.Validate(context.Background(), signedEd25519Intent(t))
	assert.ErrorIs(t, err, boom)
}
