package coprocessor

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/confidential-vault/models"
)

func TestPlaintext(t *testing.T) {
	ctx := context.Background()
	unit := NewPlaintext()
	var signer models.AccountID

	a, err := unit.FromPlaintext(ctx, signer, models.U128(10))
	require.NoError(t, err)
	b, err := unit.FromPlaintext(ctx, signer, models.U128(4))
	require.NoError(t, err)

	diff, err := unit.Sub(ctx, signer, a, b)
	require.NoError(t, err)
	assert.Equal(t, PlaintextHandle(6), diff)

	sum, err := unit.Add(ctx, signer, a, b)
	require.NoError(t, err)
	assert.Equal(t, PlaintextHandle(14), sum)

	ge, err := unit.GreaterOrEqual(ctx, signer, b, a)
	require.NoError(t, err)
	assert.False(t, ge)

	eq, err := unit.Equal(ctx, signer, a, PlaintextHandle(10))
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestPlaintext_Overflow(t *testing.T) {
	ctx := context.Background()
	unit := NewPlaintext()
	var signer models.AccountID

	_, err := unit.Add(ctx, signer, PlaintextHandle(math.MaxUint64), PlaintextHandle(1))
	assert.ErrorIs(t, err, models.ErrArithmeticOverflow)

	_, err = unit.Sub(ctx, signer, PlaintextHandle(1), PlaintextHandle(2))
	assert.ErrorIs(t, err, models.ErrArithmeticOverflow)

	_, err = unit.FromPlaintext(ctx, signer, models.Uint128{Hi: 1})
	assert.ErrorIs(t, err, models.ErrArithmeticOverflow)

	wide := PlaintextHandle(1)
	wide[9] = 1
	_, err = PlaintextValue(wide)
	assert.ErrorIs(t, err, models.ErrArithmeticOverflow)
}

func TestPlaintext_NoCiphertexts(t *testing.T) {
	_, err := NewPlaintext().FromCiphertext(context.Background(), models.AccountID{}, []byte{1}, 0)
	assert.ErrorIs(t, err, ErrCiphertextUnsupported)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}
