package models

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliceBase58 = "Af2Y56WUFQuTTTYHMCjMozYsDxvTvSM6YQnyv8E6EK3v"

func TestAccountID_Base58(t *testing.T) {
	id, err := ParseAccountID(aliceBase58)
	require.NoError(t, err)
	assert.Equal(t, aliceBase58, id.String())
	assert.False(t, id.IsZero())

	_, err = ParseAccountID("")
	assert.ErrorIs(t, err, ErrStructuralDecode)
	_, err = ParseAccountID("abc")
	assert.ErrorIs(t, err, ErrStructuralDecode)
	assert.Panics(t, func() { MustParseAccountID("0OIl") })
}

func TestAccountID_JSON(t *testing.T) {
	meta := AccountMeta{PubKey: MustParseAccountID(aliceBase58), IsSigner: true}
	raw, err := json.Marshal(meta)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pubkey":"`+aliceBase58+`","is_signer":true,"is_writable":false}`, string(raw))

	var got AccountMeta
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, meta, got)

	err = json.Unmarshal([]byte(`{"pubkey":42}`), &got)
	assert.ErrorIs(t, err, ErrStructuralDecode)
}

func TestAccount_ExistsAndClone(t *testing.T) {
	assert.False(t, Account{}.Exists())
	assert.True(t, Account{Lamports: 1}.Exists())

	acc := Account{Data: []byte{1, 2}}
	clone := acc.Clone()
	clone.Data[0] = 9
	assert.Equal(t, byte(1), acc.Data[0])
}

func TestMessageDigest_CoversEveryField(t *testing.T) {
	base := Message{
		ProgramID: MustParseAccountID(aliceBase58),
		Accounts:  []AccountMeta{{PubKey: MustParseAccountID(aliceBase58), IsWritable: true}},
		Data:      []byte{2, 1},
		ExpiresAt: time.Unix(1_700_000_000, 0),
	}
	digest := base.Digest()
	assert.Equal(t, digest, base.Digest())

	variants := []func(m *Message){
		func(m *Message) { m.ProgramID[0]++ },
		func(m *Message) {
			m.Accounts = []AccountMeta{{PubKey: m.Accounts[0].PubKey, IsSigner: true, IsWritable: true}}
		},
		func(m *Message) { m.Data = []byte{2, 2} },
		func(m *Message) { m.ExpiresAt = m.ExpiresAt.Add(time.Nanosecond) },
		func(m *Message) { m.ExpiresAt = time.Time{} },
	}
	for i, mutate := range variants {
		m := base
		mutate(&m)
		assert.NotEqual(t, digest, m.Digest(), "variant %d", i)
	}
}

func TestHandle(t *testing.T) {
	h, err := HandleFromBytes(append(U128(5).Bytes(), 0xff))
	require.NoError(t, err)
	assert.True(t, h.Flag())
	assert.False(t, Handle{}.Flag())

	raw, err := json.Marshal(h)
	require.NoError(t, err)
	var back Handle
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, h, back)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"00"`), &back), ErrStructuralDecode)
	_, err = HandleFromBytes([]byte{1})
	assert.ErrorIs(t, err, ErrStructuralDecode)
}

func TestUint128(t *testing.T) {
	v := Uint128{Lo: 1, Hi: 2}
	back, err := Uint128FromBytes(v.Bytes())
	require.NoError(t, err)
	assert.Equal(t, v, back)
	assert.False(t, v.IsUint64())

	want := new(big.Int).Lsh(big.NewInt(2), 64)
	want.Add(want, big.NewInt(1))
	assert.Equal(t, want.String(), v.String())

	// values wrap at 2^128
	wrapped := new(big.Int).Lsh(big.NewInt(1), 128)
	wrapped.Add(wrapped, big.NewInt(3))
	assert.Equal(t, U128(3), Uint128FromBig(wrapped))
}

func TestParseBalanceScheme(t *testing.T) {
	for in, want := range map[string]BalanceScheme{
		"":             SchemeConfidential,
		"confidential": SchemeConfidential,
		" Plaintext ":  SchemePlaintext,
	} {
		got, err := ParseBalanceScheme(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseBalanceScheme("fhe")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInstructionTag_String(t *testing.T) {
	assert.Equal(t, "delegated_execute", TagDelegatedExecute.String())
	assert.Equal(t, "unknown", InstructionTag(42).String())
	assert.Equal(t, "schnorr-secp256k1", KeySchemeSchnorrSecp256k1.String())
	assert.False(t, KeyScheme(2).Valid())
}
