package service

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/coprocessor"
	"github.com/MKhiriev/confidential-vault/internal/coprocessor/coprocessortest"
	"github.com/MKhiriev/confidential-vault/internal/derive"
	"github.com/MKhiriev/confidential-vault/internal/instruction"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/metrics"
	"github.com/MKhiriev/confidential-vault/internal/store"
	"github.com/MKhiriev/confidential-vault/internal/validators"
	"github.com/MKhiriev/confidential-vault/models"
)

const testProgramID = "BVoHrpXCMPYDn3URmNKgBtKsfVZxYGYhG4eRWHDZiXRj"

// wallet is a test keypair whose public key is its account address.
type wallet struct {
	priv ed25519.PrivateKey
	id   models.AccountID
}

func newWallet(t *testing.T, name string) wallet {
	t.Helper()
	seed := sha256.Sum256([]byte(name))
	priv := ed25519.NewKeyFromSeed(seed[:])
	id, err := models.NewAccountID(priv.Public().(ed25519.PublicKey))
	require.NoError(t, err)
	return wallet{priv: priv, id: id}
}

type fixture struct {
	t        *testing.T
	scheme   models.BalanceScheme
	engine   *coprocessortest.Engine
	accounts *store.MemoryStore
	services *Services
	deriver  *derive.Deriver
	metrics  *metrics.Metrics

	authority wallet
	receiver  wallet
	user      wallet

	nonce time.Duration
}

func newFixture(t *testing.T, scheme models.BalanceScheme, opts ...func(*config.Ledger)) *fixture {
	t.Helper()

	f := &fixture{
		t:         t,
		scheme:    scheme,
		engine:    coprocessortest.NewEngine(),
		accounts:  store.NewMemoryStore(),
		metrics:   metrics.New(),
		authority: newWallet(t, "authority"),
		receiver:  newWallet(t, "receiver"),
		user:      newWallet(t, "user"),
	}

	var arithmetic coprocessor.Arithmetic = coprocessor.NewAdapter(f.engine, f.metrics)
	if scheme == models.SchemePlaintext {
		arithmetic = coprocessor.NewPlaintext()
	}

	cfg := config.StructuredConfig{
		App: config.App{
			ProgramID:     testProgramID,
			BalanceScheme: string(scheme),
			Version:       "test",
		},
		Ledger: config.Ledger{
			LamportsPerByteYear:    10,
			MaxTransactionAge:      time.Minute,
			SeenSignatureCacheSize: 128,
			DerivationCacheSize:    64,
			AirdropEnabled:         true,
		},
	}
	for _, opt := range opts {
		opt(&cfg.Ledger)
	}

	services, err := NewServices(f.accounts, arithmetic, cfg, f.metrics, logger.Nop())
	require.NoError(t, err)
	f.services = services

	f.deriver, err = derive.NewDeriver(models.MustParseAccountID(testProgramID), 64)
	require.NoError(t, err)

	for _, w := range []wallet{f.authority, f.receiver, f.user} {
		f.airdrop(w.id, 10_000_000_000)
	}
	return f
}

func (f *fixture) programID() models.AccountID {
	return models.MustParseAccountID(testProgramID)
}

func (f *fixture) airdrop(key models.AccountID, lamports uint64) {
	f.t.Helper()
	_, err := f.services.AccountService.Airdrop(context.Background(), key, lamports)
	require.NoError(f.t, err)
}

func (f *fixture) address(addr derive.Address, err error) models.AccountID {
	f.t.Helper()
	require.NoError(f.t, err)
	return addr.Key
}

func (f *fixture) lamports(key models.AccountID) uint64 {
	f.t.Helper()
	acc, err := f.services.AccountService.GetAccount(context.Background(), key)
	require.NoError(f.t, err)
	return acc.Lamports
}

func (f *fixture) vaultLamports() uint64 {
	return f.lamports(f.address(f.deriver.Vault()))
}

// balance decrypts the participant's balance through the engine oracle or,
// under the plaintext scheme, reads it directly.
func (f *fixture) balance(owner models.AccountID) uint64 {
	f.t.Helper()
	rec, err := f.services.AccountService.GetParticipant(context.Background(), owner)
	require.NoError(f.t, err)

	if f.scheme == models.SchemePlaintext {
		v, err := coprocessor.PlaintextValue(rec.Balance)
		require.NoError(f.t, err)
		return v
	}
	v, ok := f.engine.Decrypt(rec.Balance)
	require.True(f.t, ok, "balance handle unknown to the engine")
	require.True(f.t, v.IsUint64())
	return v.Lo
}

// snapshot captures every stored account for no-mutation assertions.
func (f *fixture) snapshot(keys ...models.AccountID) []models.Account {
	f.t.Helper()
	out := make([]models.Account, 0, len(keys))
	for _, key := range keys {
		acc, err := f.accounts.GetAccount(context.Background(), key)
		require.NoError(f.t, err)
		out = append(out, acc)
	}
	return out
}

func (f *fixture) submit(ix models.Instruction, metas []models.AccountMeta, signers ...wallet) (models.Receipt, error) {
	f.t.Helper()
	return f.services.TransactionService.Submit(context.Background(), f.envelope(ix, metas, signers...))
}

// envelope signs ix into a transaction that expires well within the
// configured maximum age.
func (f *fixture) envelope(ix models.Instruction, metas []models.AccountMeta, signers ...wallet) models.Transaction {
	f.t.Helper()
	data, err := instruction.Encode(ix, f.scheme)
	require.NoError(f.t, err)

	f.nonce++
	msg := models.Message{
		ProgramID: f.programID(),
		Accounts:  metas,
		Data:      data,
		ExpiresAt: time.Now().Add(30*time.Second + f.nonce),
	}
	return sign(msg, signers...)
}

func sign(msg models.Message, signers ...wallet) models.Transaction {
	digest := msg.Digest()
	tx := models.Transaction{Message: msg}
	for _, w := range signers {
		tx.Signatures = append(tx.Signatures, models.Signature{PubKey: w.id, Signature: ed25519.Sign(w.priv, digest[:])})
	}
	return tx
}

func (f *fixture) initialize(authority wallet, receiver models.AccountID) error {
	_, err := f.submit(models.Initialize{Receiver: receiver}, []models.AccountMeta{
		{PubKey: f.address(f.deriver.Config()), IsWritable: true},
		{PubKey: authority.id, IsSigner: true, IsWritable: true},
	}, authority)
	return err
}

func (f *fixture) depositMetas(user models.AccountID) []models.AccountMeta {
	return []models.AccountMeta{
		{PubKey: f.address(f.deriver.Vault()), IsWritable: true},
		{PubKey: user, IsSigner: true, IsWritable: true},
		{PubKey: f.address(f.deriver.Participant(user)), IsWritable: true},
	}
}

func (f *fixture) deposit(user wallet, amount uint64) error {
	ix := models.Deposit{Amount: amount}
	if f.scheme == models.SchemeConfidential {
		ix.Ciphertext = f.engine.Encrypt(amount)
	}
	_, err := f.submit(ix, f.depositMetas(user.id), user)
	return err
}

func (f *fixture) withdraw(user wallet, amount uint64) error {
	_, err := f.submit(models.Withdraw{Amount: amount}, f.depositMetas(user.id), user)
	return err
}

func (f *fixture) executeMetas(user, receiver models.AccountID, intentHash [32]byte) []models.AccountMeta {
	return []models.AccountMeta{
		{PubKey: f.address(f.deriver.Config())},
		{PubKey: f.address(f.deriver.Vault()), IsWritable: true},
		{PubKey: f.address(f.deriver.Participant(user)), IsWritable: true},
		{PubKey: user},
		{PubKey: receiver, IsSigner: true, IsWritable: true},
		{PubKey: f.address(f.deriver.IntentKey(user))},
		{PubKey: f.address(f.deriver.UsedIntent(intentHash)), IsWritable: true},
	}
}

// signedIntent builds a delegated execution of amount signed by user with
// their default key. ciphertext defaults to an encryption of amount.
func (f *fixture) signedIntent(user wallet, amount uint64, ciphertext []byte) models.DelegatedExecute {
	if ciphertext == nil && f.scheme == models.SchemeConfidential {
		ciphertext = f.engine.Encrypt(amount)
	}
	hash := validators.IntentDigest(f.programID(), user.id, f.receiver.id, amount, 0, ciphertext)
	return models.DelegatedExecute{
		IntentHash: hash,
		Signature:  ed25519.Sign(user.priv, hash[:]),
		Amount:     amount,
		Ciphertext: ciphertext,
	}
}

func (f *fixture) execute(user wallet, ix models.DelegatedExecute) error {
	_, err := f.submit(ix, f.executeMetas(user.id, f.receiver.id, ix.IntentHash), f.receiver)
	return err
}
