package service

import (
	"context"

	"github.com/MKhiriev/confidential-vault/internal/codec"
	"github.com/MKhiriev/confidential-vault/internal/derive"
	"github.com/MKhiriev/confidential-vault/internal/ledger"
	"github.com/MKhiriev/confidential-vault/models"
)

// delegatedExecute pays a participant's funds to the configured receiver on
// the strength of an intent the participant signed.
//
// Accounts: 0 config, 1 vault (w), 2 participant (w), 3 user,
// 4 receiver (w, s), 5 intent key, 6 used-intent marker (w).
func (p *VaultProgram) delegatedExecute(ctx context.Context, env *ledger.Env, accounts []*ledger.AccountInfo, ix models.DelegatedExecute) error {
	if err := requireAccounts(accounts, 7); err != nil {
		return err
	}
	config, vault, participant, user, receiver, intentKey, marker :=
		accounts[0], accounts[1], accounts[2], accounts[3], accounts[4], accounts[5], accounts[6]

	configAddr, err := p.deriver.Config()
	if err = requireAddress(config, configAddr, err); err != nil {
		return err
	}
	cfg, err := loadConfig(config)
	if err != nil {
		return err
	}
	if receiver.Key != cfg.Receiver {
		return ErrReceiverMismatch
	}
	if err = requireSigner(receiver); err != nil {
		return err
	}

	vaultAddr, err := p.deriver.Vault()
	if err = requireAddress(vault, vaultAddr, err); err != nil {
		return err
	}
	participantAddr, err := p.deriver.Participant(user.Key)
	if err = requireAddress(participant, participantAddr, err); err != nil {
		return err
	}
	rec, err := p.loadParticipant(participant, user.Key)
	if err != nil {
		return err
	}

	keyAddr, err := p.deriver.IntentKey(user.Key)
	if err = requireAddress(intentKey, keyAddr, err); err != nil {
		return err
	}
	key := models.DefaultIntentKey(user.Key)
	if intentKey.OwnedByProgram() {
		if key, err = codec.DecodeIntentKey(intentKey.Data()); err != nil {
			return err
		}
	}

	markerAddr, err := p.deriver.UsedIntent(ix.IntentHash)
	if err = requireAddress(marker, markerAddr, err); err != nil {
		return err
	}

	err = p.intents.Validate(ctx, models.Intent{
		ProgramID:  p.ProgramID(),
		User:       user.Key,
		Receiver:   receiver.Key,
		Amount:     ix.Amount,
		InputType:  ix.InputType,
		Ciphertext: ix.Ciphertext,
		Hash:       ix.IntentHash,
		Signature:  ix.Signature,
		Key:        key,
		Consumed:   marker.OwnedByProgram(),
	})
	if err != nil {
		return err
	}

	if p.scheme == models.SchemeConfidential {
		if err = p.checkCiphertext(ctx, receiver.Key, ix); err != nil {
			return err
		}
	}
	if ix.Amount == 0 {
		return ErrInsufficientBalance
	}

	if rec.Balance, err = p.debit(ctx, receiver.Key, rec.Balance, ix.Amount); err != nil {
		return err
	}
	if err = participant.SetData(codec.EncodeParticipant(rec, p.scheme)); err != nil {
		return err
	}

	if err = env.TransferSigned(vault, receiver, ix.Amount, vaultAddr.SignerSeeds(derive.SeedVault)); err != nil {
		return err
	}

	seeds := markerAddr.SignerSeeds(derive.SeedUsedIntent, ix.IntentHash[:])
	if err = env.CreateAccount(receiver, marker, codec.UsedIntentSize, seeds); err != nil {
		return err
	}
	return marker.SetData(codec.EncodeUsedIntent(models.UsedIntent{Owner: user.Key}))
}

// checkCiphertext requires the intent's ciphertext to encrypt its amount.
func (p *VaultProgram) checkCiphertext(ctx context.Context, signer models.AccountID, ix models.DelegatedExecute) error {
	enc, err := p.arithmetic.FromCiphertext(ctx, signer, ix.Ciphertext, ix.InputType)
	if err != nil {
		return err
	}
	amount, err := p.arithmetic.FromPlaintext(ctx, signer, models.U128(ix.Amount))
	if err != nil {
		return err
	}
	equal, err := p.arithmetic.Equal(ctx, signer, enc, amount)
	if err != nil {
		return err
	}
	if !equal {
		return ErrCiphertextMismatch
	}
	return nil
}
