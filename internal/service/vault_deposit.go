package service

import (
	"context"

	"github.com/MKhiriev/confidential-vault/internal/codec"
	"github.com/MKhiriev/confidential-vault/internal/derive"
	"github.com/MKhiriev/confidential-vault/internal/ledger"
	"github.com/MKhiriev/confidential-vault/models"
)

// deposit moves lamports from the user into the vault and credits the same
// amount to the user's encrypted balance.
//
// Accounts: 0 vault (w), 1 user (w, s), 2 participant (w).
func (p *VaultProgram) deposit(ctx context.Context, env *ledger.Env, accounts []*ledger.AccountInfo, ix models.Deposit) error {
	if err := requireAccounts(accounts, 3); err != nil {
		return err
	}
	vault, user, participant := accounts[0], accounts[1], accounts[2]

	if ix.Amount == 0 {
		return ErrZeroDeposit
	}
	if err := requireSigner(user); err != nil {
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

	credit, err := p.depositCredit(ctx, user.Key, ix)
	if err != nil {
		return err
	}

	if !vault.OwnedByProgram() {
		if err = env.CreateAccount(user, vault, 0, vaultAddr.SignerSeeds(derive.SeedVault)); err != nil {
			return err
		}
	}

	var rec models.ParticipantRecord
	if participant.OwnedByProgram() {
		if rec, err = p.loadParticipant(participant, user.Key); err != nil {
			return err
		}
	} else {
		seeds := participantAddr.SignerSeeds(derive.SeedParticipant, user.Key.Bytes())
		if err = env.CreateAccount(user, participant, uint64(codec.ParticipantSize(p.scheme)), seeds); err != nil {
			return err
		}
		zero, err := p.arithmetic.FromPlaintext(ctx, user.Key, models.U128(0))
		if err != nil {
			return err
		}
		rec = models.ParticipantRecord{Owner: user.Key, Balance: zero}
	}

	if err = env.Transfer(user, vault, ix.Amount); err != nil {
		return err
	}

	if rec.Balance, err = p.arithmetic.Add(ctx, user.Key, rec.Balance, credit); err != nil {
		return err
	}
	return participant.SetData(codec.EncodeParticipant(rec, p.scheme))
}

// depositCredit is the handle added to the balance. Under the confidential
// scheme the client's ciphertext must encrypt exactly the deposited amount.
func (p *VaultProgram) depositCredit(ctx context.Context, signer models.AccountID, ix models.Deposit) (models.Handle, error) {
	amount, err := p.arithmetic.FromPlaintext(ctx, signer, models.U128(ix.Amount))
	if err != nil {
		return models.Handle{}, err
	}
	if p.scheme == models.SchemePlaintext {
		return amount, nil
	}

	credit, err := p.arithmetic.FromCiphertext(ctx, signer, ix.Ciphertext, ix.InputType)
	if err != nil {
		return models.Handle{}, err
	}
	equal, err := p.arithmetic.Equal(ctx, signer, credit, amount)
	if err != nil {
		return models.Handle{}, err
	}
	if !equal {
		return models.Handle{}, ErrCiphertextMismatch
	}
	return credit, nil
}
