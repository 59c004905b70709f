package service

import (
	"context"

	"github.com/MKhiriev/confidential-vault/internal/codec"
	"github.com/MKhiriev/confidential-vault/internal/derive"
	"github.com/MKhiriev/confidential-vault/internal/ledger"
	"github.com/MKhiriev/confidential-vault/models"
)

// withdraw debits the owner's encrypted balance and pays the lamports back
// out of the vault.
//
// Accounts: 0 vault (w), 1 user (w, s), 2 participant (w).
func (p *VaultProgram) withdraw(ctx context.Context, env *ledger.Env, accounts []*ledger.AccountInfo, ix models.Withdraw) error {
	if err := requireAccounts(accounts, 3); err != nil {
		return err
	}
	vault, user, participant := accounts[0], accounts[1], accounts[2]

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

	rec, err := p.loadParticipant(participant, user.Key)
	if err != nil {
		return err
	}

	if rec.Balance, err = p.debit(ctx, user.Key, rec.Balance, ix.Amount); err != nil {
		return err
	}
	if err = participant.SetData(codec.EncodeParticipant(rec, p.scheme)); err != nil {
		return err
	}

	return env.TransferSigned(vault, user, ix.Amount, vaultAddr.SignerSeeds(derive.SeedVault))
}

// debit returns balance minus amount, refusing when the balance is smaller.
func (p *VaultProgram) debit(ctx context.Context, signer models.AccountID, balance models.Handle, amount uint64) (models.Handle, error) {
	enc, err := p.arithmetic.FromPlaintext(ctx, signer, models.U128(amount))
	if err != nil {
		return models.Handle{}, err
	}
	sufficient, err := p.arithmetic.GreaterOrEqual(ctx, signer, balance, enc)
	if err != nil {
		return models.Handle{}, err
	}
	if !sufficient {
		return models.Handle{}, ErrInsufficientBalance
	}
	return p.arithmetic.Sub(ctx, signer, balance, enc)
}
