package service

import (
	"context"

	"github.com/MKhiriev/confidential-vault/internal/codec"
	"github.com/MKhiriev/confidential-vault/internal/crypto"
	"github.com/MKhiriev/confidential-vault/internal/derive"
	"github.com/MKhiriev/confidential-vault/internal/ledger"
	"github.com/MKhiriev/confidential-vault/models"
)

// registerIntentKey sets the key the user signs delegated intents with.
//
// Accounts: 0 user (w, s), 1 intent key (w).
func (p *VaultProgram) registerIntentKey(_ context.Context, env *ledger.Env, accounts []*ledger.AccountInfo, ix models.RegisterIntentKey) error {
	if err := requireAccounts(accounts, 2); err != nil {
		return err
	}
	user, intentKey := accounts[0], accounts[1]

	if err := requireSigner(user); err != nil {
		return err
	}
	addr, err := p.deriver.IntentKey(user.Key)
	if err = requireAddress(intentKey, addr, err); err != nil {
		return err
	}

	if !ix.Scheme.Valid() {
		return ErrInvalidKeyScheme
	}
	if err = crypto.ValidatePublicKey(ix.Scheme, ix.PublicKey); err != nil {
		return err
	}

	if !intentKey.OwnedByProgram() {
		seeds := addr.SignerSeeds(derive.SeedIntentKey, user.Key.Bytes())
		if err = env.CreateAccount(user, intentKey, codec.IntentKeySize, seeds); err != nil {
			return err
		}
	}

	return intentKey.SetData(codec.EncodeIntentKey(models.IntentKey{
		Owner:     user.Key,
		Scheme:    ix.Scheme,
		PublicKey: ix.PublicKey,
	}))
}
