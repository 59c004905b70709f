package service

import (
	"context"

	"github.com/MKhiriev/confidential-vault/internal/codec"
	"github.com/MKhiriev/confidential-vault/internal/derive"
	"github.com/MKhiriev/confidential-vault/internal/ledger"
	"github.com/MKhiriev/confidential-vault/models"
)

// initialize creates or replaces the delegate configuration.
//
// Accounts: 0 config (w), 1 authority (w, s).
func (p *VaultProgram) initialize(_ context.Context, env *ledger.Env, accounts []*ledger.AccountInfo, ix models.Initialize) error {
	if err := requireAccounts(accounts, 2); err != nil {
		return err
	}
	config, authority := accounts[0], accounts[1]

	if err := requireSigner(authority); err != nil {
		return err
	}
	addr, err := p.deriver.Config()
	if err = requireAddress(config, addr, err); err != nil {
		return err
	}

	if config.OwnedByProgram() {
		existing, err := codec.DecodeDelegateConfig(config.Data())
		if err != nil {
			return err
		}
		if existing.Initialized && existing.Authority != authority.Key {
			return ErrAuthorityMismatch
		}
	} else {
		seeds := addr.SignerSeeds(derive.SeedConfig)
		if err = env.CreateAccount(authority, config, codec.DelegateConfigSize, seeds); err != nil {
			return err
		}
	}

	return config.SetData(codec.EncodeDelegateConfig(models.DelegateConfig{
		Receiver:    ix.Receiver,
		Authority:   authority.Key,
		Initialized: true,
	}))
}
