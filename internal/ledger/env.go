package ledger

import (
	"math/bits"

	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/models"
)

// Env carries the host services a program may call during one invocation.
type Env struct {
	programID models.AccountID
	rent      Rent
	logger    *logger.Logger
}

func (e *Env) ProgramID() models.AccountID {
	return e.programID
}

func (e *Env) Rent() Rent {
	return e.rent
}

func (e *Env) Logger() *logger.Logger {
	return e.logger
}

// CreateAccount allocates space zeroed bytes for account, funds it to the
// rent-exempt minimum from payer and assigns it to the program. account must
// be a signer or be derived from signerSeeds. Lamports already sitting on the
// address count toward the minimum.
func (e *Env) CreateAccount(payer, account *AccountInfo, space uint64, signerSeeds [][]byte) error {
	if !payer.IsSigner {
		return ErrMissingSignature
	}
	if !payer.IsWritable || !account.IsWritable {
		return ErrReadOnlyAccount
	}
	if !account.IsSignerFor(e.programID, signerSeeds) {
		return ErrInvalidSignerSeeds
	}
	if !account.IsSystemOwned() {
		return ErrAccountInUse
	}

	required := e.rent.MinimumBalance(space)
	if account.lamports < required {
		if err := e.move(payer, account, required-account.lamports); err != nil {
			return err
		}
	}

	account.data = make([]byte, space)
	account.owner = e.programID
	return nil
}

// Transfer moves lamports out of a signing wallet.
func (e *Env) Transfer(from, to *AccountInfo, amount uint64) error {
	if !from.IsSigner {
		return ErrMissingSignature
	}
	if !from.IsSystemOwned() {
		return ErrNotProgramOwned
	}
	return e.move(from, to, amount)
}

// TransferSigned moves lamports out of a program-owned account the program
// signs for with signerSeeds.
func (e *Env) TransferSigned(from, to *AccountInfo, amount uint64, signerSeeds [][]byte) error {
	if !from.OwnedByProgram() {
		return ErrNotProgramOwned
	}
	if !from.IsSignerFor(e.programID, signerSeeds) {
		return ErrInvalidSignerSeeds
	}
	return e.move(from, to, amount)
}

func (e *Env) move(from, to *AccountInfo, amount uint64) error {
	if !from.IsWritable || !to.IsWritable {
		return ErrReadOnlyAccount
	}
	if from.lamports < amount {
		return ErrInsufficientFunds
	}
	if from == to {
		return nil
	}
	sum, carry := bits.Add64(to.lamports, amount, 0)
	if carry != 0 {
		return ErrLamportsOverflow
	}
	from.lamports -= amount
	to.lamports = sum
	return nil
}
