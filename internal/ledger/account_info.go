package ledger

import (
	"bytes"

	"github.com/MKhiriev/confidential-vault/internal/derive"
	"github.com/MKhiriev/confidential-vault/models"
)

// AccountInfo is the program's view of one declared account during an
// invocation. Lamports and ownership change only through [Env]; data changes
// only through SetData on accounts the program owns.
type AccountInfo struct {
	Key        models.AccountID
	IsSigner   bool
	IsWritable bool

	lamports  uint64
	owner     models.AccountID
	data      []byte
	programID models.AccountID
}

func newAccountInfo(acc models.Account, meta models.AccountMeta, programID models.AccountID) *AccountInfo {
	return &AccountInfo{
		Key:        acc.Key,
		IsSigner:   meta.IsSigner,
		IsWritable: meta.IsWritable,
		lamports:   acc.Lamports,
		owner:      acc.Owner,
		data:       bytes.Clone(acc.Data),
		programID:  programID,
	}
}

func (a *AccountInfo) Lamports() uint64 {
	return a.lamports
}

func (a *AccountInfo) Owner() models.AccountID {
	return a.owner
}

// Data returns a copy of the account data.
func (a *AccountInfo) Data() []byte {
	return bytes.Clone(a.data)
}

func (a *AccountInfo) DataLen() int {
	return len(a.data)
}

// OwnedByProgram reports whether the invoked program owns the account.
func (a *AccountInfo) OwnedByProgram() bool {
	return a.owner == a.programID
}

// IsSystemOwned reports whether the account is an ordinary wallet: owned by
// nobody and carrying no data.
func (a *AccountInfo) IsSystemOwned() bool {
	return a.owner.IsZero() && len(a.data) == 0
}

// SetData replaces the account data. The account must be writable, owned by
// the program, and data must match the allocated size.
func (a *AccountInfo) SetData(data []byte) error {
	if !a.IsWritable {
		return ErrReadOnlyAccount
	}
	if !a.OwnedByProgram() {
		return ErrNotProgramOwned
	}
	if len(data) != len(a.data) {
		return ErrDataSizeMismatch
	}
	copy(a.data, data)
	return nil
}

func (a *AccountInfo) account() models.Account {
	return models.Account{
		Key:      a.Key,
		Lamports: a.lamports,
		Owner:    a.owner,
		Data:     bytes.Clone(a.data),
	}
}

// IsSignerFor reports whether the account signed the envelope or is the
// address seeds derive under programID.
func (a *AccountInfo) IsSignerFor(programID models.AccountID, seeds [][]byte) bool {
	if a.IsSigner {
		return true
	}
	if len(seeds) == 0 {
		return false
	}
	derived, err := derive.CreateProgramAddress(seeds, programID)
	return err == nil && derived == a.Key
}
