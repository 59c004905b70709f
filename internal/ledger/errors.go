package ledger

import (
	"fmt"

	"github.com/MKhiriev/confidential-vault/models"
)

var (
	ErrMissingSignature   = fmt.Errorf("%w: account must sign", models.ErrAuthorization)
	ErrReadOnlyAccount    = fmt.Errorf("%w: account is not writable", models.ErrAuthorization)
	ErrNotProgramOwned    = fmt.Errorf("%w: account is not owned by the program", models.ErrAuthorization)
	ErrInvalidSignerSeeds = fmt.Errorf("%w: seeds do not derive the account", models.ErrAuthorization)
	ErrAccountInUse       = fmt.Errorf("%w: account already in use", models.ErrInvalidArgument)
	ErrDataSizeMismatch   = fmt.Errorf("%w: data size does not match allocation", models.ErrInvalidArgument)
	ErrInsufficientFunds  = fmt.Errorf("%w: insufficient lamports", models.ErrInsufficientFunds)
	ErrLamportsOverflow   = fmt.Errorf("%w: lamports overflow", models.ErrArithmeticOverflow)
	ErrInvariantViolation = fmt.Errorf("%w: ledger invariant violated", models.ErrAuthorization)
	ErrTooManyAccounts    = fmt.Errorf("%w: too many accounts", models.ErrInvalidArgument)
)
