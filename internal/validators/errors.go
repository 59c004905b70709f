package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/confidential-vault/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySignature      = fmt.Errorf("%w: intent signature is empty", models.ErrAuthorization)
	ErrIntentHashMismatch  = fmt.Errorf("%w: intent hash does not match its contents", models.ErrAuthorization)
	ErrIntentKeyOwner      = fmt.Errorf("%w: intent key belongs to another owner", models.ErrAuthorization)
	ErrIntentReplayed      = fmt.Errorf("%w: intent already executed", models.ErrAuthorization)
	ErrEmptyProgramID      = fmt.Errorf("%w: program id is required", models.ErrInvalidArgument)
	ErrNoAccounts          = fmt.Errorf("%w: at least one account is required", models.ErrInvalidArgument)
	ErrTooManyAccounts     = fmt.Errorf("%w: too many accounts", models.ErrInvalidArgument)
	ErrEmptyData           = fmt.Errorf("%w: instruction data is required", models.ErrInvalidArgument)
	ErrNoSignatures        = fmt.Errorf("%w: transaction is not signed", models.ErrAuthorization)
	ErrUnexpectedSignature = fmt.Errorf("%w: signature from an account not marked as signer", models.ErrAuthorization)
	ErrMissingSigner       = fmt.Errorf("%w: signer account has no signature", models.ErrAuthorization)
)
